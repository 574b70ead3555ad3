package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/proxpl/proxsite/internal/content"
	"github.com/proxpl/proxsite/internal/playground"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageNames = []string{"home", "overview", "topic", "playground"}

var funcs = template.FuncMap{
	"topicURL": topicURL,
	"version":  func() string { return playground.Version },
}

// topicURL is the path of a topic page. Names may contain '/' and '?'.
func topicURL(name string) string {
	return "/docs/" + url.PathEscape(name)
}

// parseTemplates pairs the shared layout with each page.
func parseTemplates() (map[string]*template.Template, error) {
	base, err := template.New("base.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/base.tmpl")
	if err != nil {
		return nil, err
	}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".tmpl"); err != nil {
			return nil, err
		}
		pages[name] = t
	}
	return pages, nil
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

// bodyHTML renders topic content. Raw HTML in the source is not passed
// through.
func (s *Server) bodyHTML(nodes []content.Node) (template.HTML, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(content.Markdown(nodes)), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Layout is the data every page shares.
type Layout struct {
	Site    string
	Title   string
	Section string // highlighted nav entry
}

func (s *Server) layout(title, section string) Layout {
	return Layout{Site: s.opts.Name, Title: title, Section: section}
}

// render executes the named page into a buffer so template errors become
// a clean 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	t, ok := s.pages[page]
	if !ok {
		s.serverError(w, r, "unknown page "+page)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		s.serverError(w, r, "template exec error: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string) {
	log.Printf("[%s] %s", middleware.GetReqID(r.Context()), msg)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

type apiError struct {
	Error string `json:"error"`
}
