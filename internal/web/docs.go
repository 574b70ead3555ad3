package web

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/proxpl/proxsite/internal/content"
	"github.com/proxpl/proxsite/internal/docs"
	"github.com/proxpl/proxsite/internal/nav"
)

type overviewPage struct {
	Layout
	docs.Overview
}

type topicPage struct {
	Layout
	Topic     *nav.TopicView
	HTML      template.HTML
	ScrollTop bool
}

func topicParam(r *http.Request) string {
	raw := chi.URLParam(r, "topic")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

// handleOverview shows the category listing. A q parameter updates the
// session's query; without one the stored query is kept.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	rec := s.loadSession(r)
	st := nav.Apply(s.opts.Index, rec.Nav, nav.Back{})
	if r.URL.Query().Has("q") {
		if q := r.URL.Query().Get("q"); q != "" {
			st = nav.Apply(s.opts.Index, st, nav.Search{Query: q})
		} else {
			st = nav.Apply(s.opts.Index, st, nav.ClearSearch{})
		}
	}
	rec.Nav = st
	s.saveSession(w, r, rec)

	v := nav.Render(s.opts.Index, st)
	s.render(w, r, "overview", overviewPage{
		Layout:   s.layout("Documentation", "docs"),
		Overview: *v.Overview,
	})
}

// handleTopic opens a topic. Unknown topics go back to the overview.
func (s *Server) handleTopic(w http.ResponseWriter, r *http.Request) {
	rec := s.loadSession(r)
	st := nav.Apply(s.opts.Index, rec.Nav, nav.Select{Name: topicParam(r)})
	if st.Overview() {
		rec.Nav = st
		s.saveSession(w, r, rec)
		http.Redirect(w, r, "/docs", http.StatusFound)
		return
	}

	v := nav.Render(s.opts.Index, st)
	html, err := s.bodyHTML(v.Topic.Body)
	if err != nil {
		s.serverError(w, r, "rendering "+v.Topic.Name+": "+err.Error())
		return
	}

	// ScrollTop is consumed by this render.
	st.ScrollTop = false
	rec.Nav = st
	s.saveSession(w, r, rec)

	s.render(w, r, "topic", topicPage{
		Layout:    s.layout(v.Topic.Title, "docs"),
		Topic:     v.Topic,
		HTML:      html,
		ScrollTop: v.ScrollTop,
	})
}

// handleStep applies Next (or Prev) from the topic in the URL and
// redirects to wherever the state machine lands.
func (s *Server) handleStep(forward bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := s.loadSession(r)
		st := nav.Apply(s.opts.Index, rec.Nav, nav.Select{Name: topicParam(r)})
		if !st.Overview() {
			if forward {
				st = nav.Apply(s.opts.Index, st, nav.Next{})
			} else {
				st = nav.Apply(s.opts.Index, st, nav.Prev{})
			}
		}
		rec.Nav = st
		s.saveSession(w, r, rec)
		if st.Overview() {
			http.Redirect(w, r, "/docs", http.StatusFound)
			return
		}
		http.Redirect(w, r, topicURL(st.Topic), http.StatusFound)
	}
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	rec := s.loadSession(r)
	rec.Nav = nav.Apply(s.opts.Index, rec.Nav, nav.Back{})
	s.saveSession(w, r, rec)
	http.Redirect(w, r, "/docs", http.StatusFound)
}

type apiTopic struct {
	*nav.TopicView
	Markdown string        `json:"markdown"`
	HTML     template.HTML `json:"html"`
}

func (s *Server) apiOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.opts.Index.Overview(r.URL.Query().Get("q")))
}

func (s *Server) apiTopic(w http.ResponseWriter, r *http.Request) {
	name := topicParam(r)
	st := nav.Apply(s.opts.Index, nav.State{}, nav.Select{Name: name})
	if st.Overview() {
		_, err := s.opts.Index.Get(name)
		writeJSON(w, http.StatusNotFound, apiError{Error: err.Error()})
		return
	}
	v := nav.Render(s.opts.Index, st)
	html, err := s.bodyHTML(v.Topic.Body)
	if err != nil {
		s.serverError(w, r, "rendering "+name+": "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, apiTopic{
		TopicView: v.Topic,
		Markdown:  content.Markdown(v.Topic.Body),
		HTML:      html,
	})
}
