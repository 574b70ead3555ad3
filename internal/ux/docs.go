package ux

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/proxpl/proxsite/internal/content"
	"github.com/proxpl/proxsite/internal/docs"
	"github.com/proxpl/proxsite/internal/nav"
)

// RenderMarkdown renders md for the terminal. style is a glamour standard
// style name ("dark", "light", "notty", ...) or "auto" to detect one.
func RenderMarkdown(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	return r.Render(md)
}

// Overview prints the category listing for a query. Topics whose name
// matches are highlighted and topics without content are dimmed.
func Overview(w io.Writer, ov docs.Overview) {
	if ov.Empty {
		fmt.Fprintf(w, "\n%sNo results found%s for %q.\n", Yellow, Reset, ov.Query)
		Hint(w, "Try a different keyword, or run 'proxsite docs' to list every topic.")
		return
	}
	for _, g := range ov.Groups {
		fmt.Fprintf(w, "\n%s%s%s\n", Bold, g.Title, Reset)
		for _, l := range g.Topics {
			switch {
			case !l.Available:
				fmt.Fprintf(w, "  %s%s (coming soon)%s\n", Dim, l.Name, Reset)
			case l.Match:
				fmt.Fprintf(w, "  %s%s%s\n", Cyan, l.Name, Reset)
			default:
				fmt.Fprintf(w, "  %s\n", l.Name)
			}
		}
	}
	fmt.Fprintln(w)
	Hint(w, "Run 'proxsite docs <topic>' to read a topic.")
}

// TopicMarkdown is the markdown document for an open topic.
func TopicMarkdown(v *nav.TopicView) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", v.Title)
	sb.WriteString(content.Markdown(v.Body))
	return sb.String()
}

// Topic prints an open topic followed by its neighbours in reading order.
func Topic(w io.Writer, v *nav.TopicView, style string, width int) error {
	out, err := RenderMarkdown(TopicMarkdown(v), style, width)
	if err != nil {
		return err
	}
	fmt.Fprint(w, out)
	if v.Prev != "" {
		fmt.Fprintf(w, "%s← prev:%s %s\n", Dim, Reset, v.Prev)
	}
	if v.Next != "" {
		fmt.Fprintf(w, "%s→ next:%s %s\n", Dim, Reset, v.Next)
	}
	return nil
}

// Integrity prints the result of a content check.
func Integrity(w io.Writer, total int, missing []string) {
	if len(missing) == 0 {
		fmt.Fprintf(w, "%s✓ all %d topics have content%s\n", Green, total, Reset)
		return
	}
	fmt.Fprintf(w, "%s%d of %d topics have no content:%s\n", Yellow, len(missing), total, Reset)
	for _, name := range missing {
		fmt.Fprintf(w, "  %s\n", name)
	}
}
