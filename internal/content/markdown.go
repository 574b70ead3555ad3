package content

import (
	"fmt"
	"strings"
)

// Markdown renders nodes as CommonMark. Inline markup inside text is passed
// through untouched.
func Markdown(nodes []Node) string {
	var b strings.Builder
	for i, n := range nodes {
		if i > 0 {
			b.WriteString("\n")
		}
		switch n := n.(type) {
		case Paragraph:
			b.WriteString(n.Text)
			b.WriteString("\n")
		case Heading:
			fmt.Fprintf(&b, "### %s\n", n.Text)
		case List:
			for j, it := range n.Items {
				if n.Ordered {
					fmt.Fprintf(&b, "%d. %s\n", j+1, it)
				} else {
					fmt.Fprintf(&b, "- %s\n", it)
				}
			}
		case Cards:
			for _, it := range n.Items {
				fmt.Fprintf(&b, "> %s\n>\n", it)
			}
		case Code:
			writeFence(&b, n)
		}
	}
	return b.String()
}

func writeFence(b *strings.Builder, c Code) {
	lang := c.Lang
	if lang == "" {
		lang = DefaultLang
	}
	if c.Title != "" {
		fmt.Fprintf(b, "*%s*\n\n", c.Title)
	}
	fence := "```"
	for strings.Contains(c.Source, fence) {
		fence += "`"
	}
	fmt.Fprintf(b, "%s%s\n%s\n%s\n", fence, lang, strings.TrimRight(c.Source, "\n"), fence)
}
