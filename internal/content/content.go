// Package content models documentation bodies as a small tree of renderable
// nodes so they can be searched and rendered without a UI framework.
package content

import (
	"regexp"
	"strings"
)

// Node is one block of renderable content. The concrete types are
// Paragraph, Heading, List, Code and Cards.
type Node interface {
	node()
}

// Paragraph is a block of inline text.
type Paragraph struct {
	Text string
}

// Heading is a section heading inside a topic body.
type Heading struct {
	Text string
}

// List is a bulleted or numbered list of inline text items.
type List struct {
	Ordered bool
	Items   []string
}

// Code is a fenced source listing with an optional caption.
type Code struct {
	Lang   string // defaults to DefaultLang
	Title  string
	Source string
}

// Cards is a grid of short highlighted blurbs.
type Cards struct {
	Items []string
}

func (Paragraph) node() {}
func (Heading) node()   {}
func (List) node()      {}
func (Code) node()      {}
func (Cards) node()     {}

// DefaultLang is used for code listings that do not name a language.
const DefaultLang = "proxpl"

// P returns a paragraph node.
func P(text string) Paragraph { return Paragraph{Text: text} }

// H returns a heading node.
func H(text string) Heading { return Heading{Text: text} }

// Bullets returns an unordered list.
func Bullets(items ...string) List { return List{Items: items} }

// Steps returns an ordered list.
func Steps(items ...string) List { return List{Ordered: true, Items: items} }

// Snippet returns a code listing.
func Snippet(lang, title, source string) Code {
	return Code{Lang: lang, Title: title, Source: source}
}

// Grid returns a card grid.
func Grid(items ...string) Cards { return Cards{Items: items} }

var linkRe = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)

var inlineMarkup = strings.NewReplacer("**", "", "`", "")

// Plain strips the inline markup subset (bold, code spans, links) from s.
func Plain(s string) string {
	return inlineMarkup.Replace(linkRe.ReplaceAllString(s, "$1"))
}

// Text serializes nodes to plain text by walking the tree. Each block and
// each list item ends up on its own line. Code listings contribute their
// caption and source verbatim.
func Text(nodes []Node) string {
	var parts []string
	for _, n := range nodes {
		switch n := n.(type) {
		case Paragraph:
			parts = append(parts, Plain(n.Text))
		case Heading:
			parts = append(parts, Plain(n.Text))
		case List:
			for _, it := range n.Items {
				parts = append(parts, Plain(it))
			}
		case Cards:
			for _, it := range n.Items {
				parts = append(parts, Plain(it))
			}
		case Code:
			if n.Title != "" {
				parts = append(parts, n.Title)
			}
			parts = append(parts, n.Source)
		}
	}
	return strings.Join(parts, "\n")
}
