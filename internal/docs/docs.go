package docs

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/proxpl/proxsite/internal/content"
)

// ErrTopicNotFound is returned when a topic has no content entry.
var ErrTopicNotFound = errors.New("topic not found")

// minContentQuery is the query length (in runes) a query must exceed before
// topic bodies are searched. Shorter queries only match names and titles.
const minContentQuery = 3

// Category is an ordered, titled group of topic names.
type Category struct {
	Title  string
	Topics []string
}

// Entry is the content stored for one topic.
type Entry struct {
	Name  string
	Title string // heading shown when the topic is open
	Body  []content.Node
}

// Index holds the static category list, the content store and the reading
// order derived from them. It is never modified after New returns.
type Index struct {
	categories []Category
	store      map[string]Entry
	flat       []string
	pos        map[string]int
	text       map[string]string // lowercased serialized bodies
}

// New builds an index. Entries are keyed by name; category topics without
// an entry are kept and simply cannot be opened.
func New(categories []Category, entries []Entry) *Index {
	idx := &Index{
		categories: cloneCategories(categories),
		store:      make(map[string]Entry, len(entries)),
		text:       make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		idx.store[e.Name] = e
		idx.text[e.Name] = strings.ToLower(content.Text(e.Body))
	}
	idx.flat = Flatten(idx.categories)
	idx.pos = make(map[string]int, len(idx.flat))
	for i, name := range idx.flat {
		if _, seen := idx.pos[name]; !seen {
			idx.pos[name] = i
		}
	}
	return idx
}

var defaultIndex = New(categories, entries)

// Default returns the index of the shipped documentation.
func Default() *Index {
	return defaultIndex
}

// Categories returns a copy of the categories in display order.
func (idx *Index) Categories() []Category {
	return cloneCategories(idx.categories)
}

func cloneCategories(cs []Category) []Category {
	out := make([]Category, len(cs))
	for i, c := range cs {
		out[i] = Category{Title: c.Title, Topics: slices.Clone(c.Topics)}
	}
	return out
}

// Lookup returns the entry for name, if any.
func (idx *Index) Lookup(name string) (Entry, bool) {
	e, ok := idx.store[name]
	return e, ok
}

// Get looks up a topic by name. The error wraps ErrTopicNotFound.
func (idx *Index) Get(name string) (Entry, error) {
	if e, ok := idx.store[name]; ok {
		return e, nil
	}
	return Entry{}, fmt.Errorf("%w: %q (run 'proxsite docs' to list topics)", ErrTopicNotFound, name)
}

// Integrity returns the topic names listed in a category that have no
// content entry, in reading order.
func (idx *Index) Integrity() []string {
	var missing []string
	for _, name := range idx.flat {
		if _, ok := idx.store[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Flatten concatenates the topic lists of categories in declaration order.
// Nothing is reordered or deduplicated.
func Flatten(categories []Category) []string {
	var flat []string
	for _, c := range categories {
		flat = append(flat, c.Topics...)
	}
	return flat
}

// Flat returns a copy of the full reading order.
func (idx *Index) Flat() []string {
	return slices.Clone(idx.flat)
}

// Adjacent returns the topics before and after name in the reading order.
// An empty string means there is none; both are empty when name is not in
// any category. A name listed twice resolves to its first position.
func (idx *Index) Adjacent(name string) (prev, next string) {
	i, ok := idx.pos[name]
	if !ok {
		return "", ""
	}
	if i > 0 {
		prev = idx.flat[i-1]
	}
	if i < len(idx.flat)-1 {
		next = idx.flat[i+1]
	}
	return prev, next
}

// Filter reduces the categories to the topics matching query. Matching is
// case-insensitive against the topic name, the category title and, for
// queries longer than three characters, the topic body. Categories left
// without topics are dropped. Order is preserved throughout.
func (idx *Index) Filter(query string) []Category {
	if query == "" {
		return cloneCategories(idx.categories)
	}
	q := strings.ToLower(query)
	searchBody := utf8.RuneCountInString(q) > minContentQuery

	var out []Category
	for _, c := range idx.categories {
		titleMatch := strings.Contains(strings.ToLower(c.Title), q)
		var kept []string
		for _, t := range c.Topics {
			if titleMatch || strings.Contains(strings.ToLower(t), q) ||
				(searchBody && strings.Contains(idx.text[t], q)) {
				kept = append(kept, t)
			}
		}
		if len(kept) > 0 {
			out = append(out, Category{Title: c.Title, Topics: kept})
		}
	}
	return out
}
