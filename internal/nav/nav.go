// Package nav is the documentation browser's navigation state machine.
//
// A State is either the overview (no topic open) or a topic view. Events are
// applied with Apply, which never mutates its input and never fails: events
// that cannot be honoured leave the state where it is.
package nav

import (
	"github.com/proxpl/proxsite/internal/content"
	"github.com/proxpl/proxsite/internal/docs"
)

// State is the per-session navigation record.
type State struct {
	Topic string `json:"topic,omitempty"` // empty means the overview
	Query string `json:"query,omitempty"`
	// ScrollTop is set by transitions that open a topic and asks the view
	// to return to the top of the page.
	ScrollTop bool `json:"scroll_top,omitempty"`
}

// Overview reports whether no topic is open.
func (s State) Overview() bool {
	return s.Topic == ""
}

// Event is an input to Apply.
type Event interface {
	event()
}

// Select opens the named topic.
type Select struct {
	Name string
}

// Prev opens the topic before the current one in reading order.
type Prev struct{}

// Next opens the topic after the current one in reading order.
type Next struct{}

// Back returns to the overview.
type Back struct{}

// Search sets the overview query.
type Search struct {
	Query string
}

// ClearSearch empties the overview query.
type ClearSearch struct{}

func (Select) event()      {}
func (Prev) event()        {}
func (Next) event()        {}
func (Back) event()        {}
func (Search) event()      {}
func (ClearSearch) event() {}

// Apply returns the state that results from e.
//
// Selecting a name without a content entry never produces a topic view: it
// returns to (or stays on) the overview. Prev and Next are no-ops on the
// overview, at the ends of the reading order, and when the neighbour has no
// entry.
func Apply(idx *docs.Index, s State, e Event) State {
	switch e := e.(type) {
	case Select:
		return open(idx, s, e.Name)
	case Prev:
		if s.Overview() {
			return s
		}
		prev, _ := idx.Adjacent(s.Topic)
		return step(idx, s, prev)
	case Next:
		if s.Overview() {
			return s
		}
		_, next := idx.Adjacent(s.Topic)
		return step(idx, s, next)
	case Back:
		s.Topic = ""
		s.ScrollTop = false
		return s
	case Search:
		s.Query = e.Query
		s.ScrollTop = false
		return s
	case ClearSearch:
		s.Query = ""
		s.ScrollTop = false
		return s
	}
	return s
}

// step moves to a neighbour. A missing neighbour, or one without an entry,
// leaves s unchanged.
func step(idx *docs.Index, s State, name string) State {
	if _, ok := idx.Lookup(name); name == "" || !ok {
		return s
	}
	return open(idx, s, name)
}

func open(idx *docs.Index, s State, name string) State {
	if _, ok := idx.Lookup(name); !ok {
		s.Topic = ""
		s.ScrollTop = false
		return s
	}
	return State{Topic: name, ScrollTop: true}
}

// TopicView is the render boundary for an open topic.
type TopicView struct {
	Name  string         `json:"name"`
	Title string         `json:"title"`
	Body  []content.Node `json:"-"`
	Prev  string         `json:"prev,omitempty"`
	Next  string         `json:"next,omitempty"`
}

// View is what the page shows for a state: exactly one of Topic and
// Overview is set.
type View struct {
	Topic     *TopicView     `json:"topic,omitempty"`
	Overview  *docs.Overview `json:"overview,omitempty"`
	ScrollTop bool           `json:"scroll_top,omitempty"`
}

// Render resolves s against the index. A topic that has lost its entry
// (for example a state restored after the catalog changed) renders as the
// overview.
func Render(idx *docs.Index, s State) View {
	if !s.Overview() {
		if e, ok := idx.Lookup(s.Topic); ok {
			prev, next := idx.Adjacent(s.Topic)
			return View{
				Topic: &TopicView{
					Name:  e.Name,
					Title: e.Title,
					Body:  e.Body,
					Prev:  prev,
					Next:  next,
				},
				ScrollTop: s.ScrollTop,
			}
		}
	}
	ov := idx.Overview(s.Query)
	return View{Overview: &ov}
}
