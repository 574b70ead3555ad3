package docs

import "strings"

// Overview is what the documentation landing page shows for a query.
type Overview struct {
	Query  string  `json:"query"`
	Groups []Group `json:"groups"`
	Empty  bool    `json:"empty"` // nothing matched; render the no-results state
}

// Group is one surviving category in an Overview.
type Group struct {
	Title  string `json:"title"`
	Topics []Link `json:"topics"`
}

// Link is one topic in a Group.
type Link struct {
	Name string `json:"name"`
	// Match marks topics whose name contains the query. It only drives
	// highlighting; filtering has already happened.
	Match bool `json:"match"`
	// Available is false for topics without a content entry.
	Available bool `json:"available"`
}

// Overview filters the index by query and annotates each topic.
func (idx *Index) Overview(query string) Overview {
	q := strings.ToLower(query)
	ov := Overview{Query: query, Groups: []Group{}}
	for _, c := range idx.Filter(query) {
		g := Group{Title: c.Title}
		for _, t := range c.Topics {
			_, ok := idx.store[t]
			g.Topics = append(g.Topics, Link{
				Name:      t,
				Match:     q != "" && strings.Contains(strings.ToLower(t), q),
				Available: ok,
			})
		}
		ov.Groups = append(ov.Groups, g)
	}
	ov.Empty = len(ov.Groups) == 0
	return ov
}
