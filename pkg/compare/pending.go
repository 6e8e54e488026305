package compare

import (
	"sort"

	"github.com/joshuapare/mockdiff/pkg/tree"
)

// Update is one staged path/value pair.
type Update struct {
	Path  tree.Path
	Value any
}

// Pending is an immutable snapshot of staged values keyed by canonical path.
type Pending struct {
	updates map[string]Update
}

// Get returns the staged value at a canonical path.
func (p Pending) Get(path string) (any, bool) {
	u, ok := p.updates[path]
	return u.Value, ok
}

// Len returns the number of staged paths.
func (p Pending) Len() int {
	return len(p.updates)
}

// Paths returns staged canonical paths in sorted order.
func (p Pending) Paths() []string {
	out := make([]string, 0, len(p.updates))
	for k := range p.updates {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Entries returns the staged updates sorted by canonical path.
func (p Pending) Entries() []Update {
	out := make([]Update, 0, len(p.updates))
	for _, k := range p.Paths() {
		out = append(out, p.updates[k])
	}
	return out
}

func (p Pending) with(path tree.Path, value any) Pending {
	m := make(map[string]Update, len(p.updates)+1)
	for k, u := range p.updates {
		m[k] = u
	}
	m[path.String()] = Update{Path: tree.NewPath(path...), Value: value}
	return Pending{updates: m}
}

func (p Pending) without(path string) Pending {
	if _, ok := p.updates[path]; !ok {
		return p
	}
	m := make(map[string]Update, len(p.updates))
	for k, u := range p.updates {
		if k != path {
			m[k] = u
		}
	}
	return Pending{updates: m}
}
