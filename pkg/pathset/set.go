// Package pathset tracks which tree positions are expanded.
//
// A Set is an immutable snapshot of canonical path strings. Toggle returns a
// new Set and never touches the receiver, so a render pass that holds a Set
// keeps seeing the same membership even if a toggle happens mid-traversal.
// Paths do not need to exist in any tree; stale entries are ignored by the
// renderer.
package pathset

import (
	"sort"

	"github.com/joshuapare/mockdiff/pkg/tree"
)

// Set is an immutable set of canonical paths. The zero value is empty and
// ready to use.
type Set struct {
	paths map[string]struct{}
}

// New returns a set holding the given paths.
func New(paths ...string) Set {
	m := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		m[p] = struct{}{}
	}
	return Set{paths: m}
}

// Contains reports whether path is in the set.
func (s Set) Contains(path string) bool {
	_, ok := s.paths[path]
	return ok
}

// ContainsPath is Contains for a structured path.
func (s Set) ContainsPath(p tree.Path) bool {
	return s.Contains(p.String())
}

// Len returns the number of paths.
func (s Set) Len() int {
	return len(s.paths)
}

// Toggle returns a copy of s with path's membership flipped.
func (s Set) Toggle(path string) Set {
	if s.Contains(path) {
		return s.Without(path)
	}
	return s.With(path)
}

// With returns a copy of s that also holds paths.
func (s Set) With(paths ...string) Set {
	out := s.clone(len(paths))
	for _, p := range paths {
		out.paths[p] = struct{}{}
	}
	return out
}

// Without returns a copy of s minus paths.
func (s Set) Without(paths ...string) Set {
	out := s.clone(0)
	for _, p := range paths {
		delete(out.paths, p)
	}
	return out
}

// Paths returns the members in sorted order.
func (s Set) Paths() []string {
	out := make([]string, 0, len(s.paths))
	for p := range s.paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets have the same members.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for p := range s.paths {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

func (s Set) clone(extra int) Set {
	m := make(map[string]struct{}, len(s.paths)+extra)
	for p := range s.paths {
		m[p] = struct{}{}
	}
	return Set{paths: m}
}
