package tree

import "strings"

// Separator joins path segments in canonical form.
const Separator = "."

// Path is an ordered list of segments identifying a position in a tree.
type Path []string

// NewPath builds a path from segments.
func NewPath(segments ...string) Path {
	p := make(Path, len(segments))
	copy(p, segments)
	return p
}

// ParsePath splits a canonical path string. The empty string is the empty path.
func ParsePath(s string) Path {
	if s == "" {
		return Path{}
	}
	return Path(strings.Split(s, Separator))
}

// String returns the canonical dot-joined form.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// Child returns a new path with key appended. The receiver is never aliased.
func (p Path) Child(key string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, key)
}

// Parent returns the path without its last segment.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return NewPath(p[:len(p)-1]...)
}

// Last returns the final segment, or "" for the empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Equal reports whether both paths have the same segments.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is an ancestor of (or equal to) p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	return p[:len(prefix)].Equal(prefix)
}

// Ancestors returns every proper ancestor in canonical form, root first.
// e.g., "a.b.c" -> ["a", "a.b"].
func (p Path) Ancestors() []string {
	if len(p) < 2 {
		return []string{}
	}
	out := make([]string, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		out = append(out, p[:i].String())
	}
	return out
}
