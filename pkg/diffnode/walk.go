package diffnode

import "github.com/joshuapare/mockdiff/pkg/tree"

// Walk visits n and its materialized descendants depth first. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the materialized node at path, or nil.
func Find(nodes []*Node, path tree.Path) *Node {
	var found *Node
	for _, root := range nodes {
		root.Walk(func(n *Node) bool {
			if found != nil {
				return false
			}
			if n.Path.Equal(path) {
				found = n
				return false
			}
			return path.HasPrefix(n.Path)
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// Flatten returns every materialized node in display order.
func Flatten(nodes []*Node) []*Node {
	var out []*Node
	for _, root := range nodes {
		root.Walk(func(n *Node) bool {
			out = append(out, n)
			return true
		})
	}
	return out
}

// Summary counts nodes by status across a forest.
type Summary struct {
	Total     int
	Modified  int
	Unmatched int
	Pending   int
}

// Summarize counts materialized nodes.
func Summarize(nodes []*Node) Summary {
	var s Summary
	for _, n := range Flatten(nodes) {
		s.Total++
		switch n.Status {
		case Modified:
			s.Modified++
		case Unmatched:
			s.Unmatched++
		}
		if n.HasPending {
			s.Pending++
		}
	}
	return s
}

// ExpandablePaths returns the canonical path of every expandable node that is
// materialized. Collapsed nodes hide their subtree, so callers that want
// every object path should seed from the data instead.
func ExpandablePaths(nodes []*Node) []string {
	var out []string
	for _, n := range Flatten(nodes) {
		if n.Expandable {
			out = append(out, n.Path.String())
		}
	}
	return out
}
