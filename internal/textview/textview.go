// Package textview renders a diffnode forest as indented plain text, one
// line per materialized node.
package textview

import (
	"strings"

	"github.com/joshuapare/mockdiff/pkg/diffnode"
	"github.com/joshuapare/mockdiff/pkg/tree"
)

// Tree glyphs.
const (
	IconExpanded  = "▾"
	IconCollapsed = "▸"
	IconLeaf      = "•"
	PendingTag    = "*pending"
	arrow         = " → "
)

// Options controls line layout.
type Options struct {
	Width       int  // 0 = unlimited
	OnlyDiff    bool // keep only differing nodes and their ancestors
	ShowCompare bool // append the other side's value to modified leaves
}

// Line is one rendered row together with the node it came from.
type Line struct {
	Node *diffnode.Node
	Text string
}

// Lines flattens nodes into display rows.
func Lines(nodes []*diffnode.Node, opts Options) []Line {
	var out []Line
	for _, root := range nodes {
		root.Walk(func(n *diffnode.Node) bool {
			if opts.OnlyDiff && !hasDifference(n) {
				return false
			}
			out = append(out, Line{Node: n, Text: FormatNode(n, opts)})
			return true
		})
	}
	return out
}

// Render joins Lines with newlines. An empty forest renders as "".
func Render(nodes []*diffnode.Node, opts Options) string {
	lines := Lines(nodes, opts)
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatNode renders a single row: status marker, indentation, glyph, key
// and value.
func FormatNode(n *diffnode.Node, opts Options) string {
	var b strings.Builder
	b.WriteString(n.Status.Marker())
	b.WriteByte(' ')
	b.WriteString(strings.Repeat("  ", n.Depth()))
	b.WriteString(Icon(n))
	b.WriteByte(' ')
	b.WriteString(n.Key)
	b.WriteString(": ")
	b.WriteString(n.Display)

	if opts.ShowCompare && n.Status == diffnode.Modified && !n.Expandable {
		b.WriteString(arrow)
		b.WriteString(tree.Display(n.Compare))
	}
	if n.HasPending {
		b.WriteByte(' ')
		b.WriteString(PendingTag)
	}
	return Truncate(b.String(), opts.Width)
}

// Icon returns the tree glyph for n.
func Icon(n *diffnode.Node) string {
	switch {
	case n.Expandable && n.Expanded:
		return IconExpanded
	case n.Expandable:
		return IconCollapsed
	default:
		return IconLeaf
	}
}

func hasDifference(n *diffnode.Node) bool {
	if n.Different() || n.HasPending {
		return true
	}
	for _, c := range n.Children {
		if hasDifference(c) {
			return true
		}
	}
	return false
}
