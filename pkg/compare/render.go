package compare

import (
	"strconv"

	"github.com/joshuapare/mockdiff/pkg/diffnode"
	"github.com/joshuapare/mockdiff/pkg/tree"
)

// RenderDatabase renders the authoritative side against the candidate.
// Differing positions offer a transfer.
func (c *Controller) RenderDatabase() []*diffnode.Node {
	return c.RenderSide(c.database, c.candidate, false)
}

// RenderCandidate renders the candidate side against the database. It is
// always read-only.
func (c *Controller) RenderCandidate() []*diffnode.Node {
	return c.RenderSide(c.candidate, c.database, true)
}

// RenderSide renders data against comparison, one root node per record for
// arrays of records and one per top-level key for single objects.
//
// Records are paired by id. A record without a counterpart is marked
// Unmatched and offers no transfer. Comparison records without a
// counterpart in data are not shown. Array elements lacking a string id are
// rendered as plain leaves keyed by their index.
func (c *Controller) RenderSide(data, comparison any, readOnly bool) []*diffnode.Node {
	opts := diffnode.Options{
		Expanded: c.expanded,
		Pending:  c.pending,
		ReadOnly: readOnly,
	}
	root := tree.NewPath(c.storeName)

	switch tree.ShapeOf(data) {
	case tree.ShapeAbsent:
		return nil

	case tree.ShapeRecords:
		counterparts := recordIndex(comparison)
		records := data.([]any)
		nodes := make([]*diffnode.Node, 0, len(records))
		for i, rec := range records {
			id, ok := tree.RecordID(rec)
			if !ok {
				nodes = append(nodes, leaf(strconv.Itoa(i), root.Child(strconv.Itoa(i)), rec, opts))
				continue
			}
			match, found := counterparts[id]
			if !found {
				n := diffnode.Render(id, root.Child(id), rec, tree.Undefined, opts)
				n.Status = diffnode.Unmatched
				nodes = append(nodes, n)
				continue
			}
			nodes = append(nodes, diffnode.Render(id, root.Child(id), rec, match, opts))
		}
		return nodes

	case tree.ShapeObject:
		obj := data.(map[string]any)
		nodes := make([]*diffnode.Node, 0, len(obj))
		for _, k := range tree.SortedKeys(obj) {
			nodes = append(nodes, diffnode.Render(k, root.Child(k), obj[k], tree.Get(comparison, k), opts))
		}
		return nodes

	default:
		return []*diffnode.Node{leaf(c.storeName, root, data, opts)}
	}
}

// recordIndex pairs records by id. A lone object with an id counts as a
// one-record list.
func recordIndex(v any) map[string]any {
	if id, ok := tree.RecordID(v); ok {
		return map[string]any{id: v}
	}
	return tree.IndexByID(v)
}

// leaf renders a malformed position without comparison or children.
func leaf(key string, path tree.Path, v any, opts diffnode.Options) *diffnode.Node {
	n := diffnode.Render(key, path, v, tree.Undefined, diffnode.Options{Pending: opts.Pending})
	n.Expandable = false
	return n
}
