package pathset

import "github.com/joshuapare/mockdiff/pkg/tree"

// Seed builds the initial, fully expanded set for a record pair.
//
// It always holds the store root. For every tree it then adds, depth first,
// the path of each object node below the root. Array-of-record roots
// contribute storeName.id for every record with an id, followed by that
// record's object nodes. Arrays below the root are not descended into.
// Absent or scalar trees contribute nothing beyond the root.
func Seed(storeName string, trees ...any) Set {
	root := tree.NewPath(storeName)
	m := map[string]struct{}{root.String(): {}}

	for _, t := range trees {
		switch tree.ShapeOf(t) {
		case tree.ShapeObject:
			walkObjects(m, root, t.(map[string]any))
		case tree.ShapeRecords:
			for _, rec := range t.([]any) {
				id, ok := tree.RecordID(rec)
				if !ok {
					continue
				}
				p := root.Child(id)
				m[p.String()] = struct{}{}
				walkObjects(m, p, rec.(map[string]any))
			}
		}
	}
	return Set{paths: m}
}

func walkObjects(m map[string]struct{}, at tree.Path, obj map[string]any) {
	for k, v := range obj {
		child, ok := v.(map[string]any)
		if !ok {
			continue
		}
		p := at.Child(k)
		m[p.String()] = struct{}{}
		walkObjects(m, p, child)
	}
}
