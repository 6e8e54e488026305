package recordstore

import (
	"fmt"
	"strconv"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	json "github.com/goccy/go-json"

	"github.com/joshuapare/mockdiff/pkg/compare"
	"github.com/joshuapare/mockdiff/pkg/tree"
)

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer translates a store path into a JSON Pointer inside doc. The first
// segment is the store name and is not part of the document. For arrays of
// records the second segment is a record id and becomes that record's index.
func Pointer(doc any, path tree.Path) (string, error) {
	if len(path) < 2 {
		return "", fmt.Errorf("%w: %q", ErrPath, path.String())
	}

	var b strings.Builder
	keys := path[1:]

	switch tree.ShapeOf(doc) {
	case tree.ShapeAbsent:
		return "", ErrNoDocument
	case tree.ShapeRecords:
		idx := recordIndex(doc.([]any), path[1])
		if idx < 0 {
			return "", fmt.Errorf("%w: %q", ErrRecordNotFound, path[1])
		}
		b.WriteString("/" + strconv.Itoa(idx))
		keys = path[2:]
	case tree.ShapeObject:
	default:
		return "", fmt.Errorf("%w: %s", ErrShape, tree.ShapeOf(doc))
	}

	for _, k := range keys {
		b.WriteString("/" + pointerEscaper.Replace(k))
	}
	return b.String(), nil
}

type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// UpdateByPath returns a copy of doc with value written at path.
func UpdateByPath(doc any, path tree.Path, value any) (any, error) {
	return ApplyUpdates(doc, []compare.Update{{Path: path, Value: value}})
}

// ApplyUpdates writes every update into a copy of doc as one RFC 6902 patch.
// Either all updates apply or doc is returned unchanged with an error.
func ApplyUpdates(doc any, updates []compare.Update) (any, error) {
	if len(updates) == 0 {
		return doc, nil
	}

	ops := make([]patchOp, 0, len(updates))
	for _, u := range updates {
		ptr, err := Pointer(doc, u.Path)
		if err != nil {
			return doc, err
		}
		op := "add"
		if tree.ShapeOf(doc) == tree.ShapeRecords && len(u.Path) == 2 {
			op = "replace"
		}
		ops = append(ops, patchOp{Op: op, Path: ptr, Value: u.Value})
	}

	rawPatch, err := json.Marshal(ops)
	if err != nil {
		return doc, fmt.Errorf("encode patch: %w", err)
	}
	patch, err := jsonpatch.DecodePatch(rawPatch)
	if err != nil {
		return doc, fmt.Errorf("decode patch: %w", err)
	}

	rawDoc, err := json.Marshal(doc)
	if err != nil {
		return doc, fmt.Errorf("encode document: %w", err)
	}
	patched, err := patch.Apply(rawDoc)
	if err != nil {
		return doc, fmt.Errorf("apply patch: %w", err)
	}
	return Decode(patched)
}

func recordIndex(records []any, id string) int {
	for i, rec := range records {
		if got, ok := tree.RecordID(rec); ok && got == id {
			return i
		}
	}
	return -1
}
