package recordstore

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/joshuapare/mockdiff/pkg/tree"
)

// GenerateStableKey returns a fresh record id that passes compare.ValidateID.
func GenerateStableKey() string {
	return uuid.NewString()
}

// CloneRecord returns a copy of db with the candidate record appended under
// newID. A single candidate object is used as is; for a list the first
// object is copied.
func CloneRecord(db, candidate any, newID string) (any, error) {
	src, ok := firstRecord(candidate)
	if !ok {
		return db, ErrNoCandidate
	}
	rec := tree.Clone(src).(map[string]any)
	rec[tree.IDKey] = newID

	switch tree.ShapeOf(db) {
	case tree.ShapeAbsent:
		return []any{rec}, nil
	case tree.ShapeRecords:
		records := db.([]any)
		if recordIndex(records, newID) >= 0 {
			return db, fmt.Errorf("%w: %q", ErrRecordExists, newID)
		}
		out := make([]any, 0, len(records)+1)
		out = append(out, tree.Clone(records).([]any)...)
		return append(out, rec), nil
	default:
		if id, ok := tree.RecordID(db); ok && id == newID {
			return db, fmt.Errorf("%w: %q", ErrRecordExists, newID)
		}
		return db, fmt.Errorf("%w: cannot add a record to a %s document", ErrShape, tree.ShapeOf(db))
	}
}

// ApproveRecords returns the database document after the candidate becomes
// authoritative. Candidate records replace database records with the same id
// and new ids are appended. Any other combination replaces the document.
func ApproveRecords(db, candidate any) (any, error) {
	if tree.ShapeOf(candidate) == tree.ShapeAbsent {
		return db, ErrNoCandidate
	}
	if tree.ShapeOf(db) != tree.ShapeRecords {
		return tree.Clone(candidate), nil
	}

	var incoming []any
	switch tree.ShapeOf(candidate) {
	case tree.ShapeRecords:
		incoming = candidate.([]any)
	case tree.ShapeObject:
		if _, ok := tree.RecordID(candidate); !ok {
			return tree.Clone(candidate), nil
		}
		incoming = []any{candidate}
	default:
		return tree.Clone(candidate), nil
	}

	out := tree.Clone(db).([]any)
	for _, rec := range incoming {
		id, ok := tree.RecordID(rec)
		if !ok {
			continue
		}
		if i := recordIndex(out, id); i >= 0 {
			out[i] = tree.Clone(rec)
			continue
		}
		out = append(out, tree.Clone(rec))
	}
	return out, nil
}

func firstRecord(v any) (map[string]any, bool) {
	switch tree.ShapeOf(v) {
	case tree.ShapeObject:
		return v.(map[string]any), true
	case tree.ShapeRecords:
		for _, el := range v.([]any) {
			if m, ok := tree.AsObject(el); ok {
				return m, true
			}
		}
	}
	return nil, false
}
