package recordstore

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/wI2L/jsondiff"
)

// Operation is one RFC 6902 step turning the database document into the
// candidate document.
type Operation struct {
	Op    string `json:"op"`
	From  string `json:"from,omitempty"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// MarshalJSON keeps the value member for add, replace and test even when it
// is null.
func (o Operation) MarshalJSON() ([]byte, error) {
	switch o.Op {
	case "add", "replace", "test":
		return json.Marshal(struct {
			Op    string `json:"op"`
			From  string `json:"from,omitempty"`
			Path  string `json:"path"`
			Value any    `json:"value"`
		}{o.Op, o.From, o.Path, o.Value})
	default:
		type plain Operation
		return json.Marshal(plain(o))
	}
}

// Diff computes the JSON Patch from db to candidate. It is the exchange
// format for tools outside mockdiff; the diff core itself never uses it.
func Diff(db, candidate any) ([]Operation, error) {
	src, err := json.Marshal(db)
	if err != nil {
		return nil, fmt.Errorf("encode database: %w", err)
	}
	dst, err := json.Marshal(candidate)
	if err != nil {
		return nil, fmt.Errorf("encode candidate: %w", err)
	}

	patch, err := jsondiff.CompareJSON(src, dst)
	if err != nil {
		return nil, fmt.Errorf("compare documents: %w", err)
	}

	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("encode patch: %w", err)
	}
	ops := make([]Operation, 0, len(patch))
	if err := json.Unmarshal(raw, &ops); err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	return ops, nil
}
