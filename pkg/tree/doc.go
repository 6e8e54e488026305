// Package tree holds the value model shared by the diff core: JSON-compatible
// values, the Undefined sentinel, canonical paths, and structural equality.
//
// Values are what encoding/json produces when decoding into an interface:
// map[string]any, []any, string, float64, bool and nil. Integer kinds are also
// accepted so callers can build trees by hand.
//
// # Paths
//
// A Path is rooted at the store name, then the record id, then nested keys:
//
//	tree.Path{"orders", "ord_1", "payment", "amount"}.String() // "orders.ord_1.payment.amount"
//
// Arrays are never addressed by index. Arrays of records are addressed by the
// string "id" field of each element.
package tree
