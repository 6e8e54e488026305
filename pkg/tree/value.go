package tree

import (
	"sort"
	"strconv"

	json "github.com/goccy/go-json"
)

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks a position that holds no value at all, as opposed to an
// explicit null. Lookups of missing keys return it.
var Undefined any = undefined{}

// IsDefined reports whether v is anything other than Undefined.
func IsDefined(v any) bool {
	_, ok := v.(undefined)
	return !ok
}

// Kind classifies a tree value.
type Kind int

const (
	KindNull Kind = iota // nil or Undefined
	KindObject
	KindArray
	KindString
	KindNumber
	KindBool
	KindUnknown // anything that is not JSON-compatible
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of v.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil, undefined:
		return KindNull
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	case string:
		return KindString
	case bool:
		return KindBool
	}
	if _, ok := toFloat(v); ok {
		return KindNumber
	}
	return KindUnknown
}

// AsObject returns v as an object, or false if it is not one.
func AsObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok && m != nil
}

// Get looks up key on v. It returns Undefined when v is not an object or the
// key is missing.
func Get(v any, key string) any {
	m, ok := AsObject(v)
	if !ok {
		return Undefined
	}
	child, ok := m[key]
	if !ok {
		return Undefined
	}
	return child
}

// Lookup walks keys starting at v. Missing keys and non-object
// intermediates yield Undefined.
func Lookup(v any, keys ...string) any {
	cur := v
	for _, k := range keys {
		cur = Get(cur, k)
		if !IsDefined(cur) {
			return Undefined
		}
	}
	return cur
}

// SortedKeys returns the keys of an object in sorted order.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Placeholders shown for collapsed composite values.
const (
	ObjectPlaceholder = "{...}"
	ArrayPlaceholder  = "[...]"
	NullDisplay       = "null"
)

// Display renders v for a single line: "null" for nil and Undefined, a
// placeholder for composites, and the scalar's string form otherwise.
func Display(v any) string {
	switch x := v.(type) {
	case nil, undefined:
		return NullDisplay
	case map[string]any:
		return ObjectPlaceholder
	case []any:
		return ArrayPlaceholder
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	}
	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return NullDisplay
	}
	return string(b)
}

// toFloat widens every Go numeric kind the tree may contain.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
