package tree

// IDKey is the field that identifies a record inside an array of records.
const IDKey = "id"

// Shape describes how one side of a record pair is laid out.
type Shape int

const (
	ShapeAbsent  Shape = iota // nil or Undefined
	ShapeObject               // single object
	ShapeRecords              // array of records
	ShapeScalar               // anything else; rendered as a leaf
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeAbsent:
		return "absent"
	case ShapeObject:
		return "object"
	case ShapeRecords:
		return "records"
	default:
		return "scalar"
	}
}

// ShapeOf classifies a side of a record pair.
func ShapeOf(v any) Shape {
	switch KindOf(v) {
	case KindNull:
		return ShapeAbsent
	case KindObject:
		return ShapeObject
	case KindArray:
		return ShapeRecords
	default:
		return ShapeScalar
	}
}

// RecordID returns the string id of a record, or false if v is not an object
// carrying a non-empty string id.
func RecordID(v any) (string, bool) {
	m, ok := AsObject(v)
	if !ok {
		return "", false
	}
	id, ok := m[IDKey].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// IndexByID maps record ids to records. Elements without an id are skipped.
// The first record wins when ids repeat.
func IndexByID(v any) map[string]any {
	out := make(map[string]any)
	arr, ok := v.([]any)
	if !ok {
		return out
	}
	for _, el := range arr {
		id, ok := RecordID(el)
		if !ok {
			continue
		}
		if _, seen := out[id]; !seen {
			out[id] = el
		}
	}
	return out
}
