package diffnode

// Status is the difference state of a node.
type Status int

const (
	Unchanged Status = iota // no comparison value, or the values are equal
	Modified                // comparison value is defined and differs
	Unmatched               // record with no counterpart on the other side
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Modified:
		return "modified"
	case Unmatched:
		return "unmatched"
	default:
		return "unknown"
	}
}

// Marker returns the one-character prefix used by text renderers.
func (s Status) Marker() string {
	switch s {
	case Modified:
		return "~"
	case Unmatched:
		return "+"
	default:
		return " "
	}
}
