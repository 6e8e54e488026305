package tree

// Clone deep-copies objects and arrays. Scalars are returned as is.
func Clone(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, child := range x {
			out[k] = Clone(child)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, child := range x {
			out[i] = Clone(child)
		}
		return out
	default:
		return v
	}
}
