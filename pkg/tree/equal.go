package tree

import "reflect"

// Equal reports whether a and b are structurally identical. Object key order
// is irrelevant, arrays compare element by element, numbers compare by value
// regardless of Go numeric kind, and nil equals Undefined.
func Equal(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}

	switch ka {
	case KindNull:
		return true
	case KindObject:
		ma, mb := a.(map[string]any), b.(map[string]any)
		if len(ma) != len(mb) {
			return false
		}
		for k, va := range ma {
			vb, ok := mb[k]
			if !ok || !Equal(va, vb) {
				return false
			}
		}
		return true
	case KindArray:
		sa, sb := a.([]any), b.([]any)
		if len(sa) != len(sb) {
			return false
		}
		for i := range sa {
			if !Equal(sa[i], sb[i]) {
				return false
			}
		}
		return true
	case KindNumber:
		fa, _ := toFloat(a)
		fb, _ := toFloat(b)
		return fa == fb
	case KindString, KindBool:
		return a == b
	default:
		return reflect.DeepEqual(a, b)
	}
}

// Differs reports whether a comparison value disagrees with the primary value.
// An Undefined comparison never differs.
func Differs(primary, comparison any) bool {
	if !IsDefined(comparison) {
		return false
	}
	return !Equal(primary, comparison)
}
