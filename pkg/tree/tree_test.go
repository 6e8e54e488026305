package tree

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestPath_Canonical(t *testing.T) {
	p := NewPath("orders", "ord_1", "payment", "amount")
	require.Equal(t, "orders.ord_1.payment.amount", p.String())
	require.True(t, ParsePath(p.String()).Equal(p))
	require.Equal(t, "", Path{}.String())
	require.Len(t, ParsePath(""), 0)
}

func TestPath_ChildDoesNotAlias(t *testing.T) {
	base := make(Path, 2, 8)
	base[0], base[1] = "a", "b"

	left := base.Child("x")
	right := base.Child("y")

	require.Equal(t, "a.b.x", left.String())
	require.Equal(t, "a.b.y", right.String())
}

func TestPath_ParentAncestors(t *testing.T) {
	p := NewPath("a", "b", "c")
	assert.Equal(t, "a.b", p.Parent().String())
	assert.Equal(t, "c", p.Last())
	assert.Equal(t, []string{"a", "a.b"}, p.Ancestors())
	assert.True(t, p.HasPrefix(NewPath("a", "b")))
	assert.False(t, p.HasPrefix(NewPath("b")))
	assert.Empty(t, Path{}.Parent())
}

func TestEqual_KeyOrderInsignificant(t *testing.T) {
	a := decode(t, `{"a":1,"b":{"x":[1,2,{"k":"v"}],"y":null}}`)
	b := decode(t, `{"b":{"y":null,"x":[1,2,{"k":"v"}]},"a":1}`)
	require.True(t, Equal(a, b))
}

func TestEqual_ArrayOrderSignificant(t *testing.T) {
	require.False(t, Equal(decode(t, `[1,2]`), decode(t, `[2,1]`)))
}

func TestEqual_NumbersByValue(t *testing.T) {
	require.True(t, Equal(100, 100.0))
	require.True(t, Equal(int64(7), json.Number("7")))
	require.False(t, Equal(100, "100"))
}

func TestEqual_NullAndUndefined(t *testing.T) {
	require.True(t, Equal(nil, Undefined))
	require.True(t, Equal(Undefined, nil))
	require.False(t, Equal(nil, false))
}

func TestEqual_Symmetric(t *testing.T) {
	values := []any{
		nil, Undefined, 0, 1.5, "s", true,
		decode(t, `{"a":1}`), decode(t, `{"a":2}`), decode(t, `{"a":1,"b":2}`),
		decode(t, `[]`), decode(t, `[1]`), decode(t, `{}`),
	}
	for _, a := range values {
		for _, b := range values {
			assert.Equal(t, Equal(a, b), Equal(b, a), "a=%v b=%v", a, b)
		}
	}
}

func TestDiffers_UndefinedComparisonNeverDiffers(t *testing.T) {
	require.False(t, Differs(100, Undefined))
	require.False(t, Differs(Undefined, nil))
	require.True(t, Differs(Undefined, 5))
	require.True(t, Differs(100, 150))
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{Undefined, "null"},
		{map[string]any{"a": 1}, "{...}"},
		{[]any{1}, "[...]"},
		{"open", "open"},
		{150.0, "150"},
		{0.25, "0.25"},
		{true, "true"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Display(tt.in))
	}
}

func TestGetLookup(t *testing.T) {
	v := decode(t, `{"payment":{"amount":100,"note":null}}`)

	assert.Equal(t, 100.0, Lookup(v, "payment", "amount"))
	assert.Nil(t, Lookup(v, "payment", "note"))
	assert.False(t, IsDefined(Lookup(v, "payment", "missing")))
	assert.False(t, IsDefined(Lookup(v, "payment", "amount", "deeper")))
	assert.False(t, IsDefined(Get("scalar", "x")))
}

func TestShapeAndRecords(t *testing.T) {
	assert.Equal(t, ShapeAbsent, ShapeOf(nil))
	assert.Equal(t, ShapeAbsent, ShapeOf(Undefined))
	assert.Equal(t, ShapeObject, ShapeOf(decode(t, `{}`)))
	assert.Equal(t, ShapeRecords, ShapeOf(decode(t, `[]`)))
	assert.Equal(t, ShapeScalar, ShapeOf("x"))

	records := decode(t, `[{"id":"a","v":1},{"v":2},{"id":"a","v":3},{"id":7},"junk"]`)
	idx := IndexByID(records)
	require.Len(t, idx, 1)
	assert.Equal(t, 1.0, Get(idx["a"], "v"))

	_, ok := RecordID(map[string]any{"id": ""})
	assert.False(t, ok)
}

func TestClone_IsDeep(t *testing.T) {
	src := decode(t, `{"a":{"b":[1,{"c":2}]}}`)
	dup := Clone(src)
	require.True(t, Equal(src, dup))

	dup.(map[string]any)["a"].(map[string]any)["b"].([]any)[1].(map[string]any)["c"] = 3.0
	assert.Equal(t, 2.0, Lookup(src, "a", "b").([]any)[1].(map[string]any)["c"])
	assert.Equal(t, "x", Clone("x"))
}
