package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPushDoesNotMutateOriginal(t *testing.T) {
	root := Key{}
	child := root.Push("a")
	assert.Equal(t, 0, root.Len())
	assert.Equal(t, 1, child.Len())

	grandchild := child.PushIndex(3)
	assert.Equal(t, 1, child.Len(), "deriving grandchild must not extend child in place")
	assert.Equal(t, 2, grandchild.Len())
}

func TestKeyPopIsNonMutating(t *testing.T) {
	k := Key{}.Push("a").Push("b")
	popped := k.Pop()
	assert.Equal(t, 2, k.Len())
	assert.Equal(t, 1, popped.Len())
	assert.True(t, popped.Equal(Key{}.Push("a")))
}

func TestKeyPopOnEmptyIsNoOp(t *testing.T) {
	k := Key{}
	assert.Equal(t, 0, k.Pop().Len())
}

func TestKeyEqual(t *testing.T) {
	a := Key{}.Push("x").PushIndex(1)
	b := Key{}.Push("x").PushIndex(1)
	c := Key{}.Push("x").PushIndex(2)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestKeyEqualDifferentLength(t *testing.T) {
	a := Key{}.Push("x")
	b := Key{}.Push("x").Push("y")
	assert.False(t, a.Equal(b))
}

func TestKeyEqualIdentifierVsIndexSameValue(t *testing.T) {
	identifier := Key{}.Push("0")
	index := Key{}.PushIndex(0)
	assert.False(t, identifier.Equal(index), "segment kind distinguishes a name from an index even with the same text")
}

func TestCursorDescendAndAscend(t *testing.T) {
	k := Key{}.Push("a").PushIndex(2)
	cur := k.Cursor()

	seg, cur, ok := cur.Descend()
	require.True(t, ok)
	assert.Equal(t, SegmentIdentifier, seg.Kind)
	assert.Equal(t, "a", seg.Name)

	seg, cur, ok = cur.Descend()
	require.True(t, ok)
	assert.Equal(t, SegmentIndex, seg.Kind)
	assert.Equal(t, 2, seg.Idx)

	_, _, ok = cur.Descend()
	assert.False(t, ok, "descending past the end reports ok=false")

	cur = cur.Ascend()
	seg, _, ok = cur.Descend()
	require.True(t, ok)
	assert.Equal(t, SegmentIndex, seg.Kind)
}

func TestCursorAscendAtRootIsNoOp(t *testing.T) {
	k := Key{}.Push("a")
	cur := k.Cursor()
	assert.Equal(t, cur, cur.Ascend())
}

func TestKeyGetTraversesObjectAndArray(t *testing.T) {
	doc := NewObject(KV{Key: "items", Value: NewArray([]Json{
		NewString("x"), NewString("y"),
	})})

	k := Key{}.Push("items").PushIndex(1)
	val, ok := k.Get(&doc)
	require.True(t, ok)
	assert.Equal(t, "y", val.Str)
}

func TestKeyGetMissingMember(t *testing.T) {
	doc := NewObject(KV{Key: "a", Value: NewNull()})
	_, ok := Key{}.Push("missing").Get(&doc)
	assert.False(t, ok)
}

func TestKeyGetIndexOutOfRange(t *testing.T) {
	doc := NewArray([]Json{NewNull()})
	_, ok := Key{}.PushIndex(5).Get(&doc)
	assert.False(t, ok)
}

func TestKeyGetKindMismatch(t *testing.T) {
	doc := NewNumber(Number{Integer: 1})
	_, ok := Key{}.Push("a").Get(&doc)
	assert.False(t, ok)

	_, ok = Key{}.PushIndex(0).Get(&doc)
	assert.False(t, ok)
}

func TestKeyGetRootIsIdentity(t *testing.T) {
	doc := NewBool(true)
	val, ok := Key{}.Get(&doc)
	require.True(t, ok)
	assert.Equal(t, &doc, val)
}

func TestKeyStringRendersPointer(t *testing.T) {
	k := Key{}.Push("a").PushIndex(2).Push("b")
	assert.Equal(t, "/a/2/b", k.String())
}

func TestKeyStringEmptyIsEmptyString(t *testing.T) {
	assert.Equal(t, "", Key{}.String())
}

func TestKeyStringEscapesTildeAndSlash(t *testing.T) {
	k := Key{}.Push("a/b~c")
	assert.Equal(t, "/a~1b~0c", k.String())
}

func TestParsePointerRoundTrip(t *testing.T) {
	k := ParsePointer("/a/2/b")
	assert.Equal(t, "/a/2/b", k.String())
}

func TestParsePointerUnescapesTildeAndSlash(t *testing.T) {
	k := ParsePointer("/a~1b~0c")
	require.Equal(t, 1, k.Len())
	assert.Equal(t, "a/b~c", k.Segments()[0].Name)
}

func TestParsePointerEmptyIsRoot(t *testing.T) {
	k := ParsePointer("")
	assert.Equal(t, 0, k.Len())
}
