package mockgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONDocumentKeyOrder(t *testing.T) {
	doc, err := ParseJSONDocument([]byte(`{"zebra": 1, "apple": 2, "mango": 3}`))
	require.NoError(t, err)

	require.True(t, doc.IsMapping())
	assert.Equal(t, []string{"zebra", "apple", "mango"}, doc.Keys())

	key, _, ok := doc.FirstEntry()
	require.True(t, ok)
	assert.Equal(t, "zebra", key)
}

func TestParseJSONDocumentDuplicateKeys(t *testing.T) {
	doc, err := ParseJSONDocument([]byte(`{"a": "first", "b": "x", "a": "second"}`))
	require.NoError(t, err)

	// Order keeps the first occurrence, value keeps the last.
	assert.Equal(t, []string{"a", "b"}, doc.Keys())
	child, ok := doc.Child("a")
	require.True(t, ok)
	v, ok := child.StringValue()
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestParseJSONDocumentNested(t *testing.T) {
	doc, err := ParseJSONDocument([]byte(`{"outer": {"inner": "value"}, "list": [1, "two"]}`))
	require.NoError(t, err)

	outer, ok := doc.Child("outer")
	require.True(t, ok)
	inner, ok := outer.Child("inner")
	require.True(t, ok)
	v, ok := inner.StringValue()
	require.True(t, ok)
	assert.Equal(t, "value", v)

	list, ok := doc.Child("list")
	require.True(t, ok)
	assert.False(t, list.IsMapping())
	require.Len(t, list.items, 2)
}

func TestParseJSONDocumentErrors(t *testing.T) {
	for _, text := range []string{``, `{`, `{"a":}`, `[1,2`, `{"a":1} extra`} {
		_, err := ParseJSONDocument([]byte(text))
		assert.Error(t, err, "input %q", text)
	}
}

func TestParseYAMLDocumentKeyOrder(t *testing.T) {
	doc, err := ParseYAMLDocument([]byte("zebra: 1\napple: 2\nmango: 3\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"zebra", "apple", "mango"}, doc.Keys())
}

func TestParseYAMLDocumentEmpty(t *testing.T) {
	_, err := ParseYAMLDocument([]byte(""))
	assert.Error(t, err)
}

func TestChildOnNonMapping(t *testing.T) {
	doc, err := ParseJSONDocument([]byte(`[1, 2, 3]`))
	require.NoError(t, err)

	_, ok := doc.Child("anything")
	assert.False(t, ok)

	_, _, ok = doc.FirstEntry()
	assert.False(t, ok)
}
