package tree_test

import (
	"testing"

	"github.com/0xalexb/srcfg/srcerr"
	"github.com/0xalexb/srcfg/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSection(t *testing.T, entries map[string]string) *tree.Section {
	t.Helper()

	section := tree.NewSection("test", nil)
	for key, value := range entries {
		section.Set(key, value)
	}

	return section
}

func TestSection_TypedAccessors(t *testing.T) {
	t.Parallel()

	section := newSection(t, map[string]string{
		"int":   "42",
		"float": "2.5",
		"bool":  "true",
		"pad":   " 77 ",
		"text":  "abc",
	})

	value, ok, err := section.GetInt("int")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), value)

	padded, ok, err := section.GetInt("pad")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(77), padded)

	f, ok, err := section.GetFloat("float")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 2.5, f, 1e-9)

	b, ok, err := section.GetBool("bool")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, b)

	s, ok := section.GetString("text")
	assert.True(t, ok)
	assert.Equal(t, "abc", s)
}

func TestSection_TypedAccessors_Missing(t *testing.T) {
	t.Parallel()

	section := newSection(t, nil)

	_, ok, err := section.GetInt("absent")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = section.GetFloat("absent")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok = section.GetString("absent")
	assert.False(t, ok)

	_, ok, err = section.GetJSON("absent", true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSection_TypedAccessors_ConversionFailure(t *testing.T) {
	t.Parallel()

	section := newSection(t, map[string]string{"text": "abc"})

	_, ok, err := section.GetInt("text")
	assert.True(t, ok)
	require.ErrorIs(t, err, tree.ErrConversion)
	assert.Equal(t, srcerr.KindConversion, srcerr.KindOf(err))
	assert.Contains(t, err.Error(), `key "text" as int`)

	_, ok, err = section.GetFloat("text")
	assert.True(t, ok)
	require.ErrorIs(t, err, tree.ErrConversion)

	_, ok, err = section.GetJSON("text", true)
	assert.True(t, ok)
	require.ErrorIs(t, err, tree.ErrConversion)
}

func TestSection_Namespace(t *testing.T) {
	t.Parallel()

	file := tree.NewFile()

	section, err := file.AddSection("global", nil, nil, false)
	require.NoError(t, err)

	_, err = file.AddSection("global.shared", nil, nil, false)
	require.NoError(t, err)

	section.Set("shared", "entry")
	section.Set("key", "value")

	node, value, ok := section.Lookup("shared")
	require.True(t, ok)
	require.NotNil(t, node, "child sections win over entries")
	assert.Equal(t, tree.KindSection, node.Kind())
	assert.Empty(t, value)

	node, value, ok = section.Lookup("key")
	require.True(t, ok)
	assert.Nil(t, node)
	assert.Equal(t, "value", value)

	_, _, ok = section.Lookup("nothing")
	assert.False(t, ok)

	assert.True(t, section.Contains("shared"))
	assert.True(t, section.Contains("key"))
	assert.True(t, section.HasKey("shared"))
	assert.Equal(t, []string{"key", "shared"}, section.Keys())
}

func TestSection_AppendAndEntriesCopy(t *testing.T) {
	t.Parallel()

	section := newSection(t, map[string]string{"key": "first line"})

	assert.True(t, section.Append("key", "continues here"))
	assert.False(t, section.Append("missing", "x"))

	entries := section.Entries()
	assert.Equal(t, map[string]string{"key": "first line\ncontinues here"}, entries)

	entries["key"] = "mutated"

	value, _ := section.GetString("key")
	assert.Equal(t, "first line\ncontinues here", value)
}

func TestFile_WrongKindAndNotFound(t *testing.T) {
	t.Parallel()

	file := tree.NewFile()

	_, err := file.AddSection("single", nil, nil, false)
	require.NoError(t, err)
	_, err = file.AddSection("many", nil, nil, true)
	require.NoError(t, err)

	_, err = file.GetSection("many")
	require.ErrorIs(t, err, tree.ErrUnexpectedArray)

	_, err = file.GetSectionList("single")
	require.ErrorIs(t, err, tree.ErrUnexpectedSection)

	_, err = file.GetSection("nope")
	require.ErrorIs(t, err, tree.ErrSectionNotFound)

	_, err = file.GetSectionList("nope")
	require.ErrorIs(t, err, tree.ErrSectionNotFound)

	assert.True(t, file.Contains("many"))
	assert.False(t, file.Contains("nope"))

	node, ok := file.Node("many")
	require.True(t, ok)
	assert.Equal(t, tree.KindArray, node.Kind())
	assert.Equal(t, 1, node.(*tree.Array).Len())
	assert.Equal(t, "array", node.Kind().String())
}
