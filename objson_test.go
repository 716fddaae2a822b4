package objson

import (
	"errors"
	"strings"
	"testing"

	"github.com/objson/go-objson/ir"
	"github.com/objson/go-objson/parse"

	"github.com/stretchr/testify/require"
)

func TestParseEncodeRoundTrip(t *testing.T) {
	// values whose strings are free of quotes and backslashes re-parse
	// to the same value
	docs := []string{
		`null`,
		`true`,
		`-12.25`,
		`"hello world"`,
		`[]`,
		`{}`,
		`[1,null,"x",{"k":[true]}]`,
		`{"a":1,"b":{"c":[2,3]},"d":"text"}`,
	}
	for _, d := range docs {
		node, err := ParseString(d)
		require.NoError(t, err, d)
		out := MustString(node)
		back, err := ParseString(out)
		require.NoError(t, err, out)
		require.True(t, Equal(node, back), "%s round-tripped to %s", d, out)
	}
}

func TestRoundTripGap(t *testing.T) {
	// string contents are emitted verbatim, so a value holding a quote
	// produces text that does not re-parse to the same value
	node := ir.FromString(`he said "hi"`)
	out := MustString(node)
	require.Equal(t, `"he said "hi""`, out)

	back, err := ParseString(out)
	if err == nil {
		require.False(t, Equal(node, back))
	}
}

func TestParseRejectsTrailing(t *testing.T) {
	_, err := ParseString(`{"a":1} extra`)
	require.Error(t, err)
	require.True(t, errors.Is(err, parse.ErrUnexpectedChar))
}

func TestEmptyContainers(t *testing.T) {
	obj, err := ParseString(` { } `)
	require.NoError(t, err)
	require.Equal(t, `{}`, MustString(obj))

	arr, err := ParseString("\t[\n]\r")
	require.NoError(t, err)
	require.Equal(t, `[]`, MustString(arr))
}

func TestDescribe(t *testing.T) {
	node, err := ParseString(`{"a":[1]}`)
	require.NoError(t, err)
	require.Equal(t, `object:{"a":[1]}`, Describe(node))
}

func TestDiff(t *testing.T) {
	a, err := ParseString(`{"a":1,"b":2}`)
	require.NoError(t, err)
	b, err := ParseString(`{"a":1,"b":3}`)
	require.NoError(t, err)

	same := DiffText(a, a.Clone())
	require.NotContains(t, same, "\x1b[32m")
	require.NotContains(t, same, "\x1b[31m")

	text := DiffText(a, b)
	require.Contains(t, text, "3")
	require.Contains(t, text, "\x1b[32m")
	require.NotEmpty(t, Diff(a, b))
}

func TestMergePatch(t *testing.T) {
	doc, err := ParseString(`{"a":1,"b":{"c":2,"d":3},"e":"x"}`)
	require.NoError(t, err)
	patch, err := ParseString(`{"b":{"c":9},"e":null,"f":true}`)
	require.NoError(t, err)

	got, err := MergePatch(doc, patch)
	require.NoError(t, err)

	want, err := ParseString(`{"a":1,"b":{"c":9,"d":3},"f":true}`)
	require.NoError(t, err)
	require.True(t, Equal(want, got), "got %s", MustString(got))

	// inputs untouched
	require.NotNil(t, ir.Get(doc, "e"))
}

func TestDiffTextMarksChange(t *testing.T) {
	a, err := ParseString(`["one","two"]`)
	require.NoError(t, err)
	b, err := ParseString(`["one","three"]`)
	require.NoError(t, err)
	text := DiffText(a, b)
	require.True(t, strings.Contains(text, "one"))
}
