package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/utilkit/errors"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "hello", want: "hello"},
		{name: "simple tags", in: "<b>bold</b> text", want: "bold text"},
		{name: "attributes", in: `<a href="x">link</a>`, want: "link"},
		{name: "entities", in: "a &amp; b", want: "a & b"},
		{name: "script dropped", in: "<p>hi</p><script>alert(1)</script>", want: "hi"},
		{name: "style dropped", in: "<style>p{}</style>ok", want: "ok"},
		{name: "self closing", in: "a<br/>b", want: "ab"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.in))
		})
	}
}

func TestStripNonAlphanumeric(t *testing.T) {
	assert.Equal(t, "abc123", StripNonAlphanumeric("a-b c!1_2.3"))
	assert.Equal(t, "", StripNonAlphanumeric("!@#"))
	assert.Equal(t, "caf", StripNonAlphanumeric("café"))
	assert.Equal(t, "Zz09", StripNonAlphanumeric("Zz09"))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{NameStripNonAlphanumeric, NameStripTags}, r.Names())

	out, err := r.Apply(NameStripTags, "<i>x</i>")
	require.NoError(t, err)
	assert.Equal(t, "x", out)

	_, err = r.Apply("missing", "x")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidArgument))

	r.Register("upper", func(s string) string { return s + "!" })
	out, err = r.Apply("upper", "hey")
	require.NoError(t, err)
	assert.Equal(t, "hey!", out)

	r.Register("upper", nil)
	_, ok := r.Get("upper")
	assert.False(t, ok)

	assert.Empty(t, NewEmptyRegistry().Names())
}
