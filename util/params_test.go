package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/utilkit/errors"
)

func add(a, b int) int { return a + b }

func TestParamRegistry(t *testing.T) {
	r := NewParamRegistry()

	require.NoError(t, r.Register(add, "a", "b"))
	assert.Equal(t, []string{"a", "b"}, r.Names(add))

	noArgs := func() {}
	require.NoError(t, r.Register(noArgs))
	assert.Equal(t, []string{}, r.Names(noArgs))

	assert.Equal(t, []string{}, r.Names(func(x int) {}))
	assert.Equal(t, []string{}, r.Names(42))
	assert.NotNil(t, r.Names(nil))
}

func TestParamRegistry_ReturnsCopy(t *testing.T) {
	r := NewParamRegistry()
	require.NoError(t, r.Register(add, "a", "b"))
	r.Names(add)[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, r.Names(add))
}

func TestParamRegistry_Invalid(t *testing.T) {
	r := NewParamRegistry()

	err := r.Register("not a func", "a")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidArgument))

	err = r.Register(add, "a")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidArgument))
}

func TestGetParamNames_PackageRegistry(t *testing.T) {
	fn := func(first string, rest ...int) {}
	require.NoError(t, RegisterParamNames(fn, "first", "rest"))
	assert.Equal(t, []string{"first", "rest"}, GetParamNames(fn))
}

func TestParseParamNames(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{name: "go literal", source: "func(a, b int, c string) {}", want: []string{"a", "b", "c"}},
		{name: "go declaration", source: "func add(x int, y int) int { return x + y }", want: []string{"x", "y"}},
		{name: "go variadic", source: "func(xs ...int) {}", want: []string{"xs"}},
		{name: "go unnamed", source: "func(int, string) {}", want: []string{}},
		{name: "text scan", source: "function (a, b) { return a + b; }", want: []string{"a", "b"}},
		{name: "comments stripped", source: "function (a /* first */, // second\n b) {}", want: []string{"a", "b"}},
		{name: "empty parens", source: "function () {}", want: []string{}},
		{name: "no parens", source: "nothing", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseParamNames(tt.source))
		})
	}
}
