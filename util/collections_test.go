package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOf(t *testing.T) {
	tests := []struct {
		name     string
		needle   int
		haystack []int
		want     int
	}{
		{"found", 2, []int{1, 2, 3}, 1},
		{"first match", 2, []int{2, 2}, 0},
		{"not found", 4, []int{1, 2, 3}, -1},
		{"empty slice", 1, []int{}, -1},
		{"nil slice", 1, nil, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IndexOf(tc.needle, tc.haystack))
		})
	}
}

func TestIndexOf_StrictEquality(t *testing.T) {
	assert.Equal(t, 2, IndexOf[any](1, []any{"1", 1.0, 1}), "only the int matches")
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b", "c"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "z"))
}

func TestKeys(t *testing.T) {
	keys := Keys(map[string]int{"a": 1, "b": 2})
	require.Len(t, keys, 2)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3}))
	assert.Empty(t, SortedKeys(map[string]int{}))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "hello", Coalesce("", "", "hello", "world"))
	assert.Equal(t, 42, Coalesce(0, 0, 42))
	assert.Equal(t, "", Coalesce("", ""))
}
