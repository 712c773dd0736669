package util

import (
	"fmt"
	"strings"

	"github.com/kbukum/utilkit/errors"
)

// DefaultMaxPasses caps the stalled passes of MapStrings.
const DefaultMaxPasses = 1000

// MapStrings rewrites text with mapping until nothing changes. Each pass
// replaces the first occurrence of every key, in sorted key order. Empty
// keys are ignored. A mapping that cycles back to an earlier text is
// rejected, as is one that stalls for more than DefaultMaxPasses passes.
// A pass stalls when it leaves at least as many key occurrences as the
// fewest seen so far, so texts with many occurrences still settle.
func MapStrings(text string, mapping map[string]string) (string, error) {
	return MapStringsN(text, mapping, DefaultMaxPasses)
}

// MapStringsN is MapStrings with an explicit stall limit.
func MapStringsN(text string, mapping map[string]string, maxPasses int) (string, error) {
	if maxPasses < 1 {
		return "", errors.InvalidArgument("maxPasses", "must be at least 1")
	}

	keys := make([]string, 0, len(mapping))
	for _, k := range SortedKeys(mapping) {
		if k != "" {
			keys = append(keys, k)
		}
	}

	seen := map[string]struct{}{text: {}}
	fewest := countKeys(text, keys)
	stalls := 0
	for {
		changed := false
		for _, k := range keys {
			if next := strings.Replace(text, k, mapping[k], 1); next != text {
				text = next
				changed = true
			}
		}
		if !changed {
			return text, nil
		}
		if _, ok := seen[text]; ok {
			return "", errors.InvalidArgument("mapping", "replacements cycle without settling")
		}
		seen[text] = struct{}{}

		// A settled text has no occurrences left, so the final pass is never a stall.
		if n := countKeys(text, keys); n < fewest {
			fewest = n
			continue
		}
		stalls++
		if stalls > maxPasses {
			return "", errors.InvalidArgument("mapping", fmt.Sprintf("no fixed point after %d stalled passes", maxPasses))
		}
	}
}

func countKeys(text string, keys []string) int {
	n := 0
	for _, k := range keys {
		n += strings.Count(text, k)
	}
	return n
}
