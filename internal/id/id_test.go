package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUniqueAndSorted(t *testing.T) {
	t.Parallel()

	const n = 1000
	seen := make(map[string]bool, n)

	prev := ""
	for i := 0; i < n; i++ {
		got := New()
		assert.Len(t, got, 26)
		assert.False(t, seen[got], "duplicate id %s", got)
		seen[got] = true

		if prev != "" {
			assert.Less(t, prev, got)
		}
		prev = got
	}
}
