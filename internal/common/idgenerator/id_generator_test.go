package idgenerator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	g := New()

	t.Run("stays within schema limits", func(t *testing.T) {
		id := g.Generate()
		assert.Len(t, id, 24)
		assert.LessOrEqual(t, len(id), 35)
		for _, c := range id {
			isAlnum := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
			assert.True(t, isAlnum, "unexpected character %q in %s", c, id)
		}
	})

	t.Run("unique per call", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id := g.Generate()
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}
