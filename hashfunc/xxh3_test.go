//go:build unit

package hashfunc

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestXXH3HashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates valid slot numbers", func(t *testing.T) {
		// Prepare
		h := &XXH3HashAlgorithm{}
		tableSize := 23
		visit := make([]int, tableSize)

		// Execute
		for i := 0; i < 1000; i++ {
			slot := h.HashFunc1(fmt.Sprintf("key-%d", i), tableSize)
			assert.GreaterOrEqualf(t, slot, 0, "slot not negative for key #%d", i)
			assert.Lessf(t, slot, tableSize, "slot less than table size for key #%d", i)
			visit[slot]++
		}

		// Check
		for i := 0; i < tableSize; i++ {
			assert.NotZerof(t, visit[i], "slot #%d is used", i)
		}
	})

	t.Run("is deterministic per seed", func(t *testing.T) {
		// Prepare
		h1 := &XXH3HashAlgorithm{Seed: 1}
		h2 := &XXH3HashAlgorithm{Seed: 1}

		// Check
		assert.Equal(t, h1.HashFunc1("lorem", 1009), h2.HashFunc1("lorem", 1009), "same seed same slot")
		assert.Equal(t, h1.HashFunc2("lorem"), h2.HashFunc2("lorem"), "same seed same step")
	})
}

func TestXXH3HashAlgorithm_HashFunc2(t *testing.T) {
	t.Run("creates steps within range", func(t *testing.T) {
		// Prepare
		h := &XXH3HashAlgorithm{}

		// Execute and Check
		for i := 0; i < 1000; i++ {
			step := h.HashFunc2(fmt.Sprintf("key-%d", i))
			assert.GreaterOrEqualf(t, step, 1, "step positive for key #%d", i)
			assert.LessOrEqualf(t, step, int(XXH3MaxStep), "step within max for key #%d", i)
		}
	})
}
