//go:build unit

package crt

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestName(t *testing.T) {
	t.Run("returns names for all techniques", func(t *testing.T) {
		// Execute
		linear, err1 := Name(LinearProbing)
		quadratic, err2 := Name(QuadraticProbing)
		double, err3 := Name(DoubleHashing)

		// Check
		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.NoError(t, err3)
		assert.Equal(t, "linear", linear)
		assert.Equal(t, "quadratic", quadratic)
		assert.Equal(t, "double", double)
	})

	t.Run("fails on unknown technique", func(t *testing.T) {
		// Execute
		_, err := Name(42)

		// Check
		assert.ErrorIs(t, err, UnknownTechnique{}, "unknown technique")
		assert.False(t, Valid(42), "not a valid technique")
	})
}

func TestParse(t *testing.T) {
	t.Run("parses names regardless of case and padding", func(t *testing.T) {
		// Execute
		technique, err := Parse(" Quadratic ")

		// Check
		assert.NoError(t, err, "parses name")
		assert.Equal(t, QuadraticProbing, technique, "correct technique")
	})

	t.Run("fails on unknown name", func(t *testing.T) {
		// Execute
		_, err := Parse("cuckoo")

		// Check
		assert.True(t, errors.Is(err, UnknownTechnique{}), "wraps UnknownTechnique")
		assert.Contains(t, err.Error(), "cuckoo", "names the input")
	})
}

func TestErrors(t *testing.T) {
	t.Run("zero value errors have default messages", func(t *testing.T) {
		assert.Equal(t, "no record found", NoRecordFound{}.Error())
		assert.Equal(t, "table full", TableFull{}.Error())
		assert.Contains(t, ProbingAlgorithm{}.Error(), "exhausted")
		assert.Contains(t, InvalidKey{}.Error(), "non-empty")
		assert.Contains(t, InvalidCapacity{}.Error(), "positive")
	})
}
