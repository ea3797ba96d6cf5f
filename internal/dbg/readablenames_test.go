package dbg

import (
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	assert.Equal(t, "Ø", Name(nil))

	first := Name("input.txt")
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Name("input.txt"))
}

func TestReduction(t *testing.T) {
	plain := aurora.NewAurora(false)
	assert.Equal(t, "120 → 12 (90.0% removed)", Reduction(plain, 120, 12))
	assert.Equal(t, "3 → 3 (0.0% removed)", Reduction(plain, 3, 3))
	assert.Equal(t, "0 → 0 (0.0% removed)", Reduction(plain, 0, 0))

	colored := aurora.NewAurora(true)
	assert.Contains(t, Reduction(colored, 120, 12), "120 → 12")
	assert.NotEqual(t, Reduction(plain, 120, 12), Reduction(colored, 120, 12))
}
