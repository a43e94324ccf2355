package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove_ToFront(t *testing.T) {
	got := Move([]string{"A", "B", "C", "D"}, 3, 0)
	assert.Equal(t, []string{"D", "A", "B", "C"}, got)
}

func TestMove_Forward(t *testing.T) {
	got := Move([]string{"A", "B", "C", "D"}, 0, 2)
	assert.Equal(t, []string{"B", "C", "A", "D"}, got)
}

func TestMove_NoOpAndOutOfRange(t *testing.T) {
	orig := []string{"A", "B", "C"}
	assert.Equal(t, orig, Move(orig, 1, 1))
	assert.Equal(t, orig, Move(orig, -1, 0))
	assert.Equal(t, orig, Move(orig, 0, 3))
	// Input slice is never mutated
	Move(orig, 2, 0)
	assert.Equal(t, []string{"A", "B", "C"}, orig)
}
