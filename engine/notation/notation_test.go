package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkers-local/types"
)

func TestSquareNumbering(t *testing.T) {
	tests := []struct {
		pos    types.Position
		square int
	}{
		{types.Pos(0, 1), 1},
		{types.Pos(0, 7), 4},
		{types.Pos(1, 0), 5},
		{types.Pos(2, 1), 9},
		{types.Pos(5, 0), 21},
		{types.Pos(6, 1), 25},
		{types.Pos(7, 6), 32},
	}

	for _, tt := range tests {
		sq, ok := PosToSquare(tt.pos)
		require.True(t, ok, "%s", tt.pos)
		assert.Equal(t, tt.square, sq, "%s", tt.pos)
	}
}

func TestSquareNumbersUnique(t *testing.T) {
	seen := map[int]bool{}
	for sq := 0; sq < types.NumSquares; sq++ {
		pos := types.PositionAt(sq)
		n, ok := PosToSquare(pos)
		if !pos.IsDark() {
			assert.False(t, ok, "%s", pos)
			continue
		}
		require.True(t, ok)
		assert.False(t, seen[n], "duplicate number %d", n)
		seen[n] = true
	}
	assert.Len(t, seen, 32)
}

func TestSquareOffBoard(t *testing.T) {
	_, ok := PosToSquare(types.Pos(8, 1))
	assert.False(t, ok)
}

func TestFormatMove(t *testing.T) {
	simple := types.Move{From: types.Pos(6, 1), To: types.Pos(5, 0), Outcome: types.OutcomeSimple}
	assert.Equal(t, "25-21", FormatMove(simple))

	jump := types.Move{From: types.Pos(5, 2), To: types.Pos(3, 4), Outcome: types.OutcomeJump}
	assert.Equal(t, "22x15", FormatMove(jump))

	assert.Equal(t, "0,0", FormatSquare(types.Pos(0, 0)))
}

func TestPlayerLabel(t *testing.T) {
	assert.Equal(t, "You", PlayerLabel(types.Player1))
	assert.Equal(t, "CPU", PlayerLabel(types.Player2))
}
