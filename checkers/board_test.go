package checkers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkers-local/types"
)

func TestNewBoardLayout(t *testing.T) {
	b := NewBoard()
	for sq := 0; sq < types.NumSquares; sq++ {
		pos := types.PositionAt(sq)
		pc, ok := b.Get(pos)
		r, c := pos.Row, pos.Col
		switch {
		case (r == 0 && c%2 == 1) || (r == 1 && c%2 == 0):
			require.True(t, ok, "expected piece at %s", pos)
			assert.Equal(t, types.Player2, pc.Owner)
			assert.False(t, pc.King)
		case (r == 7 && c%2 == 0) || (r == 6 && c%2 == 1):
			require.True(t, ok, "expected piece at %s", pos)
			assert.Equal(t, types.Player1, pc.Owner)
			assert.False(t, pc.King)
		default:
			assert.False(t, ok, "expected %s empty", pos)
		}
	}

	n := b.Count()
	assert.Equal(t, 8, n[types.Player1])
	assert.Equal(t, 8, n[types.Player2])
}

func TestBoardOffBoard(t *testing.T) {
	b := NewBoard()
	before := b

	pc, ok := b.Get(types.Pos(-1, 0))
	assert.False(t, ok)
	assert.True(t, pc.Empty())
	assert.False(t, b.IsOccupied(types.Pos(8, 8)))
	assert.Equal(t, types.NoPlayer, b.Owner(types.Pos(0, 9)))

	b.Set(types.Pos(8, 0), types.NewPiece(types.Player1))
	b.Clear(types.Pos(0, -1))
	assert.Equal(t, before, b)
}

func TestBoardSetUnknownOwner(t *testing.T) {
	b := NewBoard()
	before := b

	b.Set(types.Pos(4, 4), types.Piece{Owner: types.Player(7)})
	assert.Equal(t, before, b)
	assert.Equal(t, [3]int{0, 8, 8}, b.Count())

	b.Set(types.Pos(6, 1), types.Piece{King: true})
	assert.False(t, b.IsOccupied(types.Pos(6, 1)))
	assert.Equal(t, 0, b.Codes()[6][1])
}

func TestBoardCloneIndependent(t *testing.T) {
	b := NewBoard()
	c := b.Clone()
	c.Clear(types.Pos(6, 1))

	assert.True(t, b.IsOccupied(types.Pos(6, 1)))
	assert.False(t, c.IsOccupied(types.Pos(6, 1)))
}

func TestSimpleMove(t *testing.T) {
	tests := []struct {
		name  string
		board string
		actor types.Player
		from  types.Position
		to    types.Position
		ok    bool
	}{
		{"man forward", "", types.Player1, types.Pos(6, 1), types.Pos(5, 0), true},
		{"wrong owner", "", types.Player2, types.Pos(6, 1), types.Pos(5, 0), false},
		{"empty source", "", types.Player1, types.Pos(5, 0), types.Pos(4, 1), false},
		{"occupied target", "", types.Player1, types.Pos(7, 0), types.Pos(6, 1), false},
		{"two rows", "", types.Player1, types.Pos(6, 1), types.Pos(4, 1), false},
		{"straight", "", types.Player1, types.Pos(6, 1), types.Pos(5, 1), false},
		{"off board target", "", types.Player1, types.Pos(6, 7), types.Pos(5, 8), false},
		{"computer forward", "", types.Player2, types.Pos(1, 0), types.Pos(2, 1), true},
		{"man backward", "........\n........\n........\n........\n...1....", types.Player1, types.Pos(4, 3), types.Pos(5, 4), false},
		{"king backward", "........\n........\n........\n........\n...K....", types.Player1, types.Pos(4, 3), types.Pos(5, 4), true},
		{"computer king backward", "........\n........\n........\n........\n...k....", types.Player2, types.Pos(4, 3), types.Pos(3, 2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			if tt.board != "" {
				b = ParseBoard(tt.board)
			}
			before := b
			pc, _ := b.Get(tt.from)

			got := b.SimpleMove(tt.actor, tt.from, tt.to)
			require.Equal(t, tt.ok, got)
			if !tt.ok {
				assert.Equal(t, before, b, "board must be untouched")
				return
			}
			assert.False(t, b.IsOccupied(tt.from))
			moved, ok := b.Get(tt.to)
			require.True(t, ok)
			assert.Equal(t, pc, moved)
		})
	}
}

func TestSimpleJump(t *testing.T) {
	board := `
........
........
..2.....
...1....
........
.....2..
......1.
........`

	t.Run("captures", func(t *testing.T) {
		b := ParseBoard(board)
		require.True(t, b.SimpleJump(types.Player1, types.Pos(3, 3), types.Pos(1, 1)))
		assert.False(t, b.IsOccupied(types.Pos(3, 3)))
		assert.False(t, b.IsOccupied(types.Pos(2, 2)))
		assert.Equal(t, types.Player1, b.Owner(types.Pos(1, 1)))
	})

	t.Run("no victim", func(t *testing.T) {
		b := ParseBoard(board)
		assert.False(t, b.SimpleJump(types.Player1, types.Pos(3, 3), types.Pos(1, 5)))
	})

	t.Run("own piece", func(t *testing.T) {
		b := ParseBoard("........\n........\n........\n........\n........\n...1....\n....1...")
		assert.False(t, b.SimpleJump(types.Player1, types.Pos(6, 4), types.Pos(4, 2)))
	})

	t.Run("man cannot jump backward", func(t *testing.T) {
		b := ParseBoard(board)
		assert.False(t, b.SimpleJump(types.Player2, types.Pos(5, 5), types.Pos(3, 3)))
	})

	t.Run("computer man forward", func(t *testing.T) {
		b := ParseBoard(board)
		require.True(t, b.SimpleJump(types.Player2, types.Pos(5, 5), types.Pos(7, 7)))
		assert.False(t, b.IsOccupied(types.Pos(6, 6)))
	})

	t.Run("initial layout has no captures", func(t *testing.T) {
		b := NewBoard()
		assert.False(t, b.SimpleJump(types.Player1, types.Pos(7, 0), types.Pos(5, 2)))
	})
}

func TestPromote(t *testing.T) {
	b := ParseBoard("1.......\n........\n........\n........\n........\n........\n........\n2......2")

	assert.True(t, b.Promote(types.Pos(0, 0)))
	pc, _ := b.Get(types.Pos(0, 0))
	assert.True(t, pc.King)
	assert.False(t, b.Promote(types.Pos(0, 0)), "already a king")

	assert.True(t, b.Promote(types.Pos(7, 0)))
	assert.False(t, b.Promote(types.Pos(3, 3)), "empty square")

	b.Set(types.Pos(4, 4), types.NewPiece(types.Player1))
	assert.False(t, b.Promote(types.Pos(4, 4)), "not on king row")
}

func TestBoardStringRoundTrip(t *testing.T) {
	b := NewBoard()
	b.Set(types.Pos(3, 3), types.NewPiece(types.Player1).Crowned())
	b.Set(types.Pos(4, 4), types.NewPiece(types.Player2).Crowned())

	assert.Equal(t, b, ParseBoard(b.String()))
	assert.Equal(t, ".2.2.2.2\n", b.String()[:9])
}

func TestBoardCodes(t *testing.T) {
	b := NewBoard()
	b.Set(types.Pos(3, 3), types.NewPiece(types.Player1).Crowned())
	b.Set(types.Pos(4, 4), types.NewPiece(types.Player2).Crowned())

	codes := b.Codes()
	assert.Equal(t, 2, codes[0][1])
	assert.Equal(t, 1, codes[7][0])
	assert.Equal(t, 0, codes[0][0])
	assert.Equal(t, 3, codes[3][3])
	assert.Equal(t, 4, codes[4][4])
}
