package local

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkers-local/checkers"
	"checkers-local/engine"
	"checkers-local/engine/advisor"
	"checkers-local/types"
)

func connected(t *testing.T) *LocalEngine {
	t.Helper()
	e := NewLocalEngine(engine.DefaultConfig())
	require.NoError(t, e.Connect())
	return e
}

// withBoard replaces the starting position of a connected engine.
func withBoard(t *testing.T, e *LocalEngine, board string) {
	t.Helper()
	e.mu.Lock()
	e.game.SetBoard(checkers.ParseBoard(board))
	e.unlockAndNotify()
}

func TestConnectRejectsUnknownRanking(t *testing.T) {
	e := NewLocalEngine(engine.GameConfig{Ranking: advisor.Ranking("minimax")})
	assert.Error(t, e.Connect())
}

func TestGetBoardStateBeforeConnect(t *testing.T) {
	e := NewLocalEngine(engine.DefaultConfig())
	st := e.GetBoardState()
	require.NotNil(t, st)
	assert.False(t, st.Finished())
	assert.False(t, e.IsMyTurn())

	_, err := e.Click(types.Pos(6, 1))
	assert.ErrorIs(t, err, engine.ErrNotYourTurn)
}

func TestClickAndCommit(t *testing.T) {
	e := connected(t)

	var states []*types.BoardState
	e.OnMove(func(st *types.BoardState) { states = append(states, st) })

	out, err := e.Click(types.Pos(6, 1))
	require.NoError(t, err)
	assert.Equal(t, types.OutcomeNone, out)
	require.Len(t, states, 1)
	require.NotNil(t, states[0].Selected)
	assert.Equal(t, types.Pos(6, 1), *states[0].Selected)
	assert.False(t, e.CanCommit())

	out, err = e.Click(types.Pos(5, 0))
	require.NoError(t, err)
	assert.Equal(t, types.OutcomeSimple, out)
	assert.True(t, e.CanCommit())

	_, err = e.Click(types.Pos(5, 0))
	assert.ErrorIs(t, err, engine.ErrTurnComplete)

	require.NoError(t, e.Commit())
	assert.True(t, e.IsMyTurn())
	assert.False(t, e.CanCommit())

	st := e.GetBoardState()
	assert.Equal(t, 1, st.At(types.Pos(5, 0)))
	assert.Equal(t, 2, st.At(types.Pos(2, 1)))
	assert.Equal(t, 0, st.At(types.Pos(1, 0)))
	assert.Equal(t, 2, st.MoveNumber)
	require.NotNil(t, st.LastMove)
	assert.Equal(t, types.Player2, st.LastMove.Player)
	assert.Nil(t, st.Selected)
	assert.Equal(t, st, states[len(states)-1])
}

func TestClickErrors(t *testing.T) {
	e := connected(t)

	_, err := e.Click(types.Pos(4, 1))
	assert.ErrorIs(t, err, engine.ErrNoSelection, "empty square")

	_, err = e.Click(types.Pos(1, 0))
	assert.ErrorIs(t, err, engine.ErrNoSelection, "computer piece")

	assert.ErrorIs(t, e.Commit(), engine.ErrNothingToCommit)

	_, err = e.Click(types.Pos(6, 1))
	require.NoError(t, err)
	out, err := e.Click(types.Pos(4, 1))
	assert.ErrorIs(t, err, engine.ErrIllegalMove)
	assert.Equal(t, types.OutcomeNone, out)
	assert.Nil(t, e.GetBoardState().Selected, "a failed second click drops the selection")
	assert.Equal(t, 0, e.game.HistoryLen(), "a rejected move leaves no undo entry")
}

func TestClickSameSquareDeselects(t *testing.T) {
	e := connected(t)

	_, err := e.Click(types.Pos(6, 1))
	require.NoError(t, err)
	out, err := e.Click(types.Pos(6, 1))
	require.NoError(t, err)
	assert.Equal(t, types.OutcomeNone, out)
	assert.Nil(t, e.GetBoardState().Selected)
	assert.False(t, e.CanCommit())
}

func TestJumpSequence(t *testing.T) {
	e := connected(t)
	withBoard(t, e, `
.......2
........
...2....
........
...2....
..1.....
........
1.......`)

	_, err := e.Click(types.Pos(5, 2))
	require.NoError(t, err)
	out, err := e.Click(types.Pos(3, 4))
	require.NoError(t, err)
	require.Equal(t, types.OutcomeJump, out)
	assert.True(t, e.CanCommit())

	st := e.GetBoardState()
	require.NotNil(t, st.Jumper)
	assert.Equal(t, types.Pos(3, 4), *st.Jumper)
	assert.Equal(t, 2, st.P2Pieces)

	// only the jumping piece may continue
	_, err = e.Click(types.Pos(7, 0))
	assert.ErrorIs(t, err, engine.ErrNoSelection)

	// a simple move cannot continue a sequence
	_, err = e.Click(types.Pos(3, 4))
	require.NoError(t, err)
	_, err = e.Click(types.Pos(2, 5))
	assert.ErrorIs(t, err, engine.ErrIllegalMove)
	st = e.GetBoardState()
	assert.Equal(t, 1, st.At(types.Pos(3, 4)))
	assert.Equal(t, 0, st.At(types.Pos(2, 5)))

	_, err = e.Click(types.Pos(3, 4))
	require.NoError(t, err)
	out, err = e.Click(types.Pos(1, 2))
	require.NoError(t, err)
	require.Equal(t, types.OutcomeJump, out)

	st = e.GetBoardState()
	require.NotNil(t, st.Jumper)
	assert.Equal(t, types.Pos(1, 2), *st.Jumper)
	assert.Equal(t, 1, st.P2Pieces)

	require.NoError(t, e.Commit())
	st = e.GetBoardState()
	assert.Nil(t, st.Jumper)
	assert.Equal(t, 2, st.At(types.Pos(1, 6)))
	assert.True(t, e.IsMyTurn())
}

func TestUndoAbandonsJump(t *testing.T) {
	e := connected(t)
	withBoard(t, e, `
.......2
........
........
........
...2....
..1.....`)

	_, err := e.Click(types.Pos(5, 2))
	require.NoError(t, err)
	_, err = e.Click(types.Pos(3, 4))
	require.NoError(t, err)
	require.True(t, e.CanCommit())

	require.NoError(t, e.Undo())
	st := e.GetBoardState()
	assert.Nil(t, st.Jumper)
	assert.Equal(t, 1, st.At(types.Pos(5, 2)))
	assert.Equal(t, 2, st.At(types.Pos(4, 3)))
	assert.False(t, e.CanCommit())
}

func TestUndoSecondJumpKeepsSequence(t *testing.T) {
	e := connected(t)
	withBoard(t, e, `
.......2
........
...2....
........
...2....
..1.....
........
1.......`)

	for _, sq := range []types.Position{types.Pos(5, 2), types.Pos(3, 4), types.Pos(3, 4), types.Pos(1, 2)} {
		_, err := e.Click(sq)
		require.NoError(t, err)
	}
	require.NoError(t, e.Undo())

	st := e.GetBoardState()
	require.NotNil(t, st.Jumper)
	assert.Equal(t, types.Pos(3, 4), *st.Jumper)
	assert.Equal(t, 1, st.At(types.Pos(3, 4)))
	assert.Equal(t, 2, st.At(types.Pos(2, 3)))
	assert.Equal(t, 2, st.P2Pieces)
	assert.True(t, e.CanCommit())

	// the first jump is still on the board, so no simple move may follow it
	_, err := e.Click(types.Pos(7, 0))
	assert.ErrorIs(t, err, engine.ErrNoSelection)
	_, err = e.Click(types.Pos(3, 4))
	require.NoError(t, err)
	_, err = e.Click(types.Pos(2, 5))
	assert.ErrorIs(t, err, engine.ErrIllegalMove)
	assert.True(t, e.CanCommit())

	// undoing the first jump ends the sequence
	require.NoError(t, e.Undo())
	st = e.GetBoardState()
	assert.Nil(t, st.Jumper)
	assert.Equal(t, 1, st.At(types.Pos(5, 2)))
	assert.False(t, e.CanCommit())
}

func TestUndoAfterCommit(t *testing.T) {
	e := connected(t)
	_, _ = e.Click(types.Pos(6, 1))
	_, err := e.Click(types.Pos(5, 0))
	require.NoError(t, err)
	require.NoError(t, e.Commit())
	require.Equal(t, 2, e.GetBoardState().At(types.Pos(2, 1)))

	require.NoError(t, e.Undo())
	st := e.GetBoardState()
	start := checkers.NewBoard()
	assert.Equal(t, start.Codes(), st.Board, "both plies of the round are taken back")
	assert.Equal(t, 0, st.MoveNumber)
	assert.Equal(t, 0, e.game.HistoryLen())
	assert.True(t, e.IsMyTurn())
	assert.False(t, e.CanCommit())

	// the turn is replayed from scratch: one move, then commit
	_, _ = e.Click(types.Pos(6, 3))
	out, err := e.Click(types.Pos(5, 2))
	require.NoError(t, err)
	assert.Equal(t, types.OutcomeSimple, out)
	_, err = e.Click(types.Pos(6, 5))
	assert.ErrorIs(t, err, engine.ErrTurnComplete)
	require.NoError(t, e.Commit())

	st = e.GetBoardState()
	assert.Equal(t, 0, st.At(types.Pos(5, 0)))
	assert.Equal(t, 1, st.At(types.Pos(5, 2)))
	assert.Equal(t, 1, st.At(types.Pos(6, 1)))
}

func TestUndoSimpleMove(t *testing.T) {
	e := connected(t)
	_, _ = e.Click(types.Pos(6, 1))
	_, err := e.Click(types.Pos(5, 0))
	require.NoError(t, err)

	require.NoError(t, e.Undo())
	st := e.GetBoardState()
	assert.Equal(t, 1, st.At(types.Pos(6, 1)))
	assert.Equal(t, 0, st.At(types.Pos(5, 0)))
	assert.False(t, e.CanCommit())
	assert.Equal(t, 0, st.MoveNumber)
}

func TestGameEnd(t *testing.T) {
	e := connected(t)

	var winners []types.Player
	e.OnGameEnd(func(w types.Player) { winners = append(winners, w) })

	withBoard(t, e, `
........
........
........
........
...2....
..1.....`)

	_, err := e.Click(types.Pos(5, 2))
	require.NoError(t, err)
	out, err := e.Click(types.Pos(3, 4))
	require.NoError(t, err)
	require.Equal(t, types.OutcomeJump, out)

	assert.Equal(t, []types.Player{types.Player1}, winners)
	assert.True(t, e.GetBoardState().Finished())
	assert.False(t, e.IsMyTurn())
	assert.ErrorIs(t, e.Commit(), engine.ErrGameOver)

	// the callback fires once per result
	e.Close()
	_, _ = e.Click(types.Pos(3, 4))
	assert.Len(t, winners, 1)
}

func TestReset(t *testing.T) {
	e := connected(t)
	id := e.GetBoardState().GameID

	_, _ = e.Click(types.Pos(6, 1))
	_, err := e.Click(types.Pos(5, 0))
	require.NoError(t, err)

	e.Reset()
	st := e.GetBoardState()
	assert.NotEqual(t, id, st.GameID)
	assert.Equal(t, 0, st.MoveNumber)
	assert.Equal(t, 1, st.At(types.Pos(6, 1)))
	assert.False(t, e.CanCommit())
	assert.True(t, e.IsMyTurn())
}

func TestStableRankingEngine(t *testing.T) {
	e := NewLocalEngine(engine.GameConfig{Ranking: advisor.RankStable})
	require.NoError(t, e.Connect())

	_, _ = e.Click(types.Pos(6, 1))
	_, err := e.Click(types.Pos(5, 0))
	require.NoError(t, err)
	require.NoError(t, e.Commit())

	assert.Equal(t, 2, e.GetBoardState().At(types.Pos(2, 1)))
}
