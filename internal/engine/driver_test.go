package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhoff/pawnstorm/internal/board"
)

func TestBestMoveRejectsBadDepth(t *testing.T) {
	pos := board.NewPosition()

	_, _, err := BestMove(pos, board.White, 0)
	assert.Error(t, err)

	_, _, err = BestMove(pos, board.White, -3)
	assert.Error(t, err)
}

func TestBestMoveNoLegalMoves(t *testing.T) {
	pos := mustFEN(t, "R6k/6pp/8/8/8/8/8/K7 b - - 0 1")

	_, ok, err := BestMove(pos, board.Black, 3)
	require.NoError(t, err)
	assert.False(t, ok, "a mated side has no move to return")
}

func TestBestMoveIsLegal(t *testing.T) {
	pos := board.NewPosition()
	before := pos.Copy()

	m, ok, err := BestMove(pos, board.White, 2)
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, pos.LegalMoves(board.White).Contains(m), "returned move must be legal")
	assert.Equal(t, before.ToFEN(), pos.ToFEN(), "the root position must not be mutated")
}

func TestBestMoveOnlyMove(t *testing.T) {
	// White's sole legal move is taking the queen.
	pos := mustFEN(t, "7k/8/8/8/8/8/6q1/7K w - - 0 1")
	want := board.NewMove(board.NewSquare(7, 7), board.NewSquare(6, 6))

	for depth := 1; depth <= 4; depth++ {
		m, ok, err := BestMove(pos, board.White, depth)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, m, "depth %d", depth)
	}
}

func TestBestMoveFindsHangingQueen(t *testing.T) {
	pos := mustFEN(t, "7k/8/8/8/8/8/q6P/R6K w - - 0 1")

	m, ok, err := BestMove(pos, board.White, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a1a2", m.String())
}

func TestBestMoveDeterministic(t *testing.T) {
	pos := board.NewPosition()

	first, ok, err := BestMove(pos, board.White, 3)
	require.NoError(t, err)
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		again, ok, err := BestMove(pos, board.White, 3)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, first, again, "repeated searches must agree")
	}
}

func TestEngineFacade(t *testing.T) {
	e := New(2)
	assert.Equal(t, 2, e.Depth())

	pos := board.NewPosition()
	assert.Equal(t, 0, e.Evaluate(pos))
	assert.Equal(t, 0.0, e.EvaluatePawns(pos))

	m, ok, err := e.BestMove(pos)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, pos.LegalMoves(board.White).Contains(m))
}

func TestPerftFacade(t *testing.T) {
	pos := board.NewPosition()
	assert.Equal(t, uint64(20), Perft(pos, 1))
	assert.Equal(t, uint64(400), Perft(pos, 2))
}
