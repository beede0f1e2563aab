package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhoff/pawnstorm/internal/board"
)

func TestSearchDepthZeroIsStaticEval(t *testing.T) {
	pos := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	got := Search(pos, 0, -Infinity, Infinity, true, board.White, NewMemo())
	assert.Equal(t, Evaluate(pos, board.White), got)
}

func TestSearchTerminalPosition(t *testing.T) {
	// Checkmate on the board: the search must not descend, whatever the
	// remaining depth.
	pos := mustFEN(t, "R6k/6pp/8/8/8/8/8/K7 b - - 0 1")

	want := Evaluate(pos, board.White)
	got := Search(pos, 5, -Infinity, Infinity, false, board.White, NewMemo())
	assert.Equal(t, want, got)
}

func TestSearchRestoresPosition(t *testing.T) {
	pos := board.NewPosition()
	before := pos.Copy()

	Search(pos, 3, -Infinity, Infinity, true, board.White, NewMemo())

	require.Equal(t, before.Hash, pos.Hash, "search must leave the position untouched")
	require.Equal(t, before.ToFEN(), pos.ToFEN())
}

func TestSearchMemoHit(t *testing.T) {
	pos := board.NewPosition()
	memo := NewMemo()

	first := Search(pos, 3, -Infinity, Infinity, true, board.White, memo)
	require.NotEmpty(t, memo, "search should populate the memo")

	second := Search(pos, 3, -Infinity, Infinity, true, board.White, memo)
	assert.Equal(t, first, second, "memoized result must match")
}

func TestSearchPrefersWinningCapture(t *testing.T) {
	// The black queen on a2 hangs; taking it is worth far more than any
	// quiet rook move.
	pos := mustFEN(t, "7k/8/8/8/8/8/q6P/R6K w - - 0 1")

	baseline := Evaluate(pos, board.White)
	score := Search(pos, 2, -Infinity, Infinity, true, board.White, NewMemo())
	assert.Greater(t, score, baseline+500, "the search should find the hanging queen")
}

func TestSearchDeeperSeesTheRefutation(t *testing.T) {
	// The d6 pawn is defended: at depth 1 grabbing it looks free, at
	// depth 2 the recapture shows up and the score drops.
	pos := mustFEN(t, "3qk3/4p3/3p4/8/4N3/8/8/4K3 w - - 0 1")

	shallow := Search(pos, 1, -Infinity, Infinity, true, board.White, NewMemo())
	deep := Search(pos, 2, -Infinity, Infinity, true, board.White, NewMemo())
	assert.Greater(t, shallow, deep)
}
