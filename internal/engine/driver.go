package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mhoff/pawnstorm/internal/board"
)

// BestMove searches the position to the given depth and returns the best
// move for the color. The root is split across goroutines: the position
// is snapshotted once, and each root move is scored by its own worker on
// a private decoded copy with a private memo table, so workers share
// nothing. The second return is false when the color has no legal moves.
//
// Ties resolve to the move generated first, so repeated calls on the same
// position return the same move.
func BestMove(pos *board.Position, c board.Color, depth int) (board.Move, bool, error) {
	if depth < 1 {
		return board.Move{}, false, fmt.Errorf("search depth must be at least 1, got %d", depth)
	}

	moves := pos.LegalMoves(c)
	if moves.Len() == 0 {
		return board.Move{}, false, nil
	}

	blob, err := board.EncodeSnapshot(pos)
	if err != nil {
		return board.Move{}, false, fmt.Errorf("encoding root position: %w", err)
	}

	log.Debug().
		Int("depth", depth).
		Int("moves", moves.Len()).
		Str("side", c.String()).
		Msg("starting root search")

	scores := make([]int, moves.Len())
	var g errgroup.Group
	for i := 0; i < moves.Len(); i++ {
		i, m := i, moves.Get(i)
		g.Go(func() error {
			work, err := board.DecodeSnapshot(blob)
			if err != nil {
				return fmt.Errorf("decoding root position: %w", err)
			}
			work.Make(m)
			scores[i] = Search(work, depth-1, -Infinity, Infinity, false, c, NewMemo())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return board.Move{}, false, err
	}

	best := 0
	for i := 1; i < moves.Len(); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	log.Debug().
		Str("move", moves.Get(best).String()).
		Int("score", scores[best]).
		Msg("root search finished")

	return moves.Get(best), true, nil
}
