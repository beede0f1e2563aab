package board

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestMakeUnmakeRandomWalk plays random legal moves from the starting
// position and unwinds them all, checking after every step that the
// incremental hash matches a recomputation and that the final position is
// identical to the original.
func TestMakeUnmakeRandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	pos := NewPosition()
	original := pos.Copy()

	type step struct {
		move Move
		undo Undo
	}
	var stack []step

	for i := 0; i < 120; i++ {
		moves := pos.LegalMoves(pos.SideToMove)
		if moves.Len() == 0 || pos.Outcome().Over() {
			break
		}

		m := moves.Get(rng.Intn(moves.Len()))
		undo := pos.Make(m)
		stack = append(stack, step{m, undo})

		if pos.Hash != pos.ComputeHash() {
			t.Fatalf("after %s: incremental hash %x, recomputed %x", m, pos.Hash, pos.ComputeHash())
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		pos.Unmake(stack[i].move, stack[i].undo)
		if pos.Hash != pos.ComputeHash() {
			t.Fatalf("after unmaking %s: incremental hash %x, recomputed %x",
				stack[i].move, pos.Hash, pos.ComputeHash())
		}
	}

	if diff := cmp.Diff(original, pos); diff != "" {
		t.Errorf("position not restored after unwinding (-want +got):\n%s", diff)
	}
}

func TestMakeUpdatesClocks(t *testing.T) {
	pos := NewPosition()

	pos.Make(mustParseMove(t, "g1f3", pos))
	if pos.HalfMoveClock != 1 {
		t.Errorf("expected half-move clock 1 after a knight move, got %d", pos.HalfMoveClock)
	}
	if pos.FullMoveNumber != 1 {
		t.Errorf("full-move number should not advance after white's move, got %d", pos.FullMoveNumber)
	}

	pos.Make(mustParseMove(t, "e7e5", pos))
	if pos.HalfMoveClock != 0 {
		t.Errorf("expected half-move clock reset by a pawn move, got %d", pos.HalfMoveClock)
	}
	if pos.FullMoveNumber != 2 {
		t.Errorf("expected full-move number 2 after black's move, got %d", pos.FullMoveNumber)
	}

	pos.Make(mustParseMove(t, "f3e5", pos))
	if pos.HalfMoveClock != 0 {
		t.Errorf("expected half-move clock reset by a capture, got %d", pos.HalfMoveClock)
	}
}

func TestEnPassantUnmake(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}
	original := pos.Copy()

	ep := NewEnPassant(NewSquare(3, 4), NewSquare(2, 3))
	undo := pos.Make(ep)

	if pos.At(3, 3) != nil {
		t.Error("captured pawn still on d5 after en passant")
	}
	if pos.At(2, 3) == nil || pos.At(2, 3).Kind != Pawn {
		t.Error("capturing pawn not on d6 after en passant")
	}

	pos.Unmake(ep, undo)
	if diff := cmp.Diff(original, pos); diff != "" {
		t.Errorf("en passant not reversed (-want +got):\n%s", diff)
	}
}

func TestCastlingMakeUnmake(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}
	original := pos.Copy()

	m := NewCastling(NewSquare(7, 4), NewSquare(7, 6))
	undo := pos.Make(m)

	if p := pos.At(7, 6); p == nil || p.Kind != King {
		t.Error("king not on g1 after castling")
	}
	if p := pos.At(7, 5); p == nil || p.Kind != Rook {
		t.Error("rook not on f1 after castling")
	}
	if pos.CastlingRights.CanCastle(White, true) || pos.CastlingRights.CanCastle(White, false) {
		t.Error("white castling rights not revoked after castling")
	}
	if !pos.CastlingRights.CanCastle(Black, true) {
		t.Error("black castling rights should be untouched")
	}

	pos.Unmake(m, undo)
	if diff := cmp.Diff(original, pos); diff != "" {
		t.Errorf("castling not reversed (-want +got):\n%s", diff)
	}
}

func TestRookMoveRevokesRight(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	pos.Make(mustParseMove(t, "h1g1", pos))
	if pos.CastlingRights.CanCastle(White, true) {
		t.Error("kingside right should be revoked by the h1 rook moving")
	}
	if !pos.CastlingRights.CanCastle(White, false) {
		t.Error("queenside right should survive the h1 rook moving")
	}
}

func TestRookCaptureRevokesRight(t *testing.T) {
	// The a1 rook takes the a8 rook; black loses the queenside right.
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	pos.Make(mustParseMove(t, "a1a8", pos))
	if pos.CastlingRights.CanCastle(Black, false) {
		t.Error("black queenside right should be revoked by the rook capture")
	}
	if !pos.CastlingRights.CanCastle(Black, true) {
		t.Error("black kingside right should survive")
	}
}

func TestPromotionMakeUnmake(t *testing.T) {
	pos, err := ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}
	original := pos.Copy()

	m := NewPromotion(NewSquare(1, 0), NewSquare(0, 0), Queen)
	undo := pos.Make(m)

	if p := pos.At(0, 0); p == nil || p.Kind != Queen || p.Color != White {
		t.Error("promoted queen not on a8")
	}
	if pos.At(1, 0) != nil {
		t.Error("pawn still on a7 after promotion")
	}

	pos.Unmake(m, undo)
	if diff := cmp.Diff(original, pos); diff != "" {
		t.Errorf("promotion not reversed (-want +got):\n%s", diff)
	}
	if p := pos.At(1, 0); p == nil || p.Kind != Pawn {
		t.Error("pawn not restored on a7")
	}
}
