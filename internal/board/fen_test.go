package board

import "testing"

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 12 34",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Errorf("ParseFEN(%q): %v", fen, err)
			continue
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("round trip: got %q, want %q", got, fen)
		}
		if pos.Hash != pos.ComputeHash() {
			t.Errorf("ParseFEN(%q): hash not initialized", fen)
		}
	}
}

func TestParseFENMatchesNewPosition(t *testing.T) {
	parsed, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatal("ParseFEN:", err)
	}

	if parsed.Hash != NewPosition().Hash {
		t.Error("start FEN and NewPosition hash differently")
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",            // missing fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq - 0 1", // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", // bad en passant
		"rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",   // 7 ranks
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", // bad rank
		"8/8/8/8/8/8/8/8 w - - 0 1",                                // no kings
		"4k3/8/8/8/8/8/8/4K3 w K - 0 1",                            // right without rook
		"4k3/8/8/8/8/8/8/R3K3 w KQ - 0 1",                          // kingside right, queenside rook
		"r3k2r/8/8/8/8/8/8/R2K3R w KQkq - 0 1",                     // displaced king keeps rights
	}

	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q): expected error", fen)
		}
	}
}

func TestParseFENMovedFlags(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatal("ParseFEN:", err)
	}
	for sq := Square(0); sq < 64; sq++ {
		if p := pos.Squares[sq]; p != nil && p.Moved {
			t.Errorf("piece on %s marked moved in the starting position", sq)
		}
	}

	// A king off its home square is taken as moved.
	pos, err = ParseFEN("4k3/8/8/8/8/8/8/3K4 w - - 0 1")
	if err != nil {
		t.Fatal("ParseFEN:", err)
	}
	if !pos.At(7, 3).Moved {
		t.Error("displaced king should be marked moved")
	}
	if pos.At(0, 4).Moved {
		t.Error("king on its home square should not be marked moved")
	}
}
