package engine

import "github.com/mhoff/pawnstorm/internal/board"

// Evaluation weights in centipawns.
const (
	bishopPairBonus    = 50
	mobilityWeight     = 3
	doubledPawnPenalty = 15
	isolatedPenalty    = 15
	passedPawnBase     = 20
	passedPawnPerRank  = 5
	openFileBonus      = 15
	semiOpenFileBonus  = 7
	shieldPenalty      = 12

	// endgameMaterial is the non-pawn material level below which the
	// game counts as a pure endgame for phase blending.
	endgameMaterial = 4000

	// shieldPhaseLimit disables the king pawn shield term once the game
	// phase passes it.
	shieldPhaseLimit = 0.7
)

// mobilityWeights scores how much each move by a piece kind contributes
// to the mobility term. Pawn and king moves carry no weight.
var mobilityWeights = [6]int{0, 4, 4, 2, 1, 0}

// GamePhase returns the phase of the game as a blend factor: 0 for the
// opening and middlegame, rising to 1 as the non-pawn material drains.
func GamePhase(pos *board.Position) float64 {
	material := 0
	for sq := board.Square(0); sq < 64; sq++ {
		if p := pos.Squares[sq]; p != nil && p.Kind != board.Pawn {
			material += p.Kind.Value()
		}
	}

	phase := 1.0 - float64(material)/endgameMaterial
	if phase < 0 {
		return 0
	}
	if phase > 1 {
		return 1
	}
	return phase
}

// pawnStructure scores one color's isolated, doubled, and passed pawns.
func pawnStructure(pos *board.Position, c board.Color) int {
	var pawns []board.Square
	var filePawns [8]int
	for sq := board.Square(0); sq < 64; sq++ {
		if p := pos.Squares[sq]; p != nil && p.Color == c && p.Kind == board.Pawn {
			pawns = append(pawns, sq)
			filePawns[sq.Col()]++
		}
	}

	them := c.Other()
	score := 0
	for _, sq := range pawns {
		col := sq.Col()

		// Each pawn sharing a file with another own pawn is penalized.
		if filePawns[col] > 1 {
			score -= doubledPawnPenalty
		}

		hasNeighbor := (col > 0 && filePawns[col-1] > 0) || (col < 7 && filePawns[col+1] > 0)
		if !hasNeighbor {
			score -= isolatedPenalty
		}

		// Passed: no enemy pawn ahead on this file or an adjacent one.
		passed := true
	passedCheck:
		for f := col - 1; f <= col+1; f++ {
			if f < 0 || f > 7 {
				continue
			}
			for row := 0; row < 8; row++ {
				ahead := false
				if c == board.White {
					ahead = row < sq.Row()
				} else {
					ahead = row > sq.Row()
				}
				if !ahead {
					continue
				}
				if p := pos.At(row, f); p != nil && p.Color == them && p.Kind == board.Pawn {
					passed = false
					break passedCheck
				}
			}
		}
		if passed {
			score += passedPawnBase + passedPawnPerRank*sq.RelativeRank(c)
		}
	}

	return score
}

// weightedMobility sums the mobility weights over all non-castling
// pseudo-legal moves for the color.
func weightedMobility(pos *board.Position, c board.Color) int {
	moves := pos.PseudoMoves(c, false)
	count := 0
	for i := 0; i < moves.Len(); i++ {
		piece := pos.PieceAt(moves.Get(i).From)
		count += mobilityWeights[piece.Kind]
	}
	return count
}

// rookFileBonus rewards rooks on open and semi-open files.
func rookFileBonus(pos *board.Position, c board.Color) int {
	them := c.Other()
	bonus := 0
	for sq := board.Square(0); sq < 64; sq++ {
		p := pos.Squares[sq]
		if p == nil || p.Color != c || p.Kind != board.Rook {
			continue
		}

		ownPawn, oppPawn := false, false
		for row := 0; row < 8; row++ {
			fp := pos.At(row, sq.Col())
			if fp == nil || fp.Kind != board.Pawn {
				continue
			}
			if fp.Color == c {
				ownPawn = true
			} else if fp.Color == them {
				oppPawn = true
			}
		}

		if !ownPawn {
			if !oppPawn {
				bonus += openFileBonus
			} else {
				bonus += semiOpenFileBonus
			}
		}
	}
	return bonus
}

// kingShield penalizes missing shield pawns on the castled wing. The term
// vanishes in the endgame, where king activity matters more than shelter.
func kingShield(pos *board.Position, c board.Color, phase float64) int {
	if phase > shieldPhaseLimit {
		return 0
	}

	var front int
	var cols [3]int
	if c == board.White {
		front = 6
		cols = [3]int{6, 5, 4}
	} else {
		front = 1
		cols = [3]int{1, 2, 3}
	}

	rows := [2]int{front, front - 1}
	if c == board.Black {
		rows = [2]int{front, front + 1}
	}

	score := 0
	for _, col := range cols {
		shielded := false
		for _, row := range rows {
			if p := pos.At(row, col); p != nil && p.Color == c && p.Kind == board.Pawn {
				shielded = true
				break
			}
		}
		if !shielded {
			score -= shieldPenalty
		}
	}
	return score
}

// Evaluate returns the static evaluation of the position in centipawns
// from the given color's point of view: positive is good for that color.
// It combines material, piece-square placement with a phase-blended king
// table, the bishop pair, weighted mobility, pawn structure, rook files,
// and the king pawn shield.
func Evaluate(pos *board.Position, c board.Color) int {
	phase := GamePhase(pos)
	them := c.Other()

	material, pst := 0, 0
	var bishops [2]int
	for sq := board.Square(0); sq < 64; sq++ {
		p := pos.Squares[sq]
		if p == nil {
			continue
		}

		sign := 1
		if p.Color != c {
			sign = -1
		}
		material += sign * p.Kind.Value()

		idx := pstIndex(p.Color, sq)
		if p.Kind == board.King {
			mid := float64(kingTableMid[idx])
			end := float64(kingTableEnd[idx])
			pst += sign * int((1-phase)*mid+phase*end)
		} else {
			pst += sign * pieceTables[p.Kind][idx]
		}

		if p.Kind == board.Bishop {
			bishops[p.Color]++
		}
	}

	pair := 0
	if bishops[c] == 2 {
		pair += bishopPairBonus
	}
	if bishops[them] == 2 {
		pair -= bishopPairBonus
	}

	mobility := (weightedMobility(pos, c) - weightedMobility(pos, them)) * mobilityWeight
	pawns := pawnStructure(pos, c) - pawnStructure(pos, them)
	rooks := rookFileBonus(pos, c) - rookFileBonus(pos, them)
	shield := kingShield(pos, c, phase) - kingShield(pos, them, phase)

	return material + pst + pair + mobility + pawns + rooks + shield
}
