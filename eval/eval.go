// Package eval scores a position from the side-to-move's perspective:
// material, piece-square tables, mobility, and a bishop-pair bonus, tapered
// between midgame and endgame weights by remaining non-pawn material.
package eval

import "chessforge/position"

// Mate is the base magnitude used for forced-mate scores; the actual score
// returned for a mate at ply p is Mate-p, so shallower mates score higher
// than deep ones.
const Mate = 1000000

// pieceValueMG/pieceValueEG hold the midgame/endgame material value of each piece, per
// the fixed table the evaluation is defined over.
var pieceValueMG = [7]int{
	position.NoPieceKind: 0,
	position.Pawn:        100,
	position.Knight:      300,
	position.Bishop:      300,
	position.Rook:        500,
	position.Queen:       900,
	position.King:        20000,
}
var pieceValueEG = pieceValueMG

// Game-phase weights used to interpolate between psqtMG and psqtEG; a
// position with every non-pawn piece on the board has phase == totalPhase,
// an empty board has phase == 0.
const (
	knightPhase = 1
	bishopPhase = 1
	rookPhase   = 2
	queenPhase  = 4
	totalPhase  = knightPhase*4 + bishopPhase*4 + rookPhase*4 + queenPhase*2
)

const bishopPairBonus = 30
const mobilityBonus = 2

// flipView mirrors a white PSQT index vertically to read the same table for
// black, so only one table per piece needs to be written out.
var flipView [64]int

func init() {
	for sq := 0; sq < 64; sq++ {
		rank, file := sq/8, sq%8
		flipView[sq] = (7-rank)*8 + file
	}
}

// Evaluate scores the position from g.SideToMove's perspective. A
// positive score favors the side to move.
func Evaluate(g *position.Game) int {
	white := evaluateSide(g, position.White)
	black := evaluateSide(g, position.Black)
	score := white - black
	if g.SideToMove == position.Black {
		score = -score
	}
	return score
}

func evaluateSide(g *position.Game, c position.Color) int {
	phase := gamePhase(g)
	mg, eg := 0, 0

	for p := position.Pawn; p <= position.King; p++ {
		bb := g.Board.PiecesOf(c, p)
		count := bb.Count()
		mg += count * pieceValueMG[p]
		eg += count * pieceValueEG[p]

		for b := bb; b != 0; {
			sq := b.PopLSB()
			idx := int(sq)
			if c == position.Black {
				idx = flipView[idx]
			}
			mg += psqtMG[p][idx]
			eg += psqtEG[p][idx]
		}
	}

	if g.Board.PiecesOf(c, position.Bishop).Count() >= 2 {
		mg += bishopPairBonus
		eg += bishopPairBonus
	}

	mg += mobilityBonus * countMoves(g, c)

	return taper(mg, eg, phase)
}

func gamePhase(g *position.Game) int {
	phase := 0
	for _, c := range [2]position.Color{position.White, position.Black} {
		phase += g.Board.PiecesOf(c, position.Knight).Count() * knightPhase
		phase += g.Board.PiecesOf(c, position.Bishop).Count() * bishopPhase
		phase += g.Board.PiecesOf(c, position.Rook).Count() * rookPhase
		phase += g.Board.PiecesOf(c, position.Queen).Count() * queenPhase
	}
	if phase > totalPhase {
		phase = totalPhase
	}
	return phase
}

func taper(mg, eg, phase int) int {
	return (mg*phase + eg*(totalPhase-phase)) / totalPhase
}

// countMoves measures mobility as the legal move count for color c,
// computed by temporarily pretending c is to move.
func countMoves(g *position.Game, c position.Color) int {
	if g.SideToMove == c {
		return len(g.LegalMoves())
	}
	// Mobility for the side not to move is counted with the same legal
	// move generator, on a copy with the side to move swapped, so both
	// sides are scored with one code path.
	clone := *g
	clone.SideToMove = c
	clone.MoveHistory = nil
	return len(clone.LegalMoves())
}
