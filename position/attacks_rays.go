//go:build !bitboards

package position

// Ray-walk slider attacks (spec.md §4.1(a), the default strategy, no build
// tag required): for each ray, step one square at a time, OR its bit into
// the mask, and stop after including the first occupied square.

var rookStepDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopStepDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func walkRay(sq Square, occ Bitboard, dr, df int) Bitboard {
	var attacks Bitboard
	rank, file := sq.Rank()+dr, sq.File()+df
	for rank >= 0 && rank < 8 && file >= 0 && file < 8 {
		t := NewSquare(rank, file)
		attacks |= t.Bit()
		if occ.Has(t) {
			break
		}
		rank += dr
		file += df
	}
	return attacks
}

// RookAttacks returns the squares a rook on sq attacks given occupancy occ.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range rookStepDirs {
		attacks |= walkRay(sq, occ, d[0], d[1])
	}
	return attacks
}

// BishopAttacks returns the squares a bishop on sq attacks given occupancy occ.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range bishopStepDirs {
		attacks |= walkRay(sq, occ, d[0], d[1])
	}
	return attacks
}
