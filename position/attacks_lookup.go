//go:build bitboards

package position

import (
	"math/bits"
	"sync"
)

// Bitboard-lookup slider attacks (spec.md §4.1(b), the "bitboards" build
// tag): a kindergarten/magic-style hash of the relevant blocker bits along
// each square's rook/bishop rays into a precomputed attack table, built via
// software PEXT/PDEP. Built lazily behind sync.Once so concurrent first
// readers across many Games still only pay init cost once (spec.md §5).

var rookMask [64]Bitboard
var bishopMask [64]Bitboard
var rookAttackTable [64][]Bitboard
var bishopAttackTable [64][]Bitboard
var initSliderTables sync.Once

// pext extracts the bits of x at the positions where mask has 1s, packing
// them into the low bits of the result (software PEXT).
func pext(x, mask Bitboard) Bitboard {
	var res Bitboard
	var idx uint
	m := mask
	for m != 0 {
		lsb := m & -m
		bit := uint(bits.TrailingZeros64(uint64(lsb)))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
		m &= m - 1
	}
	return res
}

// pdep deposits the low bits of x into the positions where mask has 1s
// (software PDEP) — used only to enumerate every occupancy subset of a
// relevant-blocker mask when building the attack tables.
func pdep(x, mask Bitboard) Bitboard {
	var res Bitboard
	var idx uint
	m := mask
	for m != 0 {
		lsb := m & -m
		bit := uint(bits.TrailingZeros64(uint64(lsb)))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
		m &= m - 1
	}
	return res
}

func relevantRookMask(sq Square) Bitboard {
	rank, file := sq.Rank(), sq.File()
	var m Bitboard
	for r := rank + 1; r < 7; r++ {
		m |= Square(r*8 + file).Bit()
	}
	for r := rank - 1; r > 0; r-- {
		m |= Square(r*8 + file).Bit()
	}
	for f := file + 1; f < 7; f++ {
		m |= Square(rank*8 + f).Bit()
	}
	for f := file - 1; f > 0; f-- {
		m |= Square(rank*8 + f).Bit()
	}
	return m
}

func relevantBishopMask(sq Square) Bitboard {
	rank, file := sq.Rank(), sq.File()
	var m Bitboard
	for r, f := rank+1, file+1; r < 7 && f < 7; r, f = r+1, f+1 {
		m |= Square(r*8 + f).Bit()
	}
	for r, f := rank+1, file-1; r < 7 && f > 0; r, f = r+1, f-1 {
		m |= Square(r*8 + f).Bit()
	}
	for r, f := rank-1, file+1; r > 0 && f < 7; r, f = r-1, f+1 {
		m |= Square(r*8 + f).Bit()
	}
	for r, f := rank-1, file-1; r > 0 && f > 0; r, f = r-1, f-1 {
		m |= Square(r*8 + f).Bit()
	}
	return m
}

// slowRookAttacks/slowBishopAttacks compute the blocker-aware attack set by
// walking the precomputed full rays (rays.go); used only at table-build
// time, never on the query hot path.
func slowRookAttacks(sq Square, occ Bitboard) Bitboard {
	r := rookRays[sq]
	return rayAttacksAscending(r[0], occ) | rayAttacksDescending(r[1], occ) |
		rayAttacksAscending(r[2], occ) | rayAttacksDescending(r[3], occ)
}

func slowBishopAttacks(sq Square, occ Bitboard) Bitboard {
	r := bishopRays[sq]
	return rayAttacksAscending(r[0], occ) | rayAttacksAscending(r[1], occ) |
		rayAttacksDescending(r[2], occ) | rayAttacksDescending(r[3], occ)
}

func buildSliderTables() {
	for sq := Square(0); sq < 64; sq++ {
		rm := relevantRookMask(sq)
		bm := relevantBishopMask(sq)
		rookMask[sq] = rm
		bishopMask[sq] = bm

		rBits := rm.Count()
		bBits := bm.Count()
		rookAttackTable[sq] = make([]Bitboard, 1<<uint(rBits))
		bishopAttackTable[sq] = make([]Bitboard, 1<<uint(bBits))

		for idx := 0; idx < (1 << uint(rBits)); idx++ {
			occ := pdep(Bitboard(idx), rm)
			rookAttackTable[sq][idx] = slowRookAttacks(sq, occ)
		}
		for idx := 0; idx < (1 << uint(bBits)); idx++ {
			occ := pdep(Bitboard(idx), bm)
			bishopAttackTable[sq][idx] = slowBishopAttacks(sq, occ)
		}
	}
}

// RookAttacks returns the squares a rook on sq attacks given occupancy occ.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	initSliderTables.Do(buildSliderTables)
	idx := pext(occ, rookMask[sq])
	return rookAttackTable[sq][idx]
}

// BishopAttacks returns the squares a bishop on sq attacks given occupancy occ.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	initSliderTables.Do(buildSliderTables)
	idx := pext(occ, bishopMask[sq])
	return bishopAttackTable[sq][idx]
}
