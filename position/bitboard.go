package position

import "math/bits"

// Bitboard is a 64-bit mask, one bit per board square, matching the
// GLOSSARY definition in spec.md.
type Bitboard uint64

// LSB returns the lowest-indexed set square, or NoSquare if empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the highest-indexed set square, or NoSquare if empty.
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB clears and returns the lowest-indexed set square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Count returns the population count.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// Has reports whether the given square is set.
func (b Bitboard) Has(sq Square) bool { return b&sq.Bit() != 0 }
