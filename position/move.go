package position

// Move encodes a chess move in a single machine word (spec.md §3): source,
// target, and an optional promotion piece. Quiet/capture are derived from
// context rather than stored; castling, en-passant and double pushes are
// marked by a special-move flag.
type Move uint32

const (
	moveFromShift    = 0
	moveToShift      = 6
	movePromoteShift = 12
	moveFlagShift    = 15
)

// Special-move flags that are not derivable from source/target alone.
const (
	FlagNone uint8 = iota
	FlagCastle
	FlagEnPassant
	FlagDoublePush
)

// NewMove constructs a Move from its components. promotion is NoPieceKind
// unless the move is a pawn promotion.
func NewMove(from, to Square, promotion Piece, flag uint8) Move {
	return Move(uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(promotion&0x7) << movePromoteShift) |
		(uint32(flag&0x7) << moveFlagShift))
}

// From returns the source square.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the target square.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// Promotion returns the promotion piece, or NoPieceKind if this is not a
// promoting move.
func (m Move) Promotion() Piece { return Piece((uint32(m) >> movePromoteShift) & 0x7) }

// Flag returns the move's special-move flag.
func (m Move) Flag() uint8 { return uint8((uint32(m) >> moveFlagShift) & 0x7) }

// IsCastle reports whether this move is a castling move.
func (m Move) IsCastle() bool { return m.Flag() == FlagCastle }

// IsEnPassant reports whether this move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Flag() == FlagEnPassant }

// IsDoublePush reports whether this move is a two-square pawn advance.
func (m Move) IsDoublePush() bool { return m.Flag() == FlagDoublePush }

// String renders the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if promo := m.Promotion(); promo != NoPieceKind {
		s += string(fenLetter(ColoredPiece{Piece: promo, Color: Black}))
	}
	return s
}
