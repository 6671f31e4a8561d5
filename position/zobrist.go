package position

import "math/rand"

// Zobrist hashing tables, seeded from a fixed source so hashes (and
// therefore anything derived from them) are reproducible across runs —
// required for the back-end-equivalence testable property in spec.md §8.
var zobristPiece [2][7][64]uint64
var zobristCastling [16]uint64
var zobristEnPassantFile [8]uint64
var zobristSideToMove uint64

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := 0; c < 2; c++ {
		for p := 0; p < 7; p++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][p][sq] = rnd.Uint64()
			}
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastling[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassantFile[f] = rnd.Uint64()
	}
	zobristSideToMove = rnd.Uint64()
}

// computeZobrist computes the Zobrist key for the position from scratch;
// used only to seed a freshly parsed Game, since MakeMove/UndoMove maintain
// the key incrementally.
func (g *Game) computeZobrist() uint64 {
	var key uint64
	g.Board.Occupied(func(sq Square, cp ColoredPiece) {
		key ^= zobristPiece[cp.Color][cp.Piece][sq]
	})
	if g.SideToMove == Black {
		key ^= zobristSideToMove
	}
	key ^= zobristCastling[g.Castling]
	if g.EPTarget != NoSquare {
		key ^= zobristEnPassantFile[g.EPTarget.File()]
	}
	return key
}

// Hash returns the current Zobrist key, usable as a repetition fingerprint
// (spec.md §3's EnPassantTarget/CastlingRights are already folded in, as
// required for threefold-repetition candidate reconstruction).
func (g *Game) Hash() uint64 { return g.zobrist }
