//go:build !compactboard

package position

// Wide back-end: one tagged cell per square (spec.md §3 "Wide"). Each square
// carries its own struct rather than sharing a packed byte encoding; this is
// the default back-end, selected when the "compactboard" build tag is
// absent.

type wideCell struct {
	occupied bool
	piece    Piece
	color    Color
}

// squareStore is the storage back-end for Board.squares; its concrete type
// is chosen at compile time by the compactboard build tag.
type squareStore [64]wideCell

func (s *squareStore) get(sq Square) (ColoredPiece, bool) {
	c := s[sq]
	if !c.occupied {
		return ColoredPiece{}, false
	}
	return ColoredPiece{Piece: c.piece, Color: c.color}, true
}

// putMoved stores a piece on sq. The moved flag is accepted for back-end
// parity with the compact store but carries no meaning here: the wide
// back-end has no has-moved-ever marker to maintain.
func (s *squareStore) putMoved(sq Square, cp ColoredPiece, _ bool) {
	s[sq] = wideCell{occupied: true, piece: cp.Piece, color: cp.Color}
}

func (s *squareStore) clear(sq Square) {
	s[sq] = wideCell{}
}

// backendName reports which board back-end is compiled in, surfaced for
// diagnostics and tests.
func backendName() string { return "wide" }
