package position

import "strings"

var sanLetter = map[Piece]byte{
	Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q', King: 'K',
}

// computeSAN renders m in standard algebraic notation, per spec.md §4.4/§9:
// it must be computed before the move is applied, using knowledge of the
// other legal moves available this turn to disambiguate same-kind pieces
// that could also reach the target. legalMoves is the pre-move legal move
// list (already computed by the caller).
func (g *Game) computeSAN(m Move, legalMoves []Move) string {
	if m.IsCastle() {
		if m.To().File() == 6 {
			return "O-O"
		}
		return "O-O-O"
	}

	from, to := m.From(), m.To()
	moved, _ := g.Board.Get(from)
	_, isCapture := g.Board.Get(to)
	isCapture = isCapture || m.IsEnPassant()

	var sb strings.Builder
	if moved.Piece == Pawn {
		if isCapture {
			sb.WriteByte('a' + byte(from.File()))
			sb.WriteByte('x')
		}
		sb.WriteString(to.String())
		if promo := m.Promotion(); promo != NoPieceKind {
			sb.WriteByte('=')
			sb.WriteByte(sanLetter[promo])
		}
	} else {
		sb.WriteByte(sanLetter[moved.Piece])
		sb.WriteString(disambiguation(legalMoves, &g.Board, moved.Piece, from, to))
		if isCapture {
			sb.WriteByte('x')
		}
		sb.WriteString(to.String())
	}
	return sb.String()
}

// disambiguation returns the file, rank, or file+rank disambiguator needed
// when other legal moves of the same piece kind also target `to`.
func disambiguation(legalMoves []Move, b *Board, piece Piece, from, to Square) string {
	sameFile, sameRank, any := false, false, false
	for _, other := range legalMoves {
		if other.To() != to || other.From() == from {
			continue
		}
		cp, ok := b.Get(other.From())
		if !ok || cp.Piece != piece {
			continue
		}
		any = true
		if other.From().File() == from.File() {
			sameFile = true
		}
		if other.From().Rank() == from.Rank() {
			sameRank = true
		}
	}
	switch {
	case !any:
		return ""
	case !sameFile:
		return string([]byte{'a' + byte(from.File())})
	case !sameRank:
		return string([]byte{'1' + byte(from.Rank())})
	default:
		return from.String()
	}
}

// ApplyMove validates and plays m, appending its SAN, captured piece, and
// mate tag to MoveHistory (spec.md §4.4). It returns false without
// mutating state if m is not in LegalMoves() (spec.md §7's IllegalMove).
func (g *Game) ApplyMove(m Move) bool {
	legalMoves := g.LegalMoves()
	found := false
	for _, lm := range legalMoves {
		if lm == m {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	sanText := g.computeSAN(m, legalMoves)
	if !g.MakeMove(m) {
		return false
	}

	var mate MateTag
	if replies := g.LegalMoves(); len(replies) == 0 {
		if g.InCheck(g.SideToMove) {
			mate = MateCheckmate
			sanText += "#"
		} else {
			mate = MateStalemate
		}
	} else if g.InCheck(g.SideToMove) {
		sanText += "+"
	}

	last := len(g.MoveHistory) - 1
	g.MoveHistory[last].SAN = sanText
	g.MoveHistory[last].Mate = mate
	return true
}

// IsGameOver reports whether the side to move has no legal moves.
func (g *Game) IsGameOver() bool {
	return len(g.LegalMoves()) == 0
}
