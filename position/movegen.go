package position

// generatePseudoLegal emits every pseudo-legal move for the side to move:
// obeying piece movement rules and occupancy, but not yet filtered for
// leaving the mover's own king in check (spec.md GLOSSARY).
func (g *Game) generatePseudoLegal() []Move {
	moves := make([]Move, 0, 48)
	us := g.SideToMove
	own := g.Board.OccupancyOf(us)
	occ := g.Board.Occupancy()

	moves = g.generatePawnMoves(moves, us, occ)

	for _, p := range [4]Piece{Knight, Bishop, Rook, Queen} {
		bb := g.Board.PiecesOf(us, p)
		for bb != 0 {
			from := bb.PopLSB()
			targets := pieceAttacks(p, from, occ) &^ own
			for targets != 0 {
				to := targets.PopLSB()
				moves = append(moves, NewMove(from, to, NoPieceKind, FlagNone))
			}
		}
	}

	if ksq := g.Board.FindKing(us); ksq != NoSquare {
		targets := KingAttacks(ksq) &^ own
		for targets != 0 {
			to := targets.PopLSB()
			moves = append(moves, NewMove(ksq, to, NoPieceKind, FlagNone))
		}
		moves = g.generateCastles(moves, us, occ)
	}
	return moves
}

func pieceAttacks(p Piece, sq Square, occ Bitboard) Bitboard {
	switch p {
	case Knight:
		return KnightAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	case King:
		return KingAttacks(sq)
	default:
		return 0
	}
}

var promotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

func (g *Game) generatePawnMoves(moves []Move, us Color, occ Bitboard) []Move {
	pawns := g.Board.PiecesOf(us, Pawn)
	enemy := g.Board.OccupancyOf(us.Opponent())

	forward, startRank, lastRank := 8, 1, 7
	if us == Black {
		forward, startRank, lastRank = -8, 6, 0
	}

	for bb := pawns; bb != 0; {
		from := bb.PopLSB()
		rank := from.Rank()

		one := Square(int(from) + forward)
		if !occ.Has(one) {
			moves = appendPawnMove(moves, from, one, lastRank, FlagNone)
			if rank == startRank {
				two := Square(int(from) + 2*forward)
				if !occ.Has(two) {
					moves = append(moves, NewMove(from, two, NoPieceKind, FlagDoublePush))
				}
			}
		}

		captures := pawnCaptureAttacks[us][from]
		targets := captures & enemy
		for targets != 0 {
			to := targets.PopLSB()
			moves = appendPawnMove(moves, from, to, lastRank, FlagNone)
		}
		if g.EPTarget != NoSquare && captures.Has(g.EPTarget) {
			moves = append(moves, NewMove(from, g.EPTarget, NoPieceKind, FlagEnPassant))
		}
	}
	return moves
}

func appendPawnMove(moves []Move, from, to Square, lastRank int, flag uint8) []Move {
	if to.Rank() == lastRank {
		for _, promo := range promotionPieces {
			moves = append(moves, NewMove(from, to, promo, flag))
		}
		return moves
	}
	return append(moves, NewMove(from, to, NoPieceKind, flag))
}

func (g *Game) generateCastles(moves []Move, us Color, occ Bitboard) []Move {
	var kingStart, kingsideTarget, queensideTarget Square
	var kingsideRight, queensideRight CastlingRights
	var kingsideBetween, queensideBetween Bitboard
	var kingsideTransit, queensideTransit Square

	if us == White {
		kingStart, kingsideTarget, queensideTarget = 4, 6, 2
		kingsideRight, queensideRight = CastlingWhiteKingside, CastlingWhiteQueenside
		kingsideBetween = Square(5).Bit() | Square(6).Bit()
		queensideBetween = Square(1).Bit() | Square(2).Bit() | Square(3).Bit()
		kingsideTransit, queensideTransit = 5, 3
	} else {
		kingStart, kingsideTarget, queensideTarget = 60, 62, 58
		kingsideRight, queensideRight = CastlingBlackKingside, CastlingBlackQueenside
		kingsideBetween = Square(61).Bit() | Square(62).Bit()
		queensideBetween = Square(57).Bit() | Square(58).Bit() | Square(59).Bit()
		kingsideTransit, queensideTransit = 61, 59
	}

	if g.Board.FindKing(us) != kingStart {
		return moves
	}
	them := us.Opponent()
	if IsAttacked(&g.Board, kingStart, them) {
		return moves
	}

	if g.Castling.has(kingsideRight) && occ&kingsideBetween == 0 &&
		!IsAttacked(&g.Board, kingsideTransit, them) && !IsAttacked(&g.Board, kingsideTarget, them) {
		moves = append(moves, NewMove(kingStart, kingsideTarget, NoPieceKind, FlagCastle))
	}
	if g.Castling.has(queensideRight) && occ&queensideBetween == 0 &&
		!IsAttacked(&g.Board, queensideTransit, them) && !IsAttacked(&g.Board, queensideTarget, them) {
		moves = append(moves, NewMove(kingStart, queensideTarget, NoPieceKind, FlagCastle))
	}
	return moves
}

// LegalMoves returns every legal move for the side to move (spec.md §4.3).
// Order is stable across calls on an unchanged position but otherwise
// implementation-defined.
func (g *Game) LegalMoves() []Move {
	pseudo := g.generatePseudoLegal()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if g.MakeMove(m) {
			legal = append(legal, m)
			g.UndoMove()
		}
	}
	return legal
}

// LegalMovesFrom returns the legal target squares reachable from sq, for UI
// highlighting (spec.md §4.3).
func (g *Game) LegalMovesFrom(sq Square) []Square {
	var targets []Square
	for _, m := range g.LegalMoves() {
		if m.From() == sq {
			targets = append(targets, m.To())
		}
	}
	return targets
}

// AttackersOn returns the squares of the side-to-move's pieces that could
// legally capture on sq this turn. Strictly stronger than pseudo-legal
// attack (spec.md §4.3): a move only counts if it is both legal and a
// capture — reaching sq with a quiet move does not count, even when sq is
// otherwise within the piece's legal move set.
func (g *Game) AttackersOn(sq Square) []Square {
	var attackers []Square
	for _, m := range g.LegalMoves() {
		if m.To() != sq {
			continue
		}
		if _, occupied := g.Board.Get(sq); !occupied && !m.IsEnPassant() {
			continue
		}
		attackers = append(attackers, m.From())
	}
	return attackers
}
