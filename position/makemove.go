package position

// HalfMove is one applied half-move: the move itself, everything needed to
// undo it (spec.md §9 — "each history record must carry every byte needed
// to reverse apply_move"), and, once ApplyMove has finished, its algebraic
// notation and mate tag.
type HalfMove struct {
	Move      Move
	Captured  ColoredPiece
	IsCapture bool
	SAN       string
	Mate      MateTag

	prevCastling     CastlingRights
	prevEPTarget     Square
	prevHalfmove     int
	prevFullmove     int
	prevZobrist      uint64
	rookFrom, rookTo Square
}

func rookSquaresForCastle(kingTo Square) (from, to Square) {
	switch kingTo {
	case 6:
		return 7, 5
	case 2:
		return 0, 3
	case 62:
		return 63, 61
	case 58:
		return 56, 59
	default:
		return NoSquare, NoSquare
	}
}

func castlingRightsLostBy(sq Square) CastlingRights {
	switch sq {
	case 4:
		return CastlingWhiteKingside | CastlingWhiteQueenside
	case 60:
		return CastlingBlackKingside | CastlingBlackQueenside
	case 0:
		return CastlingWhiteQueenside
	case 7:
		return CastlingWhiteKingside
	case 56:
		return CastlingBlackQueenside
	case 63:
		return CastlingBlackKingside
	default:
		return 0
	}
}

// MakeMove applies m to the board and flips the side to move, rejecting (and
// fully reverting) moves that leave the mover's own king in check — the
// legality filter of spec.md §4.3 applied via spec.md §4.4's procedure. It
// appends a HalfMove to Game.MoveHistory that UndoMove can later pop and
// reverse; SAN and Mate are left zero-value here and are filled in by the
// higher-level ApplyMove, which also validates legality up front. MakeMove
// is the primitive both ApplyMove and LegalMoves' probing share, so a
// failed probe and an Undo always restore history length exactly (spec.md
// §3's "must leave the original bit-identical").
func (g *Game) MakeMove(m Move) bool {
	mover := g.SideToMove
	from, to := m.From(), m.To()
	movedPiece, _ := g.Board.Get(from)

	h := HalfMove{
		Move:         m,
		prevCastling: g.Castling,
		prevEPTarget: g.EPTarget,
		prevHalfmove: g.HalfmoveClock,
		prevFullmove: g.FullmoveNumber,
		prevZobrist:  g.zobrist,
		rookFrom:     NoSquare,
		rookTo:       NoSquare,
	}

	g.clearZobristEP()
	g.EPTarget = NoSquare

	if m.IsEnPassant() {
		capSq := Square(int(to) - 8)
		if mover == Black {
			capSq = Square(int(to) + 8)
		}
		h.Captured, _ = g.Board.Get(capSq)
		h.IsCapture = true
		g.removePiece(capSq, h.Captured)
	} else if cp, ok := g.Board.Get(to); ok {
		h.Captured = cp
		h.IsCapture = true
		g.removePiece(to, cp)
	}

	g.removePiece(from, movedPiece)
	placed := movedPiece
	if promo := m.Promotion(); promo != NoPieceKind {
		placed = ColoredPiece{Piece: promo, Color: mover}
	}
	g.placePiece(to, placed)

	if m.IsCastle() {
		rf, rt := rookSquaresForCastle(to)
		h.rookFrom, h.rookTo = rf, rt
		rook, _ := g.Board.Get(rf)
		g.removePiece(rf, rook)
		g.placePiece(rt, rook)
	}

	newCastling := g.Castling &^ (castlingRightsLostBy(from) | castlingRightsLostBy(to))
	if newCastling != g.Castling {
		g.zobrist ^= zobristCastling[g.Castling]
		g.zobrist ^= zobristCastling[newCastling]
		g.Castling = newCastling
	}

	if m.IsDoublePush() {
		ep := Square((int(from) + int(to)) / 2)
		g.EPTarget = ep
		g.zobrist ^= zobristEnPassantFile[ep.File()]
	}

	g.SideToMove = mover.Opponent()
	g.zobrist ^= zobristSideToMove

	if g.InCheck(mover) {
		g.undoRaw(h)
		return false
	}

	if movedPiece.Piece == Pawn || h.IsCapture {
		g.HalfmoveClock = 0
	} else {
		g.HalfmoveClock++
	}
	if mover == Black {
		g.FullmoveNumber++
	}

	g.MoveHistory = append(g.MoveHistory, h)
	g.positionHistory = append(g.positionHistory, g.zobrist)
	return true
}

// UndoMove reverses the most recent MakeMove, restoring a bit-identical
// prior state (spec.md §4.4's round-trip law).
func (g *Game) UndoMove() {
	n := len(g.MoveHistory)
	h := g.MoveHistory[n-1]
	g.MoveHistory = g.MoveHistory[:n-1]
	g.positionHistory = g.positionHistory[:len(g.positionHistory)-1]
	g.undoRaw(h)
}

// undoRaw reverses the board/state mutation of a HalfMove without touching
// MoveHistory/positionHistory bookkeeping; used both by UndoMove and by
// MakeMove's own illegal-move rollback.
func (g *Game) undoRaw(h HalfMove) {
	mover := g.SideToMove.Opponent()
	g.SideToMove = mover

	m := h.Move
	from, to := m.From(), m.To()

	if h.rookFrom != NoSquare {
		rook, _ := g.Board.Get(h.rookTo)
		g.Board.Clear(h.rookTo)
		g.Board.setMoved(h.rookFrom, rook, false)
	}

	placed, _ := g.Board.Get(to)
	g.Board.Clear(to)
	if m.Promotion() != NoPieceKind {
		g.Board.setMoved(from, ColoredPiece{Piece: Pawn, Color: mover}, false)
	} else {
		g.Board.setMoved(from, placed, false)
	}

	if h.IsCapture {
		if m.IsEnPassant() {
			capSq := Square(int(to) - 8)
			if mover == Black {
				capSq = Square(int(to) + 8)
			}
			g.Board.setMoved(capSq, h.Captured, false)
		} else {
			g.Board.setMoved(to, h.Captured, false)
		}
	}

	g.Castling = h.prevCastling
	g.EPTarget = h.prevEPTarget
	g.HalfmoveClock = h.prevHalfmove
	g.FullmoveNumber = h.prevFullmove
	g.zobrist = h.prevZobrist
}

func (g *Game) removePiece(sq Square, cp ColoredPiece) {
	g.Board.Clear(sq)
	g.zobrist ^= zobristPiece[cp.Color][cp.Piece][sq]
}

func (g *Game) placePiece(sq Square, cp ColoredPiece) {
	g.Board.Set(sq, cp)
	g.zobrist ^= zobristPiece[cp.Color][cp.Piece][sq]
}

func (g *Game) clearZobristEP() {
	if g.EPTarget != NoSquare {
		g.zobrist ^= zobristEnPassantFile[g.EPTarget.File()]
	}
}
