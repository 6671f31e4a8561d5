package position

import (
	"errors"
	"strconv"
	"strings"
)

// MateTag annotates a completed half-move with its terminal status, per
// spec.md §3/§4.6.
type MateTag uint8

const (
	MateNone MateTag = iota
	MateCheckmate
	MateStalemate
)

func (t MateTag) String() string {
	switch t {
	case MateCheckmate:
		return "Checkmate"
	case MateStalemate:
		return "Stalemate"
	default:
		return ""
	}
}

// StartingFEN is the FEN string for the standard initial chess position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Game is the full mutable chess state of spec.md §3: board, side to move,
// castling rights, en-passant target, halfmove clock, and move history.
// The Board is mutated exclusively through ApplyMove/UndoMove.
type Game struct {
	Board          Board
	SideToMove     Color
	Castling       CastlingRights
	EPTarget       Square
	HalfmoveClock  int
	FullmoveNumber int

	zobrist uint64

	MoveHistory     []HalfMove
	positionHistory []uint64 // Zobrist keys since game start; repetition material
}

// NewGame returns a Game set to the standard starting position.
func NewGame() *Game {
	g, err := ParseFEN(StartingFEN)
	if err != nil {
		panic("position: starting FEN must parse: " + err.Error())
	}
	return g
}

// ParseFEN parses a FEN string into a new Game.
func ParseFEN(fen string) (*Game, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("position: invalid FEN: not enough fields")
	}
	g := &Game{EPTarget: NoSquare}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("position: invalid FEN: expected 8 ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				cp, ok := pieceFromFEN(byte(ch))
				if !ok {
					return nil, errors.New("position: invalid FEN: bad piece letter")
				}
				if file >= 8 {
					return nil, errors.New("position: invalid FEN: rank overflow")
				}
				g.Board.setMoved(NewSquare(rank, file), cp, false)
				file++
			}
		}
		if file != 8 {
			return nil, errors.New("position: invalid FEN: rank does not sum to 8 files")
		}
	}

	switch fields[1] {
	case "w":
		g.SideToMove = White
	case "b":
		g.SideToMove = Black
	default:
		return nil, errors.New("position: invalid FEN: side to move must be w or b")
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				g.Castling |= CastlingWhiteKingside
			case 'Q':
				g.Castling |= CastlingWhiteQueenside
			case 'k':
				g.Castling |= CastlingBlackKingside
			case 'q':
				g.Castling |= CastlingBlackQueenside
			default:
				return nil, errors.New("position: invalid FEN: bad castling character")
			}
		}
	}

	if fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return nil, errors.New("position: invalid FEN: bad en-passant square")
		}
		g.EPTarget = sq
	}

	if len(fields) > 4 {
		hm, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, errors.New("position: invalid FEN: bad halfmove clock")
		}
		g.HalfmoveClock = hm
	}
	g.FullmoveNumber = 1
	if len(fields) > 5 {
		fm, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, errors.New("position: invalid FEN: bad fullmove number")
		}
		g.FullmoveNumber = fm
	}

	g.zobrist = g.computeZobrist()
	g.positionHistory = append(g.positionHistory, g.zobrist)
	return g, nil
}

// ToFEN renders the current position as a FEN string.
func (g *Game) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			cp, ok := g.Board.Get(NewSquare(rank, file))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(fenLetter(cp))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if g.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	if g.Castling == 0 {
		sb.WriteByte('-')
	} else {
		if g.Castling.has(CastlingWhiteKingside) {
			sb.WriteByte('K')
		}
		if g.Castling.has(CastlingWhiteQueenside) {
			sb.WriteByte('Q')
		}
		if g.Castling.has(CastlingBlackKingside) {
			sb.WriteByte('k')
		}
		if g.Castling.has(CastlingBlackQueenside) {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(g.EPTarget.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.FullmoveNumber))
	return sb.String()
}

// InCheck reports whether c's king is currently attacked.
func (g *Game) InCheck(c Color) bool {
	ksq := g.Board.FindKing(c)
	if ksq == NoSquare {
		return false
	}
	return IsAttacked(&g.Board, ksq, c.Opponent())
}
