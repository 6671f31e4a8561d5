// Package session implements the host-facing facade: a single Game plus
// the six wire operations (get_game, get_possible_moves,
// get_possible_captures, do_move, get_history, restart). In do_move, once
// the human's move is applied the session also plays the engine's reply
// for the opposing side, matching the single-player mode spec.md §6
// describes.
package session

import (
	"math/rand"

	"chessforge/position"
	"chessforge/search"
)

// DefaultSearchDepth is the ply depth used for the engine's automatic
// reply in do_move.
const DefaultSearchDepth = 4

// Session owns one Game and the parameters governing its automatic
// replies.
type Session struct {
	game        *position.Game
	searchDepth int
	rng         *rand.Rand
}

// New returns a Session at the standard starting position.
func New() *Session {
	return &Session{
		game:        position.NewGame(),
		searchDepth: DefaultSearchDepth,
		rng:         rand.New(rand.NewSource(1)),
	}
}

// SetSearchDepth overrides the ply depth used for automatic replies.
func (s *Session) SetSearchDepth(depth int) {
	if depth < 1 {
		depth = 1
	}
	s.searchDepth = depth
}

// Cell is a wire-format board square: nil when empty.
type Cell struct {
	Piece  string `json:"piece"`
	Player string `json:"player"`
}

// BoardView is the wire-format board, ranks[0] being White's back rank to
// match position.Square's own indexing.
type BoardView struct {
	Ranks [8][8]*Cell `json:"ranks"`
}

// GameView is the response to get_game.
type GameView struct {
	Board  BoardView `json:"board"`
	Player string    `json:"player"`
}

// SquareRef is a wire-format (rank, file) coordinate pair.
type SquareRef struct {
	Rank int `json:"rank"`
	File int `json:"file"`
}

// MoveRequest is the input to do_move. Promotion is the empty string
// unless the move is a pawn promotion, in which case it is one of
// "knight"/"bishop"/"rook"/"queen".
type MoveRequest struct {
	SourceRank int    `json:"source_rank"`
	SourceFile int    `json:"source_file"`
	TargetRank int    `json:"target_rank"`
	TargetFile int    `json:"target_file"`
	Promotion  string `json:"promotion,omitempty"`
}

// MoveDescription is one applied half-move, rendered for the wire.
type MoveDescription struct {
	SAN      string `json:"san"`
	Captured *Cell  `json:"captured,omitempty"`
	Mate     string `json:"mate,omitempty"`
}

// TurnDescription bundles a White half-move with its optional Black reply.
type TurnDescription struct {
	Number int              `json:"number"`
	White  MoveDescription  `json:"white"`
	Black  *MoveDescription `json:"black,omitempty"`
}

func cellOf(cp position.ColoredPiece, ok bool) *Cell {
	if !ok {
		return nil
	}
	return &Cell{Piece: position.PieceName(cp.Piece), Player: position.ColorName(cp.Color)}
}

// GetGame returns the current board and side to move.
func (s *Session) GetGame() GameView {
	var view GameView
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			cp, ok := s.game.Board.Get(position.NewSquare(rank, file))
			view.Board.Ranks[rank][file] = cellOf(cp, ok)
		}
	}
	view.Player = position.ColorName(s.game.SideToMove)
	return view
}

// GetPossibleMoves returns the legal target squares reachable from
// (rank, file).
func (s *Session) GetPossibleMoves(rank, file int) []SquareRef {
	if !inRange(rank) || !inRange(file) {
		return nil
	}
	targets := s.game.LegalMovesFrom(position.NewSquare(rank, file))
	refs := make([]SquareRef, len(targets))
	for i, sq := range targets {
		refs[i] = SquareRef{Rank: sq.Rank(), File: sq.File()}
	}
	return refs
}

// GetPossibleCaptures returns, for every square, the squares of the
// side-to-move's pieces that could legally capture on it this turn. A
// square with nothing on it (and no en passant capture landing there) has
// an empty attacker list, even if a piece could legally move there quietly.
func (s *Session) GetPossibleCaptures() [8][8][]SquareRef {
	var matrix [8][8][]SquareRef
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			attackers := s.game.AttackersOn(position.NewSquare(rank, file))
			refs := make([]SquareRef, len(attackers))
			for i, sq := range attackers {
				refs[i] = SquareRef{Rank: sq.Rank(), File: sq.File()}
			}
			matrix[rank][file] = refs
		}
	}
	return matrix
}

// DoMove validates and applies req as the human's move; if it is legal and
// applied, and the game is not yet over, the session also plays the
// engine's reply for the opposing side. Returns false, leaving the game
// unchanged, if req does not name a legal move.
func (s *Session) DoMove(req MoveRequest) bool {
	if !inRange(req.SourceRank) || !inRange(req.SourceFile) ||
		!inRange(req.TargetRank) || !inRange(req.TargetFile) {
		return false
	}
	if s.game.IsGameOver() {
		return false
	}

	promo := position.NoPieceKind
	if req.Promotion != "" {
		p, ok := position.PieceFromName(req.Promotion)
		if !ok {
			return false
		}
		promo = p
	}

	from := position.NewSquare(req.SourceRank, req.SourceFile)
	to := position.NewSquare(req.TargetRank, req.TargetFile)

	var match position.Move
	found := false
	for _, m := range s.game.LegalMoves() {
		if m.From() == from && m.To() == to && m.Promotion() == promo {
			match = m
			found = true
			break
		}
	}
	if !found {
		return false
	}
	if !s.game.ApplyMove(match) {
		return false
	}

	if !s.game.IsGameOver() {
		res := search.Search(s.game, s.searchDepth, s.rng)
		s.game.ApplyMove(res.Move)
	}
	return true
}

// GetHistory returns the game's move history grouped into turns.
func (s *Session) GetHistory() []TurnDescription {
	history := s.game.MoveHistory
	turns := make([]TurnDescription, 0, (len(history)+1)/2)
	for i := 0; i < len(history); i += 2 {
		turn := TurnDescription{
			Number: i/2 + 1,
			White:  describeHalfMove(history[i]),
		}
		if i+1 < len(history) {
			black := describeHalfMove(history[i+1])
			turn.Black = &black
		}
		turns = append(turns, turn)
	}
	return turns
}

func describeHalfMove(h position.HalfMove) MoveDescription {
	desc := MoveDescription{
		SAN:  h.SAN,
		Mate: h.Mate.String(),
	}
	if h.IsCapture {
		desc.Captured = &Cell{
			Piece:  position.PieceName(h.Captured.Piece),
			Player: position.ColorName(h.Captured.Color),
		}
	}
	return desc
}

// Restart resets the session to the standard starting position.
func (s *Session) Restart() {
	s.game = position.NewGame()
}

func inRange(v int) bool { return v >= 0 && v < 8 }
