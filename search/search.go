// Package search implements depth-limited negamax with alpha-beta pruning
// over the position package, ordering captures and promotions before quiet
// moves.
package search

import (
	"math/rand"

	"chessforge/eval"
	"chessforge/position"
)

// Mate is the base magnitude of a forced-mate score; a mate found at ply p
// from the search root scores Mate-p, so the search prefers the shallowest
// mate available.
const Mate = eval.Mate

// Result is the outcome of a root search: the move to play and the score
// it achieves, both from the side-to-move's perspective.
type Result struct {
	Move  position.Move
	Score int
	Nodes int
}

// CheckExtension, when true, searches one ply deeper whenever the side to
// move is in check — the optional extension spec.md's search pseudocode
// allows but does not require.
var CheckExtension = true

// Search runs a fixed-depth negamax search from g's current position and
// returns the best root move. depth must be >= 1; ties among root moves
// achieving the best score are broken uniformly at random, matching the
// "randomization allowed only among strictly tied root moves" rule.
func Search(g *position.Game, depth int, rng *rand.Rand) Result {
	moves := orderMoves(g, g.LegalMoves())
	if len(moves) == 0 {
		if g.InCheck(g.SideToMove) {
			return Result{Score: -Mate}
		}
		return Result{Score: 0}
	}

	var nodes int
	best := -Mate - 1
	var bestMoves []position.Move

	alpha, beta := -Mate-1, Mate+1
	for _, m := range moves {
		g.MakeMove(m)
		nodes++
		// Search one below alpha so a move that ties the best score gets
		// its exact value rather than an upper bound equal to alpha.
		v := -negamax(g, depth-1, -beta, -(alpha - 1), depth, &nodes)
		g.UndoMove()

		if v > best {
			best = v
			bestMoves = bestMoves[:0]
			bestMoves = append(bestMoves, m)
		} else if v == best {
			bestMoves = append(bestMoves, m)
		}
		if best > alpha {
			alpha = best
		}
	}

	chosen := bestMoves[0]
	if len(bestMoves) > 1 && rng != nil {
		chosen = bestMoves[rng.Intn(len(bestMoves))]
	}
	return Result{Move: chosen, Score: best, Nodes: nodes}
}

// negamax implements the search pseudocode of spec.md §4.6: terminal moves
// score ±Mate adjusted by ply, depth-0 nodes are statically evaluated, and
// moves are tried in capture/promotion/quiet order with an alpha-beta
// cutoff.
func negamax(g *position.Game, depth, alpha, beta, rootDepth int, nodes *int) int {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		if g.InCheck(g.SideToMove) {
			return -Mate + (rootDepth - depth)
		}
		return 0
	}

	if depth <= 0 {
		return eval.Evaluate(g)
	}

	searchDepth := depth
	if CheckExtension && g.InCheck(g.SideToMove) {
		searchDepth++
	}

	best := -Mate - 1
	for _, m := range orderMoves(g, moves) {
		g.MakeMove(m)
		*nodes++
		v := -negamax(g, searchDepth-1, -beta, -alpha, rootDepth, nodes)
		g.UndoMove()

		if v > best {
			best = v
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// orderMoves returns moves reordered captures-first, then promotions, then
// quiets, per spec.md §4.6; ties within a bucket keep generation order.
func orderMoves(g *position.Game, moves []position.Move) []position.Move {
	ordered := make([]position.Move, 0, len(moves))
	var promotions, quiets []position.Move

	for _, m := range moves {
		switch {
		case isCapture(g, m):
			ordered = append(ordered, m)
		case m.Promotion() != position.NoPieceKind:
			promotions = append(promotions, m)
		default:
			quiets = append(quiets, m)
		}
	}
	ordered = append(ordered, promotions...)
	ordered = append(ordered, quiets...)
	return ordered
}

func isCapture(g *position.Game, m position.Move) bool {
	if m.IsEnPassant() {
		return true
	}
	_, ok := g.Board.Get(m.To())
	return ok
}
