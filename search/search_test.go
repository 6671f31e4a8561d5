package search

import (
	"testing"

	"chessforge/position"
)

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move, classic back-rank mate available: Rd8#.
	g, err := position.ParseFEN("6k1/5ppp/8/8/8/8/8/3R2K1 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	res := Search(g, 3, nil)
	if res.Score < Mate-10 {
		t.Errorf("Search score = %d, want a near-mate score", res.Score)
	}

	if !g.ApplyMove(res.Move) {
		t.Fatalf("chosen move %s was not legal", res.Move)
	}
	if !g.IsGameOver() {
		t.Fatalf("expected chosen move %s to deliver mate", res.Move)
	}
	last := g.MoveHistory[len(g.MoveHistory)-1]
	if last.Mate != position.MateCheckmate {
		t.Errorf("mate tag = %v, want Checkmate", last.Mate)
	}
}

func TestSearchPicksObviousCapture(t *testing.T) {
	g, err := position.ParseFEN("4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	res := Search(g, 2, nil)

	var found bool
	for _, m := range g.LegalMoves() {
		if isCapture(g, m) && m == res.Move {
			found = true
		}
	}
	if !found {
		t.Errorf("expected search to choose a capturing move, got %s", res.Move)
	}
}

func TestSearchIsDeterministicWithoutRNG(t *testing.T) {
	g := position.NewGame()
	r1 := Search(g, 2, nil)
	r2 := Search(g, 2, nil)
	if r1.Move != r2.Move || r1.Score != r2.Score {
		t.Errorf("Search is non-deterministic: %+v vs %+v", r1, r2)
	}
}
