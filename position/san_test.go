package position

import "testing"

func TestSANDisambiguationByFile(t *testing.T) {
	// White knights on d2 and f2, both able to reach e4.
	g, err := ParseFEN("4k3/8/8/8/8/8/3N1N2/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	from, _ := ParseSquare("d2")
	to, _ := ParseSquare("e4")
	var move Move
	for _, m := range g.LegalMoves() {
		if m.From() == from && m.To() == to {
			move = m
		}
	}
	if move == 0 {
		t.Fatal("expected Nd2-e4 among legal moves")
	}
	if !g.ApplyMove(move) {
		t.Fatal("ApplyMove rejected a legal move")
	}
	san := g.MoveHistory[len(g.MoveHistory)-1].SAN
	if san != "Nde4" {
		t.Errorf("SAN = %q, want Nde4 (file disambiguation)", san)
	}
}

func TestSANCaptureOutOfCheck(t *testing.T) {
	g, err := ParseFEN("4k3/8/8/8/8/8/8/Rr2K3 w Q - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	from, _ := ParseSquare("a1")
	to, _ := ParseSquare("b1")
	var move Move
	for _, m := range g.LegalMoves() {
		if m.From() == from && m.To() == to {
			move = m
		}
	}
	if move == 0 {
		t.Fatal("expected Rxb1 among legal moves")
	}
	if !g.ApplyMove(move) {
		t.Fatal("ApplyMove rejected a legal move")
	}
	san := g.MoveHistory[len(g.MoveHistory)-1].SAN
	if san != "Rxb1" {
		t.Errorf("SAN = %q, want Rxb1", san)
	}
}
