package position

import "testing"

func TestRookAttacksOpenBoard(t *testing.T) {
	sq, _ := ParseSquare("d4")
	got := RookAttacks(sq, 0)
	want := (fileMask[3] | rankMask[3]) &^ sq.Bit()
	if got != want {
		t.Errorf("RookAttacks(d4, empty) = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestBishopAttacksBlocked(t *testing.T) {
	d4, _ := ParseSquare("d4")
	f6, _ := ParseSquare("f6")
	occ := f6.Bit()
	got := BishopAttacks(d4, occ)
	if !got.Has(f6) {
		t.Error("bishop on d4 should attack the blocker on f6")
	}
	g8, _ := ParseSquare("g8")
	if got.Has(g8) {
		t.Error("bishop attacks should not pass through a blocker")
	}
}

func TestKnightAttacksCorner(t *testing.T) {
	a1, _ := ParseSquare("a1")
	got := KnightAttacks(a1)
	if got.Count() != 2 {
		t.Errorf("knight on a1 has %d attacked squares, want 2", got.Count())
	}
	b3, _ := ParseSquare("b3")
	c2, _ := ParseSquare("c2")
	if !got.Has(b3) || !got.Has(c2) {
		t.Error("knight on a1 should attack b3 and c2")
	}
}

func TestAttackersOfSuperPiece(t *testing.T) {
	g, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	e1, _ := ParseSquare("e1")
	if IsAttacked(&g.Board, e1, Black) != g.InCheck(White) {
		t.Error("InCheck(White) disagrees with IsAttacked(e1, Black)")
	}
	if g.InCheck(White) {
		t.Fatal("white should not be in check in the Kiwipete position")
	}
}

func TestAttackersOnExcludesQuietDestinations(t *testing.T) {
	g := NewGame()
	a3, _ := ParseSquare("a3")
	if got := g.AttackersOn(a3); len(got) != 0 {
		t.Errorf("AttackersOn(a3) = %v, want none: Nb1-a3 is a quiet move, not a capture", got)
	}
}

func TestAttackersOnIncludesCapturingPiece(t *testing.T) {
	g, err := ParseFEN("4k3/8/3p4/8/4N3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	d6, _ := ParseSquare("d6")
	e4, _ := ParseSquare("e4")
	got := g.AttackersOn(d6)
	if len(got) != 1 || got[0] != e4 {
		t.Errorf("AttackersOn(d6) = %v, want [e4]", got)
	}
}

func TestAttackersOnIncludesEnPassant(t *testing.T) {
	g, err := ParseFEN("4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	e3, _ := ParseSquare("e3")
	d4, _ := ParseSquare("d4")
	got := g.AttackersOn(e3)
	if len(got) != 1 || got[0] != d4 {
		t.Errorf("AttackersOn(e3) = %v, want [d4] via en passant", got)
	}
}

func TestBackendNameIsKnown(t *testing.T) {
	name := BackendName()
	if name != "wide" && name != "compact" {
		t.Fatalf("unexpected backend name %q", name)
	}
}
