package position

import "testing"

func TestPerftStartingPosition(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		g := NewGame()
		if got := Perft(g, c.depth); got != c.want {
			t.Errorf("Perft(start, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		g, err := ParseFEN(kiwipete)
		if err != nil {
			t.Fatalf("ParseFEN(kiwipete): %v", err)
		}
		if got := Perft(g, c.depth); got != c.want {
			t.Errorf("Perft(kiwipete, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftDividePartitionsLeafCount(t *testing.T) {
	g := NewGame()
	div := PerftDivide(g, 3)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if want := Perft(g, 3); sum != want {
		t.Errorf("sum of PerftDivide leaves = %d, want %d", sum, want)
	}
	if len(div) != 20 {
		t.Errorf("len(PerftDivide) = %d, want 20 root moves", len(div))
	}
}
