// Command perft runs the perft node-counting benchmark against the
// position package: either a per-depth table from depth 1 up to -maxdepth,
// or a root-move breakdown with -perMove.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"chessforge/position"
)

func main() {
	pos := flag.String("position", position.StartingFEN, "FEN to start from")
	maxDepth := flag.Int("maxdepth", 0, "run perft for every depth from 1 up to this (required)")
	perMove := flag.Bool("perMove", false, "instead of a depth table, break the count down by root move at -maxdepth")
	trials := flag.Int("trials", 1, "run each depth this many times and sum nodes, for steadier nps readings")
	tag := flag.String("tag", "", "prefix printed before each table row")
	flag.Parse()

	if *maxDepth <= 0 {
		fmt.Fprintln(os.Stderr, "perft: -maxdepth must be > 0")
		os.Exit(2)
	}

	game, err := position.ParseFEN(*pos)
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: bad -position: %v\n", err)
		os.Exit(2)
	}

	if *perMove {
		runPerMove(game, *maxDepth)
		return
	}
	runTable(game, *maxDepth, *trials, *tag)
}

func runPerMove(game *position.Game, depth int) {
	counts := position.PerftDivide(game, depth)
	moves := make([]position.Move, 0, len(counts))
	for m := range counts {
		moves = append(moves, m)
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })

	var total uint64
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "move\tnodes")
	for _, m := range moves {
		n := counts[m]
		total += n
		fmt.Fprintf(w, "%s\t%d\n", m.String(), n)
	}
	w.Flush()
	fmt.Printf("total\t%d\n", total)
}

func runTable(game *position.Game, maxDepth, trials int, tag string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "depth\tnodes\telapsed\tnodes/sec")
	for depth := 1; depth <= maxDepth; depth++ {
		var nodes uint64
		start := time.Now()
		for i := 0; i < trials; i++ {
			nodes += position.Perft(game, depth)
		}
		elapsed := time.Since(start)
		nps := float64(nodes) / elapsed.Seconds()
		if tag != "" {
			fmt.Fprintf(w, "%s/%d\t%d\t%s\t%.0f\n", tag, depth, nodes, elapsed, nps)
		} else {
			fmt.Fprintf(w, "%d\t%d\t%s\t%.0f\n", depth, nodes, elapsed, nps)
		}
	}
	w.Flush()
}
