// perft counts legal move tree nodes to a fixed depth, optionally split
// per root move. Standard positions have published counts, which makes
// this the quickest full-pipeline check of the engine.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"chessd/internal/engine"
	"chessd/internal/perft"
)

var (
	fen     = flag.String("fen", engine.InitialFEN, "position to search, in FEN")
	depth   = flag.Int("depth", 4, "search depth in plies")
	divide  = flag.Bool("divide", false, "print the position and per-root-move subtotals")
	workers = flag.Int("workers", runtime.NumCPU(), "worker goroutines for the root split")
)

func main() {
	flag.Parse()

	board, err := engine.NewBoardFromFEN(*fen)
	if err != nil {
		log.Fatalf("parse position: %v", err)
	}

	start := time.Now()
	var nodes uint64

	if *divide {
		fmt.Println(engine.BoardToGrid(board))
		counts := perft.DivideParallel(board, *depth, *workers)
		for _, move := range perft.SortedMoves(counts) {
			fmt.Printf("%s: %d\n", move, counts[move])
			nodes += counts[move]
		}
	} else {
		nodes = perft.CountParallel(board, *depth, *workers)
	}

	elapsed := time.Since(start)
	fmt.Printf("\nperft(%d) = %d in %v (%.0f nodes/sec)\n",
		*depth, nodes, elapsed.Round(time.Millisecond), float64(nodes)/elapsed.Seconds())
}
