// Package perft walks the legal move tree to a fixed depth and counts the
// leaf nodes. The counts for standard positions are published, so they
// cross-check move generation, legality filtering, and move application
// in one sweep.
package perft

import (
	"runtime"
	"sort"

	"chessd/internal/chess"
	"chessd/internal/engine"
	"chessd/internal/worker"
)

// Count returns the number of leaf nodes in the legal move tree below
// the position at the given depth. Depth zero counts the position itself.
func Count(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := engine.AllLegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		state := board.SaveState()
		engine.Apply(board, move)
		nodes += Count(board, depth-1)
		board.RestoreState(state)
	}
	return nodes
}

// Divide returns the leaf count below each root move, keyed by the move
// in coordinate notation. The sum of the values equals Count at the same
// depth.
func Divide(board *chess.Board, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth < 1 {
		return counts
	}
	for _, move := range engine.AllLegalMoves(board) {
		state := board.SaveState()
		engine.Apply(board, move)
		counts[move.String()] = Count(board, depth-1)
		board.RestoreState(state)
	}
	return counts
}

// DivideParallel is Divide with the root moves fanned out over a worker
// pool. Each root move searches its own copy of the board, so the input
// board is never mutated. workers below 1 means one worker per CPU.
func DivideParallel(board *chess.Board, depth, workers int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth < 1 {
		return counts
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	moves := engine.AllLegalMoves(board)
	process := func(task worker.Task) worker.TaskResult {
		return worker.TaskResult{
			Move:  task.Move,
			Index: task.Index,
			Nodes: Count(task.Board, task.Depth),
		}
	}
	pool := worker.NewPoolWithOptions(process,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(moves)+1),
	)
	pool.Start()

	for i, move := range moves {
		child := board.Copy()
		engine.Apply(child, move)
		pool.Submit(worker.Task{Board: child, Move: move, Depth: depth - 1, Index: i})
	}
	go pool.Close()

	for result := range pool.Results() {
		counts[result.Move.String()] = result.Nodes
	}
	return counts
}

// CountParallel sums DivideParallel. It is the parallel counterpart of
// Count for deep runs from the command line.
func CountParallel(board *chess.Board, depth, workers int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, n := range DivideParallel(board, depth, workers) {
		nodes += n
	}
	return nodes
}

// SortedMoves returns the divide keys in coordinate-notation order, for
// stable printing.
func SortedMoves(counts map[string]uint64) []string {
	moves := make([]string, 0, len(counts))
	for move := range counts {
		moves = append(moves, move)
	}
	sort.Strings(moves)
	return moves
}
