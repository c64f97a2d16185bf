package testutil

import (
	"sort"
	"testing"

	"chessd/internal/chess"
	"chessd/internal/engine"
)

// MustBoardFromFEN parses a FEN fixture into a board.
// It calls t.Fatal when the FEN does not parse, so broken fixtures abort
// the test instead of cascading into confusing assertion failures.
func MustBoardFromFEN(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse test FEN %q: %v", fen, err)
	}
	return board
}

// MustSquare parses algebraic notation such as "e4".
// It calls t.Fatal on malformed input.
func MustSquare(t *testing.T, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("failed to parse test square %q: %v", s, err)
	}
	return sq
}

// MustPlayUCI applies a sequence of UCI moves to the board, resolving each
// against the legal moves of the position. It calls t.Fatal when a move is
// not legal, so a broken fixture line fails at the offending move.
func MustPlayUCI(t *testing.T, board *chess.Board, ucis ...string) {
	t.Helper()
	for _, uci := range ucis {
		move, ok := findLegalUCI(board, uci)
		if !ok {
			t.Fatalf("move %q is not legal in position %s", uci, engine.BoardToFEN(board))
		}
		engine.Apply(board, move)
	}
}

func findLegalUCI(board *chess.Board, uci string) (chess.Move, bool) {
	for _, move := range engine.AllLegalMoves(board) {
		if move.String() == uci {
			return move, true
		}
	}
	return chess.Move{}, false
}

// MoveStrings renders moves as sorted UCI strings for order-independent
// comparison.
func MoveStrings(moves []chess.Move) []string {
	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.String()
	}
	sort.Strings(strs)
	return strs
}

// SquareStrings renders squares as sorted algebraic strings.
func SquareStrings(squares []chess.Square) []string {
	strs := make([]string, len(squares))
	for i, sq := range squares {
		strs[i] = sq.String()
	}
	sort.Strings(strs)
	return strs
}
