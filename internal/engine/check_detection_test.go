package engine

import (
	"strings"
	"testing"

	"chessd/internal/chess"
)

// mustBoard parses a known-good FEN fixture, failing the test on error.
// Shared by the engine package tests.
func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// mustSquare parses algebraic notation, failing the test on error.
func mustSquare(t *testing.T, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", s, err)
	}
	return sq
}

// TestIsAttacked covers each attack pattern and its blocking rules
func TestIsAttacked(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		by     chess.Colour
		want   bool
	}{
		{"white pawn attacks diagonally", "8/8/8/8/4P3/8/8/K6k w - - 0 1", "d5", chess.White, true},
		{"white pawn attacks both diagonals", "8/8/8/8/4P3/8/8/K6k w - - 0 1", "f5", chess.White, true},
		{"pawn does not attack its push square", "8/8/8/8/4P3/8/8/K6k w - - 0 1", "e5", chess.White, false},
		{"black pawn attacks downward", "8/8/4p3/8/8/8/8/K6k w - - 0 1", "d5", chess.Black, true},
		{"black pawn does not attack upward", "8/8/4p3/8/8/8/8/K6k w - - 0 1", "d7", chess.Black, false},
		{"knight attack", "8/8/8/8/8/5N2/8/K6k w - - 0 1", "e5", chess.White, true},
		{"knight attack ignores blockers", "8/8/8/4p3/4p3/5N2/8/K6k w - - 0 1", "e5", chess.White, true},
		{"knight non-attack square", "8/8/8/8/8/5N2/8/K6k w - - 0 1", "f5", chess.White, false},
		{"king attacks adjacent square", "8/8/8/8/8/8/8/K6k w - - 0 1", "b2", chess.White, true},
		{"king does not attack at distance", "8/8/8/8/8/8/8/K6k w - - 0 1", "c3", chess.White, false},
		{"bishop along open diagonal", "8/8/8/8/8/8/1B6/K6k w - - 0 1", "g7", chess.White, true},
		{"bishop blocked by own piece", "8/8/8/4P3/8/8/1B6/K6k w - - 0 1", "g7", chess.White, false},
		{"bishop blocked by enemy piece", "8/8/8/4p3/8/8/1B6/K6k w - - 0 1", "g7", chess.White, false},
		{"bishop attacks the blocker itself", "8/8/8/4p3/8/8/1B6/K6k w - - 0 1", "e5", chess.White, true},
		{"rook along open file", "8/8/8/8/8/8/8/KR5k w - - 0 1", "b8", chess.White, true},
		{"rook along open rank", "8/8/8/8/8/8/8/KR5k w - - 0 1", "g1", chess.White, true},
		{"rook does not attack diagonally", "8/8/8/8/8/8/8/KR5k w - - 0 1", "c3", chess.White, false},
		{"rook blocked on the file", "8/8/8/1p6/8/8/8/KR5k w - - 0 1", "b8", chess.White, false},
		{"queen diagonal", "8/8/8/8/8/8/1Q6/K6k w - - 0 1", "g7", chess.White, true},
		{"queen straight", "8/8/8/8/8/8/1Q6/K6k w - - 0 1", "b8", chess.White, true},
		{"queen knight-shape non-attack", "8/8/8/8/8/8/1Q6/K6k w - - 0 1", "c4", chess.White, false},
		{"wrong colour attacker", "8/8/8/8/8/5N2/8/K6k w - - 0 1", "e5", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := IsAttacked(board, mustSquare(t, tt.square), tt.by)
			if got != tt.want {
				t.Errorf("IsAttacked(%s, %v) = %v, want %v", tt.square, tt.by, got, tt.want)
			}
		})
	}
}

// TestIsInCheck tests check detection for both colours
func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial position white", InitialFEN, chess.White, false},
		{"initial position black", InitialFEN, chess.Black, false},
		{"queen gives check", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.White, true},
		{"checking side is not in check", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.Black, false},
		{"back-rank rook check", "R6k/6pp/8/8/8/8/8/K7 b - - 0 1", chess.Black, true},
		{"bishop check through open diagonal", "rnbqkbnr/ppp1pppp/8/1B1p4/4P3/8/PPPP1PPP/RNBQK1NR b KQkq - 1 2", chess.Black, true},
		{"knight check", "4k3/8/3N4/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"pawn check", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"blocked ray is no check", "4k3/4p3/8/8/4R3/8/8/4K3 b - - 0 1", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := IsInCheck(board, tt.colour)
			if got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

// TestIsInCheckPanicsWithoutKing tests the missing-king invariant
func TestIsInCheckPanicsWithoutKing(t *testing.T) {
	board := mustBoard(t, "8/8/8/8/8/8/8/K7 w - - 0 1")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("IsInCheck on board without black king did not panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "king") {
			t.Errorf("panic message = %v, want mention of the missing king", r)
		}
	}()
	IsInCheck(board, chess.Black)
}

// TestKingSquare tests locating kings in custom positions
func TestKingSquare(t *testing.T) {
	board := mustBoard(t, "8/8/8/3K4/8/8/8/4k3 w - - 0 1")

	sq, ok := KingSquare(board, chess.White)
	if !ok || sq != mustSquare(t, "d5") {
		t.Errorf("KingSquare(White) = %v, %v, want d5, true", sq, ok)
	}

	sq, ok = KingSquare(board, chess.Black)
	if !ok || sq != mustSquare(t, "e1") {
		t.Errorf("KingSquare(Black) = %v, %v, want e1, true", sq, ok)
	}

	board = mustBoard(t, "8/8/8/3K4/8/8/8/8 w - - 0 1")
	if _, ok := KingSquare(board, chess.Black); ok {
		t.Error("KingSquare(Black) on kingless board = true, want false")
	}
}
