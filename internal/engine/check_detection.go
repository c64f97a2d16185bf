package engine

import (
	"fmt"

	"chessd/internal/chess"
)

// knightOffsets are the eight L-shaped knight displacements.
var knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

// Sliding directions: bishops use the diagonals, rooks the straights,
// queens both.
var (
	diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsAttacked returns true if the square is attacked by any piece of the
// given colour. The scan walks outward from the square through every
// attack pattern that could reach it. Pawns count only with their diagonal
// capture pattern; their forward pushes attack nothing.
func IsAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawn attacks: a byColour pawn one rank short of sq on an adjacent file.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour)
	for _, df := range [2]int{-1, 1} {
		if from, ok := sq.Offset(df, pawnDir); ok && board.PieceAt(from) == pawn {
			return true
		}
	}

	// Knight attacks.
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && board.PieceAt(from) == knight {
			return true
		}
	}

	// King attacks.
	king := chess.MakeColouredPiece(byColour, chess.King)
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			if from, ok := sq.Offset(df, dr); ok && board.PieceAt(from) == king {
				return true
			}
		}
	}

	// Sliding attacks along diagonals (bishop, queen).
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	for _, dir := range diagonalDirs {
		if p := firstPieceAlong(board, sq, dir[0], dir[1]); p == bishop || p == queen {
			return true
		}
	}

	// Sliding attacks along straight lines (rook, queen).
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		if p := firstPieceAlong(board, sq, dir[0], dir[1]); p == rook || p == queen {
			return true
		}
	}

	return false
}

// firstPieceAlong walks from sq in one direction and returns the first
// piece encountered, or Empty when the ray leaves the board unblocked.
func firstPieceAlong(board *chess.Board, sq chess.Square, df, dr int) chess.Piece {
	cur, ok := sq.Offset(df, dr)
	for ok {
		if p := board.PieceAt(cur); p != chess.Empty {
			return p
		}
		cur, ok = cur.Offset(df, dr)
	}
	return chess.Empty
}

// IsInCheck returns true if the given colour's king is in check. A board
// with no such king is unreachable through the engine, so encountering one
// is a caller bug and panics.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := KingSquare(board, colour)
	if !ok {
		panic(fmt.Sprintf("engine: no %v king on board", colour))
	}
	return IsAttacked(board, kingSq, colour.Opposite())
}

// KingSquare finds the king of the given colour on the board.
func KingSquare(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := chess.Square{File: file, Rank: rank}
			if board.PieceAt(sq) == king {
				return sq, true
			}
		}
	}
	return chess.Square{}, false
}
