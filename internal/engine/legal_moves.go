package engine

import "chessd/internal/chess"

// LegalMoves returns the pseudo-legal moves from a square minus every move
// that would leave the mover's own king attacked. Each candidate is tried
// by full application on a scratch copy, so en-passant pawn removal and
// castling rook transfer are part of the simulation.
func LegalMoves(board *chess.Board, from chess.Square) []chess.Move {
	pseudo := PseudoLegalMoves(board, from)
	if len(pseudo) == 0 {
		return nil
	}

	mover := board.ToMove
	legal := make([]chess.Move, 0, len(pseudo))
	for _, move := range pseudo {
		scratch := board.Copy()
		Apply(scratch, move)
		if !IsInCheck(scratch, mover) {
			legal = append(legal, move)
		}
	}
	if len(legal) == 0 {
		return nil
	}
	return legal
}

// AllLegalMoves returns every legal move for the side to move.
func AllLegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			moves = append(moves, LegalMoves(board, chess.Square{File: file, Rank: rank})...)
		}
	}
	return moves
}

// HasLegalMove reports whether the side to move has at least one legal
// move. This is the early-out the status machine uses; it stops at the
// first square that yields anything.
func HasLegalMove(board *chess.Board) bool {
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			if len(LegalMoves(board, chess.Square{File: file, Rank: rank})) > 0 {
				return true
			}
		}
	}
	return false
}
