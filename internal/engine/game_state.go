package engine

import "chessd/internal/chess"

// StatusOf classifies the position from the point of view of the side to
// move. Checkmate and check report that side's colour; stalemate and
// in-progress carry no colour.
func StatusOf(board *chess.Board) chess.GameStatus {
	colour := board.ToMove
	inCheck := IsInCheck(board, colour)
	hasMove := HasLegalMove(board)

	switch {
	case inCheck && !hasMove:
		return chess.GameStatus{Kind: chess.StatusCheckmate, Colour: colour}
	case inCheck:
		return chess.GameStatus{Kind: chess.StatusCheck, Colour: colour}
	case !hasMove:
		return chess.GameStatus{Kind: chess.StatusStalemate}
	default:
		return chess.GameStatus{Kind: chess.StatusInProgress}
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove) && !HasLegalMove(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.ToMove) && !HasLegalMove(board)
}
