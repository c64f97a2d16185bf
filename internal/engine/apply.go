package engine

import "chessd/internal/chess"

// Apply plays a move on the board, mutating it in place. The move must
// have been generated for this exact position: the applier trusts the tag
// and performs no legality checking of its own. Callers that need undo
// take a Board.SaveState snapshot first.
func Apply(board *chess.Board, move chess.Move) {
	piece := board.PieceAt(move.From)
	colour := chess.ExtractColour(piece)
	isPawn := chess.ExtractPiece(piece) == chess.Pawn

	switch move.Tag {
	case chess.CastleKingSide:
		applyCastle(board, colour, 7, 6, 5)
	case chess.CastleQueenSide:
		applyCastle(board, colour, 0, 2, 3)
	case chess.EnPassantCapture:
		// The captured pawn sits beside the source, on the destination
		// file: the square the enemy pawn double-stepped onto.
		board.SetPiece(move.From, chess.Empty)
		board.SetPiece(move.To, piece)
		board.SetPiece(chess.Square{File: move.To.File, Rank: move.From.Rank}, chess.Empty)
	default:
		board.SetPiece(move.From, chess.Empty)
		placed := piece
		if move.Promotion != chess.Empty {
			placed = chess.MakeColouredPiece(colour, move.Promotion)
		}
		board.SetPiece(move.To, placed)
	}

	// A two-square pawn advance leaves an en-passant target on the square
	// it skipped; every other move clears the target.
	if isPawn && abs(move.To.Rank-move.From.Rank) == 2 {
		board.SetEnPassantTarget(chess.Square{File: move.From.File, Rank: (move.From.Rank + move.To.Rank) / 2})
	} else {
		board.ClearEnPassantTarget()
	}

	// Castling rights die when the king or a rook leaves its original
	// square, and when a rook is captured on one: both ends of the move
	// are checked.
	clearRightsAt(board, move.From)
	clearRightsAt(board, move.To)

	if isPawn || move.IsCapture() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if board.ToMove == chess.Black {
		board.FullmoveNumber++
	}
	board.ToggleSideToMove()
}

// applyCastle moves the king two files toward the rook and the rook onto
// the square the king crossed, then removes both rights for the colour.
func applyCastle(board *chess.Board, colour chess.Colour, rookFile, kingToFile, rookToFile int) {
	home := kingHome(colour)
	rank := home.Rank

	king := board.PieceAt(home)
	rookSq := chess.Square{File: rookFile, Rank: rank}
	rook := board.PieceAt(rookSq)

	board.SetPiece(home, chess.Empty)
	board.SetPiece(rookSq, chess.Empty)
	board.SetPiece(chess.Square{File: kingToFile, Rank: rank}, king)
	board.SetPiece(chess.Square{File: rookToFile, Rank: rank}, rook)

	board.Rights.ClearColour(colour)
}

// clearRightsAt drops whichever castling rights depend on a square. Only
// the kings' and rooks' original squares carry rights.
func clearRightsAt(board *chess.Board, sq chess.Square) {
	switch sq {
	case chess.Square{File: 4, Rank: 0}:
		board.Rights.ClearColour(chess.White)
	case chess.Square{File: 0, Rank: 0}:
		board.Rights.ClearQueenSide(chess.White)
	case chess.Square{File: 7, Rank: 0}:
		board.Rights.ClearKingSide(chess.White)
	case chess.Square{File: 4, Rank: 7}:
		board.Rights.ClearColour(chess.Black)
	case chess.Square{File: 0, Rank: 7}:
		board.Rights.ClearQueenSide(chess.Black)
	case chess.Square{File: 7, Rank: 7}:
		board.Rights.ClearKingSide(chess.Black)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
