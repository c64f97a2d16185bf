package engine

import "chessd/internal/chess"

// promotionKinds lists the pieces a pawn may become. The generator emits
// one distinct move per kind.
var promotionKinds = [4]chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// PseudoLegalMoves returns every movement-shape move for the piece on the
// given square. Occupancy and capture rules are honoured, but the mover's
// king may be left in check; LegalMoves filters that out. The result is
// empty unless the square holds a piece of the side to move.
func PseudoLegalMoves(board *chess.Board, from chess.Square) []chess.Move {
	piece := board.PieceAt(from)
	if piece == chess.Empty {
		return nil
	}
	colour := chess.ExtractColour(piece)
	if colour != board.ToMove {
		return nil
	}

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnMoves(board, from, colour)
	case chess.Knight:
		return leaperMoves(board, from, colour, knightOffsets[:])
	case chess.Bishop:
		return sliderMoves(board, from, colour, diagonalDirs[:])
	case chess.Rook:
		return sliderMoves(board, from, colour, straightDirs[:])
	case chess.Queen:
		moves := sliderMoves(board, from, colour, diagonalDirs[:])
		return append(moves, sliderMoves(board, from, colour, straightDirs[:])...)
	case chess.King:
		return kingMoves(board, from, colour)
	}
	return nil
}

// pawnMoves generates advances, double advances from the start rank,
// diagonal captures, en-passant captures onto the board's target square,
// and the promotion fan-out on the last rank.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	dir := chess.ColourOffset(colour)
	startRank, promoRank := 1, 7
	if colour == chess.Black {
		startRank, promoRank = 6, 0
	}

	// Forward advances need empty squares; a double advance needs both.
	if one, ok := from.Offset(0, dir); ok && board.PieceAt(one) == chess.Empty {
		moves = appendPawnMove(moves, from, one, chess.Normal, promoRank)
		if from.Rank == startRank {
			if two, ok := from.Offset(0, 2*dir); ok && board.PieceAt(two) == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: two, Tag: chess.Normal})
			}
		}
	}

	// Diagonal captures. The en-passant target square is empty by
	// definition, so the two branches never overlap.
	for _, df := range [2]int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		target := board.PieceAt(to)
		if target != chess.Empty {
			if chess.ExtractColour(target) != colour {
				moves = appendPawnMove(moves, from, to, chess.Capture, promoRank)
			}
			continue
		}
		if epSq, epOk := board.EnPassantTarget(); epOk && to == epSq {
			moves = append(moves, chess.Move{From: from, To: to, Tag: chess.EnPassantCapture})
		}
	}

	return moves
}

// appendPawnMove adds one pawn move, fanning out into one move per
// promotion kind when the destination is the last rank. A quiet promotion
// keeps the Normal tag; a capturing one becomes PromotionCapture.
func appendPawnMove(moves []chess.Move, from, to chess.Square, tag chess.MoveTag, promoRank int) []chess.Move {
	if to.Rank != promoRank {
		return append(moves, chess.Move{From: from, To: to, Tag: tag})
	}
	promoTag := tag
	if tag == chess.Capture {
		promoTag = chess.PromotionCapture
	}
	for _, kind := range promotionKinds {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: kind, Tag: promoTag})
	}
	return moves
}

// leaperMoves generates fixed-offset moves (knights); occupancy of the
// path is irrelevant, only the destination matters.
func leaperMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		target := board.PieceAt(to)
		if target == chess.Empty {
			moves = append(moves, chess.Move{From: from, To: to, Tag: chess.Normal})
		} else if chess.ExtractColour(target) != colour {
			moves = append(moves, chess.Move{From: from, To: to, Tag: chess.Capture})
		}
	}
	return moves
}

// sliderMoves walks each direction until the edge or a blocker, including
// the blocker's square when it holds an enemy piece.
func sliderMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := board.PieceAt(to)
			if target == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: to, Tag: chess.Normal})
				to, ok = to.Offset(dir[0], dir[1])
				continue
			}
			if chess.ExtractColour(target) != colour {
				moves = append(moves, chess.Move{From: from, To: to, Tag: chess.Capture})
			}
			break
		}
	}
	return moves
}

// kingMoves generates the eight single steps plus castling.
func kingMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			to, ok := from.Offset(df, dr)
			if !ok {
				continue
			}
			target := board.PieceAt(to)
			if target == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: to, Tag: chess.Normal})
			} else if chess.ExtractColour(target) != colour {
				moves = append(moves, chess.Move{From: from, To: to, Tag: chess.Capture})
			}
		}
	}
	return append(moves, castleMoves(board, from, colour)...)
}

// castleMoves generates castling for a king standing on its original
// square. The rights flags are authoritative for king and rook placement
// (the applier keeps them consistent with the board), so generation only
// verifies that the squares between king and rook are empty and that the
// king does not start on, cross, or land on an attacked square.
func castleMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	home := kingHome(colour)
	if from != home {
		return nil
	}

	var moves []chess.Move
	enemy := colour.Opposite()

	if board.Rights.KingSide(colour) &&
		filesEmpty(board, home.Rank, 5, 6) &&
		!anyFileAttacked(board, enemy, home.Rank, 4, 5, 6) {
		moves = append(moves, chess.Move{From: home, To: chess.Square{File: 6, Rank: home.Rank}, Tag: chess.CastleKingSide})
	}

	if board.Rights.QueenSide(colour) &&
		filesEmpty(board, home.Rank, 1, 2, 3) &&
		!anyFileAttacked(board, enemy, home.Rank, 4, 3, 2) {
		moves = append(moves, chess.Move{From: home, To: chess.Square{File: 2, Rank: home.Rank}, Tag: chess.CastleQueenSide})
	}

	return moves
}

// kingHome is the king's original square for a colour.
func kingHome(colour chess.Colour) chess.Square {
	if colour == chess.White {
		return chess.Square{File: 4, Rank: 0}
	}
	return chess.Square{File: 4, Rank: 7}
}

func filesEmpty(board *chess.Board, rank int, files ...int) bool {
	for _, file := range files {
		if board.PieceAt(chess.Square{File: file, Rank: rank}) != chess.Empty {
			return false
		}
	}
	return true
}

func anyFileAttacked(board *chess.Board, by chess.Colour, rank int, files ...int) bool {
	for _, file := range files {
		if IsAttacked(board, chess.Square{File: file, Rank: rank}, by) {
			return true
		}
	}
	return false
}
