// Package engine provides move generation, legality checking, move
// application, and game state adjudication over the chess data model.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"chessd/internal/chess"
	"chessd/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FENLetterToPiece converts a FEN letter to a coloured piece: uppercase is
// White, lowercase is Black. The second result reports whether the letter
// named a piece.
func FENLetterToPiece(c byte) (chess.Piece, bool) {
	kind, ok := chess.PieceFromLetter(c)
	if !ok {
		return chess.Empty, false
	}
	colour := chess.White
	if unicode.IsLower(rune(c)) {
		colour = chess.Black
	}
	return chess.MakeColouredPiece(colour, kind), true
}

// PieceToFENLetter converts a coloured piece to its FEN letter: uppercase
// for White, lowercase for Black.
func PieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string. Missing trailing
// fields take defaults: White to move, no castling rights, no en-passant
// target, zeroed clocks.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	parseClocks(board, parts)

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.BoardSize - 1
	file := 0

	for _, c := range positions {
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			piece, ok := FENLetterToPiece(byte(c))
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize || rank < 0 {
				return fmt.Errorf("piece placement out of bounds: %w", errors.ErrInvalidFEN)
			}
			board.SetPiece(chess.Square{File: file, Rank: rank}, piece)
			file++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.Rights.WhiteKingSide = true
		case 'Q':
			board.Rights.WhiteQueenSide = true
		case 'k':
			board.Rights.BlackKingSide = true
		case 'q':
			board.Rights.BlackQueenSide = true
		default:
			return fmt.Errorf("invalid castling flag: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("invalid en-passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	board.SetEnPassantTarget(sq)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) {
	if len(parts) >= 5 {
		fmt.Sscanf(parts[4], "%d", &board.HalfmoveClock)
	}
	if len(parts) >= 6 {
		fmt.Sscanf(parts[5], "%d", &board.FullmoveNumber)
	}
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(board.Rights.String())
	sb.WriteByte(' ')
	if target, ok := board.EnPassantTarget(); ok {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.FullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.PieceAt(chess.Square{File: file, Rank: rank})
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
