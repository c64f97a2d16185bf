package engine

import (
	"fmt"
	"strings"

	"chessd/internal/chess"
	"chessd/internal/errors"
)

// BoardToGrid renders the board as a human-readable text grid, rank 8
// first, with rank labels on the left and file labels underneath. Empty
// squares print as dots.
func BoardToGrid(board *chess.Board) string {
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			piece := board.PieceAt(chess.Square{File: file, Rank: rank})
			if piece == chess.Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(PieceToFENLetter(piece))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")

	return sb.String()
}

// NewBoardFromGrid parses a text grid in the layout BoardToGrid produces
// back into a board. Rank labels and the file footer are optional; only
// the eight piece rows matter. The result is White to move with no
// castling rights and no en-passant target, so positions that depend on
// either are better expressed as FEN.
func NewBoardFromGrid(grid string) (*chess.Board, error) {
	board := chess.NewBoard()
	rank := chess.BoardSize - 1

	for _, line := range strings.Split(grid, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "a" {
			// File footer.
			continue
		}
		if len(fields[0]) == 1 && fields[0][0] >= '1' && fields[0][0] <= '8' {
			fields = fields[1:]
		}
		if rank < 0 {
			return nil, fmt.Errorf("grid has more than %d ranks: %w", chess.BoardSize, errors.ErrInvalidGrid)
		}
		if len(fields) != chess.BoardSize {
			return nil, fmt.Errorf("grid row %q needs %d squares: %w", line, chess.BoardSize, errors.ErrInvalidGrid)
		}
		for file, cell := range fields {
			if err := setGridCell(board, file, rank, cell); err != nil {
				return nil, err
			}
		}
		rank--
	}

	if rank >= 0 {
		return nil, fmt.Errorf("grid has %d of %d ranks: %w", chess.BoardSize-1-rank, chess.BoardSize, errors.ErrInvalidGrid)
	}
	return board, nil
}

func setGridCell(board *chess.Board, file, rank int, cell string) error {
	if cell == "." {
		return nil
	}
	if len(cell) != 1 {
		return fmt.Errorf("invalid grid cell %q: %w", cell, errors.ErrInvalidGrid)
	}
	piece, ok := FENLetterToPiece(cell[0])
	if !ok {
		return fmt.Errorf("invalid grid cell %q: %w", cell, errors.ErrInvalidGrid)
	}
	board.SetPiece(chess.Square{File: file, Rank: rank}, piece)
	return nil
}
