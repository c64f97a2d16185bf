package chess

import (
	"fmt"

	"chessd/internal/errors"
)

// Square identifies a board coordinate. File 0 is the a-file, rank 0 is
// White's back rank, both run 0 through 7. Squares produced by NewSquare,
// ParseSquare, or Offset always satisfy the bounds invariant; out-of-bounds
// coordinates are rejected at construction rather than checked at use.
type Square struct {
	File int
	Rank int
}

// NewSquare builds a square from file and rank indices.
func NewSquare(file, rank int) (Square, error) {
	sq := Square{File: file, Rank: rank}
	if !sq.Valid() {
		return Square{}, errors.Wrapf(errors.ErrOutOfBounds, "file %d, rank %d", file, rank)
	}
	return sq, nil
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, errors.Wrapf(errors.ErrOutOfBounds, "square %q", s)
	}
	sq := Square{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}
	if !sq.Valid() {
		return Square{}, errors.Wrapf(errors.ErrOutOfBounds, "square %q", s)
	}
	return sq, nil
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square displaced by df files and dr ranks. The second
// result is false when the displacement leaves the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	t := Square{File: s.File + df, Rank: s.Rank + dr}
	return t, t.Valid()
}

// String renders algebraic notation ("a1" through "h8").
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("invalid(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}
