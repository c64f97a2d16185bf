// Package chess provides the core data model: colours, pieces, squares,
// moves, castling rights, game status, and the board container.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Piece represents a chess piece kind. A board square holds either Empty or
// a coloured piece built with MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter returns the piece kind for a FEN/UCI letter, upper or
// lower case. The second result reports whether the letter named a kind.
func PieceFromLetter(letter byte) (Piece, bool) {
	switch letter {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return Empty, false
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece kind from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// MoveTag categorizes a move for application. Tags are derived at
// generation time and must stay consistent with the board the move was
// generated for. A quiet promotion carries Normal with Move.Promotion set;
// a capturing promotion carries PromotionCapture.
type MoveTag int

const (
	Normal MoveTag = iota
	Capture
	EnPassantCapture
	CastleKingSide
	CastleQueenSide
	PromotionCapture
)

// String returns the string representation of a move tag.
func (t MoveTag) String() string {
	names := []string{"Normal", "Capture", "EnPassantCapture", "CastleKingSide", "CastleQueenSide", "PromotionCapture"}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// CastlingRights tracks the four castling permissions. A flag is cleared
// forever once the king or the relevant rook leaves (or is captured on)
// its original square.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// AllCastlingRights returns the rights of the standard initial position.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingSide:  true,
		WhiteQueenSide: true,
		BlackKingSide:  true,
		BlackQueenSide: true,
	}
}

// Any reports whether any of the four rights remains.
func (cr CastlingRights) Any() bool {
	return cr.WhiteKingSide || cr.WhiteQueenSide || cr.BlackKingSide || cr.BlackQueenSide
}

// KingSide reports the king-side right for a colour.
func (cr CastlingRights) KingSide(colour Colour) bool {
	if colour == White {
		return cr.WhiteKingSide
	}
	return cr.BlackKingSide
}

// QueenSide reports the queen-side right for a colour.
func (cr CastlingRights) QueenSide(colour Colour) bool {
	if colour == White {
		return cr.WhiteQueenSide
	}
	return cr.BlackQueenSide
}

// ClearKingSide removes the king-side right for a colour.
func (cr *CastlingRights) ClearKingSide(colour Colour) {
	if colour == White {
		cr.WhiteKingSide = false
	} else {
		cr.BlackKingSide = false
	}
}

// ClearQueenSide removes the queen-side right for a colour.
func (cr *CastlingRights) ClearQueenSide(colour Colour) {
	if colour == White {
		cr.WhiteQueenSide = false
	} else {
		cr.BlackQueenSide = false
	}
}

// ClearColour removes both rights for a colour.
func (cr *CastlingRights) ClearColour(colour Colour) {
	cr.ClearKingSide(colour)
	cr.ClearQueenSide(colour)
}

// String returns the FEN rendering of the rights ("KQkq", "-" when none).
func (cr CastlingRights) String() string {
	if !cr.Any() {
		return "-"
	}
	s := make([]byte, 0, 4)
	if cr.WhiteKingSide {
		s = append(s, 'K')
	}
	if cr.WhiteQueenSide {
		s = append(s, 'Q')
	}
	if cr.BlackKingSide {
		s = append(s, 'k')
	}
	if cr.BlackQueenSide {
		s = append(s, 'q')
	}
	return string(s)
}

// StatusKind enumerates the game status variants.
type StatusKind int

const (
	StatusInProgress StatusKind = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
	// StatusDrawOther is reserved for draw conditions outside the current
	// rule set (insufficient material, repetition, fifty-move rule). The
	// engine never produces it.
	StatusDrawOther
)

// String returns the string representation of a status kind.
func (k StatusKind) String() string {
	names := []string{"InProgress", "Check", "Checkmate", "Stalemate", "DrawOther"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// GameStatus is the adjudicated state of a game. Colour is the side in
// check for StatusCheck and the side with no legal reply (the loser) for
// StatusCheckmate; it carries no meaning for the other kinds.
type GameStatus struct {
	Kind   StatusKind
	Colour Colour
}

// Terminal reports whether the status ends the game. Further moves are
// rejected until the game is replaced by a fresh one.
func (s GameStatus) Terminal() bool {
	switch s.Kind {
	case StatusCheckmate, StatusStalemate, StatusDrawOther:
		return true
	}
	return false
}

// String returns a human-readable rendering of the status.
func (s GameStatus) String() string {
	switch s.Kind {
	case StatusCheck:
		return s.Colour.String() + " in check"
	case StatusCheckmate:
		return "checkmate, " + s.Colour.String() + " loses"
	case StatusStalemate:
		return "stalemate"
	case StatusDrawOther:
		return "draw"
	}
	return "in progress"
}
