package chess

// Board represents a chess position: piece placement, side to move,
// castling rights, the en-passant target, and the move clocks. It is a
// pure data container; movement rules and legality live in the engine
// package and never here.
type Board struct {
	// The board squares, indexed squares[file][rank], each holding Empty
	// or a coloured piece.
	squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Castling permissions for both sides.
	Rights CastlingRights

	// Is an en-passant capture possible? If so EPSquare holds the square
	// skipped by the two-square pawn advance of the previous move.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The full move number, starting at 1 and incremented after Black moves.
	FullmoveNumber uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:         White,
		FullmoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position,
// replacing whatever the board held.
func (b *Board) SetupInitialPosition() {
	b.squares = [BoardSize][BoardSize]Piece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.squares[file][0] = W(backRank[file])
		b.squares[file][1] = W(Pawn)
		b.squares[file][6] = B(Pawn)
		b.squares[file][7] = B(backRank[file])
	}

	b.ToMove = White
	b.Rights = AllCastlingRights()
	b.EnPassant = false
	b.EPSquare = Square{}
	b.HalfmoveClock = 0
	b.FullmoveNumber = 1
}

// PieceAt returns the piece on a square, or Empty when the square is
// vacant or invalid.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.squares[sq.File][sq.Rank]
}

// SetPiece places a piece (or Empty) on a square. Invalid squares are
// ignored.
func (b *Board) SetPiece(sq Square, piece Piece) {
	if !sq.Valid() {
		return
	}
	b.squares[sq.File][sq.Rank] = piece
}

// ToggleSideToMove flips the side to move.
func (b *Board) ToggleSideToMove() {
	b.ToMove = b.ToMove.Opposite()
}

// EnPassantTarget returns the en-passant target square when one is set.
func (b *Board) EnPassantTarget() (Square, bool) {
	return b.EPSquare, b.EnPassant
}

// SetEnPassantTarget records the square skipped by a two-square pawn advance.
func (b *Board) SetEnPassantTarget(sq Square) {
	b.EnPassant = true
	b.EPSquare = sq
}

// ClearEnPassantTarget removes the en-passant target.
func (b *Board) ClearEnPassantTarget() {
	b.EnPassant = false
	b.EPSquare = Square{}
}

// Copy creates a deep copy of the board. The board holds no reference
// types, so a value copy is a full copy.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// BoardState captures all mutable board state for save/restore operations.
// This is cheaper than Copy() when the board is temporarily modified and
// then restored (speculative move application, undo).
type BoardState struct {
	board Board
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{board: *b}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	*b = s.board
}
