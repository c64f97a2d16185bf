package chess

// Move describes one move of one piece. Promotion holds the chosen piece
// kind (uncoloured) and is Empty for non-promoting moves. The tag is
// derived by the move generator and keeps the applier branch-free: it must
// always be consistent with the board the move was generated for.
type Move struct {
	From      Square
	To        Square
	Promotion Piece
	Tag       MoveTag
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	switch m.Tag {
	case Capture, EnPassantCapture, PromotionCapture:
		return true
	default:
		return false
	}
}

// IsCastle reports whether the move is a castle on either wing.
func (m Move) IsCastle() bool {
	switch m.Tag {
	case CastleKingSide, CastleQueenSide:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// String renders the move in UCI form: source and destination squares with
// a lowercase promotion letter appended when promoting ("e2e4", "e7e8q").
// Castles render as the king's own movement ("e1g1").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(m.Promotion.Letter() | 0x20)
	}
	return s
}
