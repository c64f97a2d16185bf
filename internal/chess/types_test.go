package chess

import "testing"

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black {
		t.Errorf("White.Opposite() = %v; want Black", White.Opposite())
	}
	if Black.Opposite() != White {
		t.Errorf("Black.Opposite() = %v; want White", Black.Opposite())
	}
}

func TestColourOffset(t *testing.T) {
	if got := ColourOffset(White); got != 1 {
		t.Errorf("ColourOffset(White) = %d; want 1", got)
	}
	if got := ColourOffset(Black); got != -1 {
		t.Errorf("ColourOffset(Black) = %d; want -1", got)
	}
}

func TestColouredPieceRoundTrip(t *testing.T) {
	kinds := []Piece{Pawn, Knight, Bishop, Rook, Queen, King}
	colours := []Colour{White, Black}

	for _, colour := range colours {
		for _, kind := range kinds {
			cp := MakeColouredPiece(colour, kind)
			if got := ExtractColour(cp); got != colour {
				t.Errorf("ExtractColour(%v %v) = %v; want %v", colour, kind, got, colour)
			}
			if got := ExtractPiece(cp); got != kind {
				t.Errorf("ExtractPiece(%v %v) = %v; want %v", colour, kind, got, kind)
			}
		}
	}

	if ExtractPiece(Empty) != Empty {
		t.Errorf("ExtractPiece(Empty) = %v; want Empty", ExtractPiece(Empty))
	}
	if W(Pawn) == B(Pawn) {
		t.Error("W(Pawn) and B(Pawn) must differ")
	}
}

func TestPieceLetters(t *testing.T) {
	tests := []struct {
		kind   Piece
		letter byte
	}{
		{Pawn, 'P'},
		{Knight, 'N'},
		{Bishop, 'B'},
		{Rook, 'R'},
		{Queen, 'Q'},
		{King, 'K'},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Letter(); got != tt.letter {
				t.Errorf("Letter() = %c; want %c", got, tt.letter)
			}
			upper, ok := PieceFromLetter(tt.letter)
			if !ok || upper != tt.kind {
				t.Errorf("PieceFromLetter(%c) = %v, %v; want %v, true", tt.letter, upper, ok, tt.kind)
			}
			lower, ok := PieceFromLetter(tt.letter | 0x20)
			if !ok || lower != tt.kind {
				t.Errorf("PieceFromLetter(%c) = %v, %v; want %v, true", tt.letter|0x20, lower, ok, tt.kind)
			}
		})
	}

	if _, ok := PieceFromLetter('x'); ok {
		t.Error("PieceFromLetter('x') reported ok; want false")
	}
}

func TestCastlingRights(t *testing.T) {
	t.Run("initial rights", func(t *testing.T) {
		cr := AllCastlingRights()
		if !cr.Any() {
			t.Error("AllCastlingRights().Any() = false")
		}
		if !cr.KingSide(White) || !cr.QueenSide(White) || !cr.KingSide(Black) || !cr.QueenSide(Black) {
			t.Errorf("AllCastlingRights() = %+v; want all true", cr)
		}
		if got := cr.String(); got != "KQkq" {
			t.Errorf("String() = %q; want %q", got, "KQkq")
		}
	})

	t.Run("clear colour", func(t *testing.T) {
		cr := AllCastlingRights()
		cr.ClearColour(White)
		if cr.KingSide(White) || cr.QueenSide(White) {
			t.Errorf("white rights remain after ClearColour: %+v", cr)
		}
		if !cr.KingSide(Black) || !cr.QueenSide(Black) {
			t.Errorf("black rights lost by ClearColour(White): %+v", cr)
		}
		if got := cr.String(); got != "kq" {
			t.Errorf("String() = %q; want %q", got, "kq")
		}
	})

	t.Run("clear single wings", func(t *testing.T) {
		cr := AllCastlingRights()
		cr.ClearKingSide(White)
		cr.ClearQueenSide(Black)
		if got := cr.String(); got != "Qk" {
			t.Errorf("String() = %q; want %q", got, "Qk")
		}
	})

	t.Run("no rights", func(t *testing.T) {
		var cr CastlingRights
		if cr.Any() {
			t.Error("zero rights report Any() = true")
		}
		if got := cr.String(); got != "-" {
			t.Errorf("String() = %q; want %q", got, "-")
		}
	})
}

func TestGameStatusTerminal(t *testing.T) {
	tests := []struct {
		status   GameStatus
		terminal bool
	}{
		{GameStatus{Kind: StatusInProgress}, false},
		{GameStatus{Kind: StatusCheck, Colour: White}, false},
		{GameStatus{Kind: StatusCheckmate, Colour: Black}, true},
		{GameStatus{Kind: StatusStalemate}, true},
		{GameStatus{Kind: StatusDrawOther}, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.Kind.String(), func(t *testing.T) {
			if got := tt.status.Terminal(); got != tt.terminal {
				t.Errorf("Terminal() = %v; want %v", got, tt.terminal)
			}
		})
	}
}

func TestGameStatusString(t *testing.T) {
	tests := []struct {
		status GameStatus
		want   string
	}{
		{GameStatus{Kind: StatusInProgress}, "in progress"},
		{GameStatus{Kind: StatusCheck, Colour: White}, "White in check"},
		{GameStatus{Kind: StatusCheck, Colour: Black}, "Black in check"},
		{GameStatus{Kind: StatusCheckmate, Colour: White}, "checkmate, White loses"},
		{GameStatus{Kind: StatusStalemate}, "stalemate"},
		{GameStatus{Kind: StatusDrawOther}, "draw"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want string
	}{
		{
			name: "pawn push",
			move: Move{From: Square{File: 4, Rank: 1}, To: Square{File: 4, Rank: 3}},
			want: "e2e4",
		},
		{
			name: "quiet promotion",
			move: Move{From: Square{File: 4, Rank: 6}, To: Square{File: 4, Rank: 7}, Promotion: Queen},
			want: "e7e8q",
		},
		{
			name: "capture promotion to knight",
			move: Move{From: Square{File: 1, Rank: 1}, To: Square{File: 0, Rank: 0}, Promotion: Knight, Tag: PromotionCapture},
			want: "b2a1n",
		},
		{
			name: "king-side castle renders king movement",
			move: Move{From: Square{File: 4, Rank: 0}, To: Square{File: 6, Rank: 0}, Tag: CastleKingSide},
			want: "e1g1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestMovePredicates(t *testing.T) {
	tests := []struct {
		name        string
		move        Move
		isCapture   bool
		isCastle    bool
		isPromotion bool
	}{
		{"quiet move", Move{Tag: Normal}, false, false, false},
		{"capture", Move{Tag: Capture}, true, false, false},
		{"en passant", Move{Tag: EnPassantCapture}, true, false, false},
		{"king-side castle", Move{Tag: CastleKingSide}, false, true, false},
		{"queen-side castle", Move{Tag: CastleQueenSide}, false, true, false},
		{"quiet promotion", Move{Tag: Normal, Promotion: Queen}, false, false, true},
		{"capture promotion", Move{Tag: PromotionCapture, Promotion: Rook}, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.IsCapture(); got != tt.isCapture {
				t.Errorf("IsCapture() = %v; want %v", got, tt.isCapture)
			}
			if got := tt.move.IsCastle(); got != tt.isCastle {
				t.Errorf("IsCastle() = %v; want %v", got, tt.isCastle)
			}
			if got := tt.move.IsPromotion(); got != tt.isPromotion {
				t.Errorf("IsPromotion() = %v; want %v", got, tt.isPromotion)
			}
		})
	}
}
