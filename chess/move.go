package chess

// MoveKind categorizes a move beyond its origin/destination squares.
type MoveKind int

const (
	Normal MoveKind = iota
	PromoteQueen
	PromoteRook
	PromoteBishop
	PromoteKnight
	Castle
	EnPassant
)

// IsPromotion reports whether k is one of the four promotion kinds.
func (k MoveKind) IsPromotion() bool {
	switch k {
	case PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight:
		return true
	default:
		return false
	}
}

// PromotedKind returns the PieceKind a promotion move resolves to, or None
// if k is not a promotion.
func (k MoveKind) PromotedKind() PieceKind {
	switch k {
	case PromoteQueen:
		return Queen
	case PromoteRook:
		return Rook
	case PromoteBishop:
		return Bishop
	case PromoteKnight:
		return Knight
	default:
		return None
	}
}

// MoveFlags are bit flags carried alongside a MoveKind.
type MoveFlags uint8

// PieceEaten is set by the move generator when the destination square is
// occupied by an enemy piece, or the move is an en-passant capture.
const PieceEaten MoveFlags = 1 << 0

// Move is a single chess move: an origin and destination square, its kind,
// capture flag, and the piece kind that moved (kept for SAN/FEN display
// since by the time a move is applied the board no longer shows what piece
// started the trip, e.g. after a promotion).
type Move struct {
	Origin    Square
	Dest      Square
	Kind      MoveKind
	Flags     MoveFlags
	MovedKind PieceKind
}

// IsCapture reports whether this move captures a piece.
func (m Move) IsCapture() bool {
	return m.Flags&PieceEaten != 0
}

// Equal reports whether m and o describe the same move (ignoring MovedKind,
// which is display metadata derived from the board, not part of the move's
// identity).
func (m Move) Equal(o Move) bool {
	return m.Origin == o.Origin && m.Dest == o.Dest && m.Kind == o.Kind
}
