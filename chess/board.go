package chess

// Board is the mutable chess position: the piece array, per-encoding piece
// counts, king locations, castling/en-passant state, the incrementally
// maintained Zobrist key, and an embedded MoveHistory used for repetition
// and fifty-move detection. It owns all of this state exclusively; nothing
// else mutates a Board except through the engine's apply/unmake operations.
type Board struct {
	Pieces [64]Piece

	// PieceCounts is indexed by the Piece encoding (color bit + kind) and
	// used to cheaply test for insufficient mating material.
	PieceCounts [16]int

	WhiteKingSquare Square
	BlackKingSquare Square

	// RookMoveCount and KingMoveCount are zero while the corresponding
	// piece has never moved; a non-zero count extinguishes that piece's
	// contribution to castling rights. Indexed by CastleSide.
	RookMoveCount [4]int // [WhiteKingSide, WhiteQueenSide, BlackKingSide, BlackQueenSide]
	KingMoveCount [2]int // [White, Black]

	// Castled is set once a side has castled; castling then ceases for that
	// side. Unmaking the castling move restores the previous value.
	Castled [2]bool

	// EPTarget is the square behind a pawn that just advanced two ranks, or
	// NoSquare if there is none. epStack remembers the prior value of
	// EPTarget across Apply/Unmake so it can be restored exactly.
	EPTarget Square
	epStack  []Square

	Zobrist uint64
	ToMove  Color

	History MoveHistory
}

// CastleSide indexes RookMoveCount and the four fixed castling square sets.
type CastleSide int

const (
	WhiteKingSide CastleSide = iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

// CastleGeometry describes the fixed squares involved in one of the four
// castling variants. The literal square numbers are load-bearing; see
// DESIGN.md for why the four CastleSide constants are labeled by real
// chess meaning (O-O/O-O-O) rather than by which side of the board each
// square block sits on.
type CastleGeometry struct {
	RookFrom, RookTo Square
	KingFrom, KingTo Square
	Empties          []Square
	CrossingSquares  []Square // king's origin and the square it crosses, both must be unattacked
}

// CastleGeometries holds the fixed board geometry for all four castling
// variants, indexed by CastleSide.
var CastleGeometries = [4]CastleGeometry{
	WhiteKingSide: {
		RookFrom: 0, RookTo: 2,
		KingFrom: 3, KingTo: 1,
		Empties:         []Square{1, 2},
		CrossingSquares: []Square{2, 3},
	},
	WhiteQueenSide: {
		RookFrom: 7, RookTo: 4,
		KingFrom: 3, KingTo: 5,
		Empties:         []Square{4, 5, 6},
		CrossingSquares: []Square{3, 4},
	},
	BlackKingSide: {
		RookFrom: 56, RookTo: 58,
		KingFrom: 59, KingTo: 57,
		Empties:         []Square{57, 58},
		CrossingSquares: []Square{58, 59},
	},
	BlackQueenSide: {
		RookFrom: 63, RookTo: 60,
		KingFrom: 59, KingTo: 61,
		Empties:         []Square{60, 61, 62},
		CrossingSquares: []Square{59, 60},
	},
}

// NewEmptyBoard returns a Board with every square empty. Callers typically
// follow this with SetStartPosition or a FEN load.
func NewEmptyBoard() *Board {
	b := &Board{ToMove: White, EPTarget: NoSquare}
	for i := range b.Pieces {
		b.Pieces[i] = EmptySquare
	}
	b.PieceCounts[EmptySquare] = 64
	b.History.Reset(b)
	return b
}

// NewBoard returns a Board set up in the standard starting position.
func NewBoard() *Board {
	b := NewEmptyBoard()
	b.SetStartPosition()
	return b
}

// backRank is the piece order for rank 1/8, indexed by file 'a'..'h'.
var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetStartPosition resets b to the standard chess starting position.
func (b *Board) SetStartPosition() {
	for i := range b.Pieces {
		b.Pieces[i] = EmptySquare
	}
	for i := range b.PieceCounts {
		b.PieceCounts[i] = 0
	}
	for file := 0; file < 8; file++ {
		col := byte('a' + file)
		kind := backRank[col-'a']
		b.place(SquareFromFileRank(7-file, 0), MakePiece(White, kind))
		b.place(SquareFromFileRank(7-file, 1), MakePiece(White, Pawn))
		b.place(SquareFromFileRank(7-file, 6), MakePiece(Black, Pawn))
		b.place(SquareFromFileRank(7-file, 7), MakePiece(Black, kind))
	}
	b.PieceCounts[EmptySquare] = 64 - 32

	b.WhiteKingSquare = SquareFromAlgebraic("e1")
	b.BlackKingSquare = SquareFromAlgebraic("e8")
	b.RookMoveCount = [4]int{}
	b.KingMoveCount = [2]int{}
	b.Castled = [2]bool{}
	b.EPTarget = NoSquare
	b.epStack = nil
	b.ToMove = White
	b.Zobrist = ComputeZobrist(b)
	b.History.Reset(b)
}

// place sets sq to p, keeping PieceCounts consistent. It is used during
// board setup; Apply/Unmake go through engine.setSquare instead so they can
// also maintain the Zobrist key.
func (b *Board) place(sq Square, p Piece) {
	old := b.Pieces[sq]
	b.PieceCounts[old]--
	b.Pieces[sq] = p
	b.PieceCounts[p]++
}

// Get returns the piece occupying sq.
func (b *Board) Get(sq Square) Piece { return b.Pieces[sq] }

// SetSquare places p on sq, maintaining PieceCounts. It does not touch the
// Zobrist key or king-square cache; callers mutating a live board should go
// through the engine's Applier (Apply/Unmake), which keeps those in sync.
func (b *Board) SetSquare(sq Square, p Piece) {
	b.place(sq, p)
}

// KingSquare returns the king square for c.
func (b *Board) KingSquare(c Color) Square {
	if c == White {
		return b.WhiteKingSquare
	}
	return b.BlackKingSquare
}

// SetKingSquare updates the cached king square for c.
func (b *Board) SetKingSquare(c Color, sq Square) {
	if c == White {
		b.WhiteKingSquare = sq
	} else {
		b.BlackKingSquare = sq
	}
}

// CanCastle reports whether side still has the right to castle: neither the
// king nor that rook has moved, and that side has not already castled. It
// does not check for intervening pieces or attacked squares; that is the
// move generator's job.
func (b *Board) CanCastle(side CastleSide) bool {
	colorIdx := 0
	if side == BlackKingSide || side == BlackQueenSide {
		colorIdx = 1
	}
	if b.Castled[colorIdx] {
		return false
	}
	if b.KingMoveCount[colorIdx] != 0 {
		return false
	}
	return b.RookMoveCount[side] == 0
}

// PushEPTarget saves the current en-passant target so it can be restored by
// PopEPTarget during unmake, then clears it. Apply calls this unconditionally
// at the start of every move.
func (b *Board) PushEPTarget() {
	b.epStack = append(b.epStack, b.EPTarget)
	b.EPTarget = NoSquare
}

// PopEPTarget restores the en-passant target saved by the most recent
// PushEPTarget call.
func (b *Board) PopEPTarget() {
	n := len(b.epStack)
	b.EPTarget = b.epStack[n-1]
	b.epStack = b.epStack[:n-1]
}

// Clone returns a deep copy of b, including its move history. The move
// generator's self-check probe does not use Clone (it plays and unmakes
// candidates in place); Clone is for callers that want to explore a
// position without disturbing the original.
func (b *Board) Clone() *Board {
	cp := *b
	cp.epStack = append([]Square(nil), b.epStack...)
	cp.History = b.History.Clone()
	return &cp
}
