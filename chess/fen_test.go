package chess

import "testing"

func TestLoadFENStartPosition(t *testing.T) {
	b := NewEmptyBoard()
	err := b.LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("LoadFEN returned error: %v", err)
	}
	want := NewBoard()
	if b.Pieces != want.Pieces {
		t.Fatalf("LoadFEN produced a different board than NewBoard")
	}
	if b.ToMove != White {
		t.Errorf("ToMove = %v, want White", b.ToMove)
	}
	for _, side := range []CastleSide{WhiteKingSide, WhiteQueenSide, BlackKingSide, BlackQueenSide} {
		if !b.CanCastle(side) {
			t.Errorf("CanCastle(%v) = false, want true", side)
		}
	}
}

func TestLoadFENEnPassant(t *testing.T) {
	b := NewEmptyBoard()
	err := b.LoadFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	if err != nil {
		t.Fatalf("LoadFEN returned error: %v", err)
	}
	if b.EPTarget != SquareFromAlgebraic("e6") {
		t.Errorf("EPTarget = %v, want e6", b.EPTarget)
	}
}

func TestLoadFENNoCastlingRights(t *testing.T) {
	b := NewEmptyBoard()
	err := b.LoadFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("LoadFEN returned error: %v", err)
	}
	for _, side := range []CastleSide{WhiteKingSide, WhiteQueenSide, BlackKingSide, BlackQueenSide} {
		if b.CanCastle(side) {
			t.Errorf("CanCastle(%v) = true, want false", side)
		}
	}
	if b.KingSquare(White) != SquareFromAlgebraic("e1") {
		t.Errorf("white king square = %v, want e1", b.KingSquare(White))
	}
	if b.KingSquare(Black) != SquareFromAlgebraic("e8") {
		t.Errorf("black king square = %v, want e8", b.KingSquare(Black))
	}
}

func TestLoadFENRejectsMalformed(t *testing.T) {
	b := NewEmptyBoard()
	if err := b.LoadFEN("not a fen"); err == nil {
		t.Fatal("expected error for malformed FEN")
	}
	if err := b.LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"); err == nil {
		t.Fatal("expected error for invalid side to move")
	}
}
