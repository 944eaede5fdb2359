package engine

import (
	"testing"

	"github.com/lgbarn/pgn-core/chess"
)

func TestApplyUnmakeRestoresBoard(t *testing.T) {
	b := chess.NewBoard()
	before := b.Pieces
	beforeZobrist := b.Zobrist

	var a Applier
	move := chess.Move{
		Origin:    chess.SquareFromAlgebraic("e2"),
		Dest:      chess.SquareFromAlgebraic("e4"),
		Kind:      chess.Normal,
		MovedKind: chess.Pawn,
	}
	a.Apply(b, move)
	if b.Pieces == before {
		t.Fatal("expected board to change after Apply")
	}
	a.Unmake(b)
	if b.Pieces != before {
		t.Fatal("Unmake did not restore the original piece layout")
	}
	if b.Zobrist != beforeZobrist {
		t.Fatalf("Unmake did not restore the original Zobrist key: got %x, want %x", b.Zobrist, beforeZobrist)
	}
	if b.ToMove != chess.White {
		t.Fatalf("ToMove after unmake = %v, want White", b.ToMove)
	}
}

func TestApplyIncrementalZobristMatchesRecompute(t *testing.T) {
	b := chess.NewBoard()
	var a Applier
	a.Apply(b, chess.Move{
		Origin:    chess.SquareFromAlgebraic("e2"),
		Dest:      chess.SquareFromAlgebraic("e4"),
		Kind:      chess.Normal,
		MovedKind: chess.Pawn,
	})
	if got, want := b.Zobrist, chess.ComputeZobrist(b); got != want {
		t.Fatalf("incremental zobrist = %x, want recomputed %x", got, want)
	}
}

func TestApplyCastleMovesRook(t *testing.T) {
	b := chess.NewEmptyBoard()
	if err := b.LoadFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	var a Applier
	move := chess.Move{
		Origin:    chess.SquareFromAlgebraic("e1"),
		Dest:      chess.SquareFromAlgebraic("g1"),
		Kind:      chess.Castle,
		MovedKind: chess.King,
	}
	a.Apply(b, move)
	if got := b.Get(chess.SquareFromAlgebraic("f1")); got != chess.MakePiece(chess.White, chess.Rook) {
		t.Fatalf("f1 after short castle = %v, want white rook", got)
	}
	if got := b.Get(chess.SquareFromAlgebraic("h1")); !got.IsEmpty() {
		t.Fatalf("h1 after short castle = %v, want empty", got)
	}
	if !b.Castled[0] {
		t.Fatal("expected white's Castled flag to be set")
	}

	a.Unmake(b)
	if got := b.Get(chess.SquareFromAlgebraic("h1")); got != chess.MakePiece(chess.White, chess.Rook) {
		t.Fatalf("h1 after unmaking castle = %v, want white rook", got)
	}
	if b.Castled[0] {
		t.Fatal("expected white's Castled flag to be cleared after unmake")
	}
}

func TestApplyPromotion(t *testing.T) {
	b := chess.NewEmptyBoard()
	if err := b.LoadFEN("k7/4P3/8/8/8/8/8/4K3 w - - 0 1"); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	var a Applier
	move := chess.Move{
		Origin:    chess.SquareFromAlgebraic("e7"),
		Dest:      chess.SquareFromAlgebraic("e8"),
		Kind:      chess.PromoteQueen,
		MovedKind: chess.Pawn,
	}
	a.Apply(b, move)
	if got := b.Get(chess.SquareFromAlgebraic("e8")); got != chess.MakePiece(chess.White, chess.Queen) {
		t.Fatalf("e8 after promotion = %v, want white queen", got)
	}
	a.Unmake(b)
	if got := b.Get(chess.SquareFromAlgebraic("e7")); got != chess.MakePiece(chess.White, chess.Pawn) {
		t.Fatalf("e7 after unmaking promotion = %v, want white pawn", got)
	}
	if got := b.Get(chess.SquareFromAlgebraic("e8")); !got.IsEmpty() {
		t.Fatalf("e8 after unmaking promotion = %v, want empty", got)
	}
}
