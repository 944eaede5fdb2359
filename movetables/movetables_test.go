package movetables

import (
	"testing"

	"github.com/lgbarn/pgn-core/chess"
)

func TestKnightMovesFromCorner(t *testing.T) {
	a1 := chess.SquareFromAlgebraic("a1")
	moves := Default.KnightMoves[a1]
	if len(moves) != 2 {
		t.Fatalf("knight moves from a1 = %d, want 2", len(moves))
	}
}

func TestKnightMovesFromCenter(t *testing.T) {
	d4 := chess.SquareFromAlgebraic("d4")
	moves := Default.KnightMoves[d4]
	if len(moves) != 8 {
		t.Fatalf("knight moves from d4 = %d, want 8", len(moves))
	}
}

func TestKingMovesFromCorner(t *testing.T) {
	h8 := chess.SquareFromAlgebraic("h8")
	moves := Default.KingMoves[h8]
	if len(moves) != 3 {
		t.Fatalf("king moves from h8 = %d, want 3", len(moves))
	}
}

func TestDiagonalRayLengthFromCorner(t *testing.T) {
	a1 := chess.SquareFromAlgebraic("a1")
	rays := Default.DiagonalRays[a1]
	total := 0
	for _, ray := range rays {
		total += len(ray)
	}
	if total != 7 {
		t.Fatalf("total diagonal squares from a1 = %d, want 7", total)
	}
}

func TestStraightRayLengthFromCenter(t *testing.T) {
	d4 := chess.SquareFromAlgebraic("d4")
	rays := Default.StraightRays[d4]
	total := 0
	for _, ray := range rays {
		total += len(ray)
	}
	if total != 14 {
		t.Fatalf("total straight squares from d4 = %d, want 14", total)
	}
}

func TestPawnAttackersSymmetry(t *testing.T) {
	e4 := chess.SquareFromAlgebraic("e4")
	if len(Default.WhitePawnAttackers[e4]) != 2 {
		t.Fatalf("white pawn attackers of e4 = %d, want 2", len(Default.WhitePawnAttackers[e4]))
	}
	if len(Default.BlackPawnAttackers[e4]) != 2 {
		t.Fatalf("black pawn attackers of e4 = %d, want 2", len(Default.BlackPawnAttackers[e4]))
	}
}
