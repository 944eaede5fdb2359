package chess

import "testing"

func TestAlgebraicRoundTrip(t *testing.T) {
	for _, alg := range []string{"a1", "h1", "a8", "h8", "e4", "d5", "g7"} {
		sq := SquareFromAlgebraic(alg)
		if got := AlgebraicOfSquare(sq); got != alg {
			t.Errorf("AlgebraicOfSquare(SquareFromAlgebraic(%q)) = %q, want %q", alg, got, alg)
		}
	}
}

func TestSquareFromFileRankRoundTrip(t *testing.T) {
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := SquareFromFileRank(file, rank)
			if sq.File() != file || sq.RankIndex() != rank {
				t.Errorf("SquareFromFileRank(%d,%d) round-trip got file=%d rank=%d", file, rank, sq.File(), sq.RankIndex())
			}
		}
	}
}

func TestSquareFromAlgebraicInvalid(t *testing.T) {
	for _, s := range []string{"", "a", "i1", "a9", "abc"} {
		if got := SquareFromAlgebraic(s); got != -1 {
			t.Errorf("SquareFromAlgebraic(%q) = %d, want -1", s, got)
		}
	}
}

func TestOnBoard(t *testing.T) {
	if !OnBoard(0, 0) || !OnBoard(7, 7) {
		t.Fatal("expected corners on board")
	}
	if OnBoard(-1, 0) || OnBoard(8, 0) || OnBoard(0, -1) || OnBoard(0, 8) {
		t.Fatal("expected out-of-range coordinates to be off board")
	}
}
