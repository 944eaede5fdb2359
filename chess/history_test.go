package chess

import "testing"

func TestHistoryResetStartsAtOnePly(t *testing.T) {
	b := NewBoard()
	if got := b.History.Len(); got != 1 {
		t.Fatalf("History.Len() after Reset = %d, want 1", got)
	}
}

func TestAddCurrentFiftyMoveRule(t *testing.T) {
	b := NewBoard()
	var result RepeatResult
	for i := 0; i < 100; i++ {
		result = b.History.AddCurrent(b, false)
	}
	if result != FiftyRuleRepeat {
		t.Fatalf("AddCurrent after 100 non-pawn/capture plies = %v, want FiftyRuleRepeat", result)
	}
}

func TestAddCurrentResetsClockOnPawnMove(t *testing.T) {
	b := NewBoard()
	for i := 0; i < 50; i++ {
		b.History.AddCurrent(b, false)
	}
	result := b.History.AddCurrent(b, true)
	if result == FiftyRuleRepeat {
		t.Fatal("pawn move/capture should reset the fifty-move clock")
	}
}

func TestSameBoardCountDetectsThreefold(t *testing.T) {
	b := NewBoard()
	b.History.Reset(b)
	var result RepeatResult
	for i := 0; i < 2; i++ {
		result = b.History.AddCurrent(b, false)
	}
	if result != ThreeFoldRepeat {
		t.Fatalf("AddCurrent repeating the same position three times = %v, want ThreeFoldRepeat", result)
	}
	if got := b.History.SameBoardCount(b.Zobrist, b.Pieces); got != 3 {
		t.Fatalf("SameBoardCount = %d, want 3", got)
	}
}

func TestTruncate(t *testing.T) {
	b := NewBoard()
	b.History.AddCurrent(b, false)
	b.History.AddCurrent(b, false)
	if got := b.History.Len(); got != 3 {
		t.Fatalf("History.Len() = %d, want 3", got)
	}
	b.History.Truncate(1)
	if got := b.History.Len(); got != 1 {
		t.Fatalf("History.Len() after Truncate(1) = %d, want 1", got)
	}
}
