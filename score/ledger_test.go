package score

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-snake/constants"
)

func newTestLedger(t *testing.T, scores ...int) (*Ledger, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	if len(scores) > 0 {
		rec := Record{}
		for _, s := range scores {
			rec.Scores = append(rec.Scores, Entry{Score: s})
		}
		if err := store.Save(rec); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}
	l := NewLedger(store, zerolog.Nop())
	l.SetClock(func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) })
	if err := l.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return l, store
}

func endWith(l *Ledger, score int) RoundResult {
	l.StartRound("r")
	l.Add(score)
	return l.EndRound()
}

// TestEndRoundInsertsSorted verifies the documented insertion examples
func TestEndRoundInsertsSorted(t *testing.T) {
	l, _ := newTestLedger(t, 100, 90, 80)

	endWith(l, 95)
	if got, want := l.Scores(), []int{100, 95, 90, 80}; !reflect.DeepEqual(got, want) {
		t.Fatalf("After 95: expected %v, got %v", want, got)
	}

	endWith(l, 50)
	if got, want := l.Scores(), []int{100, 95, 90, 80, 50}; !reflect.DeepEqual(got, want) {
		t.Fatalf("After 50: expected %v, got %v", want, got)
	}

	if latest, ok := l.Latest(); !ok || latest != 50 {
		t.Errorf("Expected latest 50, got %d (ok=%v)", latest, ok)
	}
	if l.Current() != 0 {
		t.Errorf("Expected current score reset to 0, got %d", l.Current())
	}
}

// TestCapacityDropsLowest verifies the list never exceeds capacity and stays descending
func TestCapacityDropsLowest(t *testing.T) {
	l, _ := newTestLedger(t, 100, 90, 80, 70, 60, 50, 40, 30, 20, 10)

	res := endWith(l, 5)
	if res.Rank != 0 {
		t.Errorf("Expected unplaced score to have rank 0, got %d", res.Rank)
	}
	if got, want := l.Scores(), []int{100, 90, 80, 70, 60, 50, 40, 30, 20, 10}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Lower score changed the list: %v", got)
	}

	res = endWith(l, 10)
	if res.Rank != 0 {
		t.Errorf("Expected tie with the last entry to not place, got rank %d", res.Rank)
	}

	res = endWith(l, 65)
	if res.Rank != 5 {
		t.Errorf("Expected rank 5, got %d", res.Rank)
	}
	scores := l.Scores()
	if len(scores) != constants.MaxHighScores {
		t.Fatalf("Expected %d entries, got %d", constants.MaxHighScores, len(scores))
	}
	if scores[len(scores)-1] != 20 {
		t.Errorf("Expected 10 dropped, tail is %d", scores[len(scores)-1])
	}
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[i-1] {
			t.Fatalf("List not descending: %v", scores)
		}
	}
}

// TestNewHighScoreSignal verifies strict comparison against the previous best
func TestNewHighScoreSignal(t *testing.T) {
	l, _ := newTestLedger(t)

	if res := endWith(l, 30); !res.NewHighScore {
		t.Error("First score on an empty list should be a new high score")
	}
	if res := endWith(l, 30); res.NewHighScore {
		t.Error("Equal score should not be a new high score")
	}
	if res := endWith(l, 31); !res.NewHighScore || res.Rank != 1 {
		t.Errorf("Expected new high at rank 1, got %+v", res)
	}
}

// TestAddIgnoresNegative verifies the running score never decreases
func TestAddIgnoresNegative(t *testing.T) {
	l, _ := newTestLedger(t)
	l.StartRound("r")
	l.Add(10)
	l.Add(-50)
	l.Add(0)
	if l.Current() != 10 {
		t.Errorf("Expected 10, got %d", l.Current())
	}
	l.Discard()
	if l.Current() != 0 {
		t.Errorf("Expected discard to zero the score, got %d", l.Current())
	}
}

// TestEndRoundSavesEveryRound verifies persistence after each round
func TestEndRoundSavesEveryRound(t *testing.T) {
	l, store := newTestLedger(t)
	endWith(l, 10)
	endWith(l, 20)
	if store.Saves() != 2 {
		t.Fatalf("Expected 2 saves, got %d", store.Saves())
	}

	reloaded := NewLedger(store, zerolog.Nop())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := reloaded.Scores(); !reflect.DeepEqual(got, []int{20, 10}) {
		t.Errorf("Expected reloaded [20 10], got %v", got)
	}
	if latest, _ := reloaded.Latest(); latest != 20 {
		t.Errorf("Expected reloaded latest 20, got %d", latest)
	}
	if reloaded.Played() != 2 {
		t.Errorf("Expected 2 rounds played, got %d", reloaded.Played())
	}
}

// TestSaveFailureKeepsState verifies a failed write is reported but does not lose the round
func TestSaveFailureKeepsState(t *testing.T) {
	l, store := newTestLedger(t)
	store.FailSaves(errors.New("disk full"))

	res := endWith(l, 40)
	if res.Saved {
		t.Error("Expected Saved=false on store failure")
	}
	if got := l.Scores(); !reflect.DeepEqual(got, []int{40}) {
		t.Errorf("Expected in-memory list [40], got %v", got)
	}
}

// TestLoadSanitizes verifies unsorted, negative and oversized histories are normalized
func TestLoadSanitizes(t *testing.T) {
	store := NewMemoryStore()
	rec := Record{Latest: -3}
	for _, s := range []int{5, -1, 50, 10, 20, 30, 40, 60, 70, 80, 90, 100} {
		rec.Scores = append(rec.Scores, Entry{Score: s})
	}
	store.Save(rec)

	l := NewLedger(store, zerolog.Nop())
	if err := l.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []int{100, 90, 80, 70, 60, 50, 40, 30, 20, 10}
	if got := l.Scores(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if latest, _ := l.Latest(); latest != 0 {
		t.Errorf("Expected negative latest ignored, got %d", latest)
	}
}

// TestEntriesAreCopies verifies callers cannot mutate ledger state
func TestEntriesAreCopies(t *testing.T) {
	l, _ := newTestLedger(t, 10)
	entries := l.Entries()
	entries[0].Score = 999
	if l.HighScore() != 10 {
		t.Errorf("Ledger mutated through Entries: %d", l.HighScore())
	}
}
