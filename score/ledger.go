package score

import (
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-snake/constants"
)

// RoundResult describes a round recorded by EndRound
type RoundResult struct {
	Round        string
	Score        int
	Rank         int  // 1-based position in the high-score list, 0 when it did not place
	NewHighScore bool // Strictly above the previous best, or the first recorded score
	Saved        bool // Persisted without error
}

// Ledger tracks the running score, the latest completed score and the top scores
// It outlives individual rounds: loaded once at startup, saved after every round
type Ledger struct {
	store Store
	log   zerolog.Logger
	now   func() time.Time

	current int
	round   string
	latest  int
	played  int
	entries []Entry
}

// NewLedger creates an empty ledger persisting through store
func NewLedger(store Store, logger zerolog.Logger) *Ledger {
	return &Ledger{
		store: store,
		log:   logger.With().Str("component", "ledger").Logger(),
		now:   time.Now,
	}
}

// SetClock overrides the timestamp source for recorded entries
func (l *Ledger) SetClock(now func() time.Time) {
	l.now = now
}

// Load replaces the in-memory history with the stored record
// A missing record is not an error; a failed or malformed read leaves the history empty
// and returns the cause for reporting
func (l *Ledger) Load() error {
	l.entries = nil
	l.latest = 0
	l.played = 0

	rec, err := l.store.Load()
	if err != nil {
		if errors.Is(err, ErrNoRecord) {
			l.log.Debug().Msg("no saved scores")
			return nil
		}
		l.log.Warn().Err(err).Msg("score history unreadable, starting empty")
		return err
	}

	entries := make([]Entry, 0, len(rec.Scores))
	for _, e := range rec.Scores {
		if e.Score < 0 {
			continue
		}
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > constants.MaxHighScores {
		entries = entries[:constants.MaxHighScores]
	}

	l.entries = entries
	if rec.Latest > 0 {
		l.latest = rec.Latest
	}
	l.played = rec.Played
	l.log.Debug().Int("entries", len(entries)).Int("played", l.played).Msg("scores loaded")
	return nil
}

// Save writes the current history to the store
func (l *Ledger) Save() error {
	return l.store.Save(l.Record())
}

// Record returns the persistable state
func (l *Ledger) Record() Record {
	return Record{
		Latest: l.latest,
		Played: l.played,
		Scores: l.Entries(),
	}
}

// StartRound zeroes the running score and tags subsequent results with round
func (l *Ledger) StartRound(round string) {
	l.current = 0
	l.round = round
}

// Add credits delta to the running score, negative deltas are ignored
func (l *Ledger) Add(delta int) {
	if delta <= 0 {
		return
	}
	l.current += delta
}

// Discard drops the running score without recording it
func (l *Ledger) Discard() {
	l.current = 0
	l.round = ""
}

// EndRound records the running score as latest, inserts it into the history,
// resets the running score and saves
func (l *Ledger) EndRound() RoundResult {
	score := l.current
	res := RoundResult{
		Round:        l.round,
		Score:        score,
		NewHighScore: len(l.entries) == 0 || score > l.entries[0].Score,
	}

	res.Rank = l.insert(Entry{Score: score, RecordedAt: l.now().UTC().Truncate(time.Second), Round: l.round})
	l.latest = score
	l.played++
	l.current = 0
	l.round = ""

	if err := l.Save(); err != nil {
		l.log.Error().Err(err).Int("score", score).Msg("save scores")
	} else {
		res.Saved = true
	}

	l.log.Info().
		Str("round", res.Round).
		Int("score", score).
		Int("rank", res.Rank).
		Bool("new_high", res.NewHighScore).
		Msg("round recorded")
	return res
}

// insert places e after any equal scores and trims to capacity, returns 1-based rank or 0
func (l *Ledger) insert(e Entry) int {
	pos := sort.Search(len(l.entries), func(i int) bool { return l.entries[i].Score < e.Score })
	if pos >= constants.MaxHighScores {
		return 0
	}
	l.entries = append(l.entries, Entry{})
	copy(l.entries[pos+1:], l.entries[pos:])
	l.entries[pos] = e
	if len(l.entries) > constants.MaxHighScores {
		l.entries = l.entries[:constants.MaxHighScores]
	}
	return pos + 1
}

// Current returns the running score
func (l *Ledger) Current() int {
	return l.current
}

// Latest returns the last completed score and whether any round has completed
func (l *Ledger) Latest() (int, bool) {
	return l.latest, l.played > 0
}

// Played returns the number of recorded rounds
func (l *Ledger) Played() int {
	return l.played
}

// HighScore returns the best recorded score, 0 when empty
func (l *Ledger) HighScore() int {
	if len(l.entries) == 0 {
		return 0
	}
	return l.entries[0].Score
}

// Entries returns a copy of the high-score list, best first
func (l *Ledger) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Scores returns the high-score values, best first
func (l *Ledger) Scores() []int {
	out := make([]int, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Score
	}
	return out
}
