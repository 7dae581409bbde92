package score

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio/v2"
)

// ErrNoRecord is returned by Store.Load when nothing has been saved yet
var ErrNoRecord = errors.New("score: no saved record")

// Entry is one recorded round in the high-score list
type Entry struct {
	Score      int       `toml:"score"`
	RecordedAt time.Time `toml:"recorded_at"`
	Round      string    `toml:"round,omitempty"`
}

// Record is the persisted ledger state
type Record struct {
	Latest int     `toml:"latest"`
	Played int     `toml:"played"`
	Scores []Entry `toml:"scores"`
}

// Store persists a Record
type Store interface {
	// Load returns the saved record, ErrNoRecord if none exists
	Load() (Record, error)

	// Save replaces the saved record
	Save(Record) error
}

// FileStore keeps the record in a human-readable TOML file
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the score file
func (s *FileStore) Load() (Record, error) {
	var rec Record

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return rec, ErrNoRecord
		}
		return rec, fmt.Errorf("read %s: %w", s.path, err)
	}

	if err := toml.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return rec, nil
}

// Save encodes the record and atomically replaces the score file
// A crash mid-write leaves the previous file intact
func (s *FileStore) Save(rec Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	data, err := Encode(rec)
	if err != nil {
		return err
	}

	if err := renameio.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Encode renders the record in the on-disk format
func Encode(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("encode scores: %w", err)
	}
	return buf.Bytes(), nil
}

// MemoryStore is an in-process Store for tests
type MemoryStore struct {
	mu    sync.Mutex
	rec   *Record
	saves int
	err   error // Returned by Save when set
}

// NewMemoryStore creates an empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil {
		return Record{}, ErrNoRecord
	}
	return cloneRecord(*m.rec), nil
}

func (m *MemoryStore) Save(rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	c := cloneRecord(rec)
	m.rec = &c
	m.saves++
	return nil
}

// Saves returns the number of successful saves
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// FailSaves makes subsequent saves return err (nil restores normal behaviour)
func (m *MemoryStore) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func cloneRecord(rec Record) Record {
	out := rec
	out.Scores = append([]Entry(nil), rec.Scores...)
	return out
}
