// Package storage persists game progress as a single JSON record.
package storage

import (
	"errors"
	"fmt"
	"log"

	"github.com/younwookim/hikari/internal/domain/progress"
)

// ErrNotFound is returned by Read when no record exists yet.
var ErrNotFound = errors.New("save not found")

// Store reads and writes the raw save record.
type Store interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// Load reads progress from s. Any failure, including a missing or
// malformed record, yields a fresh state.
func Load(s Store) *progress.State {
	data, err := s.Read()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("Failed to read save: %v", err)
		}
		return progress.New()
	}

	st, err := progress.Decode(data)
	if err != nil {
		log.Printf("Ignoring malformed save: %v", err)
		return progress.New()
	}
	return st
}

// Save writes st to s.
func Save(s Store, st *progress.State) error {
	data, err := st.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	if err := s.Write(data); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	return nil
}

// MemoryStore keeps the record in memory.
type MemoryStore struct {
	data   []byte
	Writes int
	Err    error // returned by Read and Write when set
}

// NewMemoryStore creates a store preloaded with data (nil for empty).
func NewMemoryStore(data []byte) *MemoryStore {
	return &MemoryStore{data: data}
}

func (m *MemoryStore) Read() ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.data == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemoryStore) Write(data []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.data = append([]byte(nil), data...)
	m.Writes++
	return nil
}

// Bytes returns the stored record.
func (m *MemoryStore) Bytes() []byte {
	return m.data
}
