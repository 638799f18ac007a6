// Package progress tracks which stages the player has cleared.
package progress

import (
	"encoding/json"
	"sort"
)

// StageID identifies a stage.
type StageID int

// State is the persisted game progress.
type State struct {
	cleared        map[StageID]bool
	secretUnlocked bool
}

// Snapshot is the wire form of State.
type Snapshot struct {
	ClearedStages  []StageID `json:"clearedStages"`
	SecretUnlocked bool      `json:"secretUnlocked"`
}

// New returns an empty progress state.
func New() *State {
	return &State{cleared: make(map[StageID]bool)}
}

// FromSnapshot rebuilds a State from its wire form.
func FromSnapshot(s Snapshot) *State {
	st := New()
	for _, id := range s.ClearedStages {
		st.cleared[id] = true
	}
	st.secretUnlocked = s.SecretUnlocked
	return st
}

// Snapshot returns the wire form with cleared stages in ascending order.
func (s *State) Snapshot() Snapshot {
	ids := make([]StageID, 0, len(s.cleared))
	for id := range s.cleared {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return Snapshot{ClearedStages: ids, SecretUnlocked: s.secretUnlocked}
}

// MarkCleared records a stage as cleared. Returns true if it was new.
func (s *State) MarkCleared(id StageID) bool {
	if s.cleared[id] {
		return false
	}
	s.cleared[id] = true
	return true
}

// IsCleared reports whether id has been cleared.
func (s *State) IsCleared(id StageID) bool {
	return s.cleared[id]
}

// ClearedCount returns the number of cleared stages.
func (s *State) ClearedCount() int {
	return len(s.cleared)
}

// AllCleared reports whether every id in ids is cleared.
func (s *State) AllCleared(ids []StageID) bool {
	for _, id := range ids {
		if !s.cleared[id] {
			return false
		}
	}
	return true
}

// UnlockSecret sets the secret flag. Returns true if it was newly set.
func (s *State) UnlockSecret() bool {
	if s.secretUnlocked {
		return false
	}
	s.secretUnlocked = true
	return true
}

// SecretUnlocked reports the secret flag.
func (s *State) SecretUnlocked() bool {
	return s.secretUnlocked
}

// Encode serialises the state as JSON.
func (s *State) Encode() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}

// Decode parses JSON produced by Encode.
func Decode(data []byte) (*State, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return FromSnapshot(snap), nil
}
