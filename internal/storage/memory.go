package storage

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/binary-breaker/internal/breaker"
)

// Memory is an in-process store. Nothing survives the process.
type Memory struct {
	high     int
	sessions []SessionEntry
}

var (
	_ Backend                 = (*Memory)(nil)
	_ breaker.SessionRecorder = (*Memory)(nil)
)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// LoadHighScore returns the saved high score.
func (m *Memory) LoadHighScore() (int, error) {
	return m.high, nil
}

// SaveHighScore keeps score if it beats the saved one.
func (m *Memory) SaveHighScore(score int) error {
	m.high = max(m.high, score)
	return nil
}

// RecordSession appends a session.
func (m *Memory) RecordSession(score, level int, outcome string) error {
	m.sessions = append(m.sessions, SessionEntry{
		ID:        int64(len(m.sessions) + 1),
		SessionID: uuid.New().String(),
		Score:     score,
		Level:     level,
		Outcome:   outcome,
		CreatedAt: time.Now(),
	})
	return nil
}

// TopSessions returns the best N sessions by score.
func (m *Memory) TopSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	out := make([]SessionEntry, len(m.sessions))
	copy(out, m.sessions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Clear forgets everything.
func (m *Memory) Clear() error {
	m.high = 0
	m.sessions = nil
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
