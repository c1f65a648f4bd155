package session

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"questfs/internal/server/challenge"
	"questfs/internal/shell"
)

var (
	ErrNotFound        = errors.New("session not found")
	ErrTooManySessions = errors.New("session limit reached")
)

// Manager holds all live sessions. State is strictly in-memory; restarting
// the server drops every run.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	max      int
}

// NewManager creates a manager. Sessions idle longer than ttl are removed
// by Expire; max caps concurrent sessions.
func NewManager(ttl time.Duration, max int) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		max:      max,
	}
}

// Create starts a new session with a fresh tree seeded from the challenge.
func (m *Manager) Create(ch *challenge.Challenge) (*Session, error) {
	tree, err := ch.NewTree()
	if err != nil {
		return nil, err
	}

	id, err := generateSessionID(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := time.Now()
	s := &Session{
		ID:         id,
		Challenge:  ch,
		CreatedAt:  now,
		dispatcher: shell.New(tree),
		lastActive: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.max > 0 && len(m.sessions) >= m.max {
		return nil, ErrTooManySessions
	}
	m.sessions[id] = s
	return s, nil
}

// Get looks up a live session by ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete removes a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Expire removes sessions idle longer than the TTL and returns how many
// were dropped.
func (m *Manager) Expire(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := now.Add(-m.ttl)
	expired := 0
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			delete(m.sessions, id)
			expired++
		}
	}
	return expired
}

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateSessionID returns a URL-safe random ID of the given length.
func generateSessionID(length int) (string, error) {
	id := make([]byte, length)
	for i := range id {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(idCharset))))
		if err != nil {
			return "", err
		}
		id[i] = idCharset[n.Int64()]
	}
	return string(id), nil
}
