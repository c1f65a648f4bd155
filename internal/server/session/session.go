// Package session owns the per-player state: each session is one seeded
// tree plus a shell dispatcher, held only in memory for its lifetime.
package session

import (
	"sync"
	"time"

	"questfs/internal/server/challenge"
	"questfs/internal/shell"
)

// Session is one player's run at a challenge. All access to the tree goes
// through the session so a single mutex serializes it.
type Session struct {
	ID        string
	Challenge *challenge.Challenge
	CreatedAt time.Time

	mu         sync.Mutex
	dispatcher *shell.Dispatcher
	lastActive time.Time
	commands   int
	completed  bool
}

// State is a point-in-time snapshot safe to hand to the API layer.
type State struct {
	ID               string    `json:"id"`
	ChallengeID      string    `json:"challenge_id"`
	WorkingDirectory string    `json:"pwd"`
	Commands         int       `json:"commands"`
	Completed        bool      `json:"completed"`
	CreatedAt        time.Time `json:"created_at"`
}

// Exec runs one shell command against the session's tree.
func (s *Session) Exec(name string, args []string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	s.commands++
	return s.dispatcher.Exec(name, args)
}

// Solve checks a submitted secret; a correct answer marks the session
// completed. Completion is sticky.
func (s *Session) Solve(secret string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	if s.Challenge.VerifySecret(secret) {
		s.completed = true
	}
	return s.completed
}

// State snapshots the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		ID:               s.ID,
		ChallengeID:      s.Challenge.ID,
		WorkingDirectory: s.dispatcher.Tree().WorkingDirectory(),
		Commands:         s.commands,
		Completed:        s.completed,
		CreatedAt:        s.CreatedAt,
	}
}

// Archive exports the session's tree as zip bytes.
func (s *Session) Archive() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatcher.Tree().ToZipBytes()
}

// idleSince returns the last time the session was touched.
func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}
