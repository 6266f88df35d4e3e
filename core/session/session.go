// Package session tracks one timed round: score, countdown and game over.
package session

import (
	"time"

	"github.com/google/uuid"
)

// RoundDuration is the length of every round.
const RoundDuration = 60 * time.Second

type Session struct {
	ID        string
	Score     int
	Started   time.Time
	Limit     time.Duration
	Remaining time.Duration
	Over      bool
}

// New starts a round at now.
func New(now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Started:   now,
		Limit:     RoundDuration,
		Remaining: RoundDuration,
	}
}

// Tick advances the countdown. Elapsed time is counted in whole seconds, so
// Remaining only changes once per second. Returns true on the tick that ends
// the round.
func (s *Session) Tick(now time.Time) bool {
	if s.Over {
		return false
	}
	elapsed := now.Sub(s.Started).Truncate(time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	s.Remaining = max(0, s.Limit-elapsed)
	if s.Remaining == 0 {
		s.Over = true
		return true
	}
	return false
}

// AddScore credits a matched sum. Negative amounts are ignored; the score
// never goes down.
func (s *Session) AddScore(n int) {
	if n <= 0 {
		return
	}
	s.Score += n
}

// SecondsLeft is Remaining rounded down to whole seconds.
func (s *Session) SecondsLeft() int { return int(s.Remaining / time.Second) }
