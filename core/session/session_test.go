package session

import (
	"testing"
	"time"
)

func TestNewSession(t *testing.T) {
	now := time.Unix(1000, 0)
	s := New(now)
	if s.Score != 0 || s.Over || s.Remaining != RoundDuration || s.Limit != RoundDuration {
		t.Fatalf("fresh session = %+v", s)
	}
	if s.ID == "" {
		t.Fatalf("missing round id")
	}
	if other := New(now); other.ID == s.ID {
		t.Fatalf("round ids repeat: %s", s.ID)
	}
}

func TestTickCountsWholeSeconds(t *testing.T) {
	start := time.Unix(1000, 0)
	s := New(start)

	s.Tick(start.Add(1500 * time.Millisecond))
	if s.Remaining != 59*time.Second || s.SecondsLeft() != 59 {
		t.Fatalf("remaining = %v, want 59s", s.Remaining)
	}
	s.Tick(start.Add(59*time.Second + 999*time.Millisecond))
	if s.Over || s.SecondsLeft() != 1 {
		t.Fatalf("ended early: %+v", s)
	}
}

func TestTickEndsRoundOnce(t *testing.T) {
	start := time.Unix(1000, 0)
	s := New(start)
	if !s.Tick(start.Add(60 * time.Second)) {
		t.Fatalf("expected the round to end at 60s")
	}
	if !s.Over || s.Remaining != 0 {
		t.Fatalf("session = %+v", s)
	}
	if s.Tick(start.Add(90 * time.Second)) {
		t.Fatalf("round ended twice")
	}
	if s.Remaining != 0 {
		t.Fatalf("remaining went negative: %v", s.Remaining)
	}
}

func TestTickBeforeStartClamps(t *testing.T) {
	start := time.Unix(1000, 0)
	s := New(start)
	s.Tick(start.Add(-5 * time.Second))
	if s.Remaining != RoundDuration {
		t.Fatalf("remaining = %v", s.Remaining)
	}
}

func TestAddScoreMonotonic(t *testing.T) {
	s := New(time.Unix(0, 0))
	s.AddScore(7)
	s.AddScore(-3)
	s.AddScore(0)
	s.AddScore(12)
	if s.Score != 19 {
		t.Fatalf("score = %d, want 19", s.Score)
	}
}
