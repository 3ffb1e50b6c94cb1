package session

import (
	"sync"
	"sync/atomic"
	"time"
)

// State is shared by every checkpoint of a controller.
type State struct {
	counter  atomic.Int64
	skipAll  atomic.Bool
	lastTime atomic.Pointer[time.Time]

	mu       sync.Mutex
	lastFull string
}

// Next increments the checkpoint counter and returns the new value.
func (s *State) Next() int64 {
	return s.counter.Add(1)
}

// Count returns the number of checkpoints shown so far.
func (s *State) Count() int64 {
	return s.counter.Load()
}

// SkipAll suppresses every later checkpoint. It cannot be undone.
func (s *State) SkipAll() {
	s.skipAll.Store(true)
}

// Skipping reports whether SkipAll was called.
func (s *State) Skipping() bool {
	return s.skipAll.Load()
}

// SetFullOutput replaces the cached full output.
func (s *State) SetFullOutput(full string) {
	s.mu.Lock()
	s.lastFull = full
	s.mu.Unlock()
}

// FullOutput returns the cached full output.
func (s *State) FullOutput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFull
}

// MarkTime records now as the latest checkpoint time and returns the
// time since the previous one. ok is false for the first checkpoint.
func (s *State) MarkTime(now time.Time) (elapsed time.Duration, ok bool) {
	prev := s.lastTime.Swap(&now)
	if prev == nil {
		return 0, false
	}
	return now.Sub(*prev), true
}
