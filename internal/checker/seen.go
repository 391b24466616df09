package checker

import "sync"

// seenSet tracks appointment keys that have already been reported. It lives
// in memory only; nothing survives a process restart.
type seenSet struct {
	mu   sync.Mutex
	keys map[string]bool
}

func newSeenSet() *seenSet {
	return &seenSet{
		keys: make(map[string]bool),
	}
}

// add records a key and reports whether it was new
func (s *seenSet) add(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.keys[key] {
		return false
	}
	s.keys[key] = true
	return true
}

// size returns the number of tracked keys
func (s *seenSet) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}
