package repository

import "time"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithClock sets the time source used for LoadedAt.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMetrics enables or disables dataset gauge updates on Replace.
func WithMetrics(enabled bool) Option {
	return func(s *MemoryStore) {
		s.metrics = enabled
	}
}
