package statestore

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process Store with TTL-based expiration. A background
// janitor sweeps expired tokens; expired tokens are also rejected on
// Consume regardless of whether the janitor ran.
type Memory struct {
	tokens map[string]time.Time
	opts   *memoryOptions
	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

// NewMemory creates an in-memory state store.
//
// Example:
//
//	s := statestore.NewMemory(
//	    statestore.WithDefaultTTL(10 * time.Minute),
//	    statestore.WithCleanupInterval(time.Minute),
//	)
//	defer s.Close()
func NewMemory(opts ...MemoryOption) *Memory {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory{
		tokens: make(map[string]time.Time),
		opts:   o,
		done:   make(chan struct{}),
	}

	if o.cleanupInterval > 0 {
		go m.janitor()
	}

	return m
}

// Issue records a state token.
func (m *Memory) Issue(_ context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return ErrEmptyToken
	}
	if ttl <= 0 {
		ttl = m.opts.defaultTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.tokens[token] = time.Now().Add(ttl)
	return nil
}

// Consume removes a previously issued token.
func (m *Memory) Consume(_ context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	expires, ok := m.tokens[token]
	if !ok {
		return ErrUnknownState
	}
	delete(m.tokens, token)
	if time.Now().After(expires) {
		return ErrUnknownState
	}
	return nil
}

// Close stops the janitor and rejects further operations.
func (m *Memory) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	close(m.done)
	m.tokens = nil
}

func (m *Memory) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case now := <-ticker.C:
			m.mu.Lock()
			for token, expires := range m.tokens {
				if now.After(expires) {
					delete(m.tokens, token)
				}
			}
			m.mu.Unlock()
		}
	}
}
