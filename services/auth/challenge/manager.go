package challenge

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/souqin/souqin/internal/pkg/logger"
)

// Instance is a single-use bot-challenge handle issued by the provider. A
// proof token is consumed by the SMS gateway when sending; Clear releases
// the provider-side resources.
type Instance interface {
	Token(ctx context.Context) (string, error)
	Clear() error
}

// Factory constructs a fresh challenge instance with the provider
type Factory func(ctx context.Context) (Instance, error)

// ExpiryHandler is invoked when the provider reports an expired challenge.
// Expiry is a retryable notice, never an error.
type ExpiryHandler func()

// Manager owns at most one live challenge instance. Re-initialization always
// tears down the previous instance before building a new one, with a short
// settle delay so the provider can release its resources.
type Manager struct {
	factory     Factory
	settleDelay time.Duration
	sleep       func(time.Duration)
	onExpiry    ExpiryHandler

	mu      sync.Mutex
	current Instance
}

// Option configures a Manager
type Option func(*Manager)

// WithSettleDelay overrides the post-teardown settle delay
func WithSettleDelay(d time.Duration) Option {
	return func(m *Manager) {
		m.settleDelay = d
	}
}

// WithSleeper overrides the sleep function, used by tests
func WithSleeper(sleep func(time.Duration)) Option {
	return func(m *Manager) {
		m.sleep = sleep
	}
}

// WithExpiryHandler registers the handler for provider expiry notices
func WithExpiryHandler(h ExpiryHandler) Option {
	return func(m *Manager) {
		m.onExpiry = h
	}
}

// NewManager creates a challenge lifecycle manager around the given factory
func NewManager(factory Factory, opts ...Option) *Manager {
	m := &Manager{
		factory:     factory,
		settleDelay: 100 * time.Millisecond,
		sleep:       time.Sleep,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize returns the live challenge instance, building one when none
// exists or when forceReset is set. Factory failures propagate; the caller
// must surface them and must not proceed to send.
func (m *Manager) Initialize(ctx context.Context, forceReset bool) (Instance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && !forceReset {
		return m.current, nil
	}

	m.teardownLocked()

	instance, err := m.factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create challenge instance: %w", err)
	}

	m.current = instance
	return instance, nil
}

// Cleanup tears down the current instance, if any. Idempotent; called on
// service shutdown and after a session completes.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teardownLocked()
}

// Current returns the live instance without blocking, nil when none exists
func (m *Manager) Current() Instance {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// NotifyExpired reports a provider expiry notice. The current instance is no
// longer usable, so it is torn down; the registered handler surfaces a
// user-facing retry notice.
func (m *Manager) NotifyExpired() {
	m.mu.Lock()
	m.teardownLocked()
	handler := m.onExpiry
	m.mu.Unlock()

	logger.Warn("Challenge instance expired, awaiting retry")
	if handler != nil {
		handler()
	}
}

// teardownLocked clears the current instance and waits for the provider to
// settle before a new one may be created. Caller must hold mu.
func (m *Manager) teardownLocked() {
	if m.current == nil {
		return
	}

	if err := m.current.Clear(); err != nil {
		logger.Warn("Failed to clear challenge instance", logger.Err(err))
	}
	m.current = nil
	m.sleep(m.settleDelay)
}
