package api

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Breaker guards the remote API with the classic Closed → Open → Half-Open
// circuit. When the backend is down every screen would otherwise hang for a
// full timeout on each tap; once the circuit opens, calls fail immediately
// until a probe succeeds. The breaker never retries anything on its own.

// breakerState is the current circuit position.
type breakerState int

const (
	stateClosed   breakerState = iota // requests flow
	stateOpen                         // fast-fail everything
	stateHalfOpen                     // let probes through
)

func (s breakerState) String() string {
	switch s {
	case stateClosed:
		return "closed"
	case stateOpen:
		return "open"
	case stateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// ErrServerDown is returned while the circuit is open.
var ErrServerDown = errors.New("server marked unreachable")

// BreakerConfig tunes the circuit.
type BreakerConfig struct {
	FailureThreshold int           // consecutive failures to trip open
	SuccessThreshold int           // consecutive half-open successes to close
	OpenTimeout      time.Duration // open duration before probing
}

// Breaker is safe for concurrent use; each screen's calls share one
// instance through the Client.
type Breaker struct {
	mu        sync.Mutex
	state     breakerState
	failures  int
	successes int
	openedAt  time.Time
	cfg       BreakerConfig
}

func NewBreaker(cfg BreakerConfig) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 2
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	return &Breaker{state: stateClosed, cfg: cfg}
}

// Do runs fn through the circuit. While open it returns ErrServerDown
// without invoking fn.
func (b *Breaker) Do(fn func() error) error {
	if b.current() == stateOpen {
		return ErrServerDown
	}

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		// A caller-cancelled request says nothing about server health:
		// screens cancel in-flight calls on teardown and that must not
		// open the circuit.
		if !errors.Is(err, context.Canceled) {
			b.recordFailure()
		}
		return err
	}
	b.recordSuccess()
	return nil
}

// State reports the circuit position, moving open → half-open once the
// open timeout has elapsed.
func (b *Breaker) State() string { return b.current().String() }

func (b *Breaker) current() breakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == stateOpen && time.Since(b.openedAt) >= b.cfg.OpenTimeout {
		b.state = stateHalfOpen
		b.successes = 0
	}
	return b.state
}

// recordFailure must be called under b.mu.
func (b *Breaker) recordFailure() {
	b.failures++
	b.openedAt = time.Now()

	switch b.state {
	case stateClosed:
		if b.failures >= b.cfg.FailureThreshold {
			b.state = stateOpen
			b.successes = 0
		}
	case stateHalfOpen:
		// Probe failed — back to open for another timeout.
		b.state = stateOpen
		b.failures = 0
	}
}

// recordSuccess must be called under b.mu.
func (b *Breaker) recordSuccess() {
	switch b.state {
	case stateClosed:
		b.failures = 0
	case stateHalfOpen:
		b.successes++
		if b.successes >= b.cfg.SuccessThreshold {
			b.state = stateClosed
			b.failures = 0
			b.successes = 0
		}
	}
}
