// Package circuitbreaker guards repeatedly failing operations, such as reading
// a broken price file, so callers fail fast until the cool-down expires.
package circuitbreaker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/guttosm/meal-planner/internal/logger"
	"github.com/guttosm/meal-planner/internal/metrics"
	"github.com/rs/zerolog"
)

// ErrCircuitOpen matches every error returned for a rejected call.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// OpenError is returned by Execute while the circuit rejects calls.
type OpenError struct {
	Name string
	// RetryAfter is the remaining cool-down; zero while a trial call is running.
	RetryAfter time.Duration
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, ErrCircuitOpen)
}

// Is makes errors.Is(err, ErrCircuitOpen) hold.
func (e *OpenError) Is(target error) bool {
	return target == ErrCircuitOpen
}

// State represents the state of the circuit breaker.
type State int

const (
	StateClosed State = iota
	StateOpen
	// StateHalfOpen lets a single trial call through after the cool-down.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold consecutive failures open the circuit.
	FailureThreshold int
	// SuccessThreshold consecutive trial successes close it again.
	SuccessThreshold int
	// Timeout is the cool-down before a trial call is allowed.
	Timeout time.Duration
	Name    string
}

// DefaultConfig returns the configuration used for price file reloads.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 3,
		SuccessThreshold: 1,
		Timeout:          30 * time.Second,
		Name:             "price-reload",
	}
}

// CircuitBreaker fails calls fast after repeated failures.
type CircuitBreaker struct {
	config Config
	now    func() time.Time

	mu        sync.Mutex
	state     State
	failures  int
	successes int
	openedAt  time.Time
	probing   bool
}

// New creates a closed circuit breaker. Thresholds below one are raised to one.
func New(config Config) *CircuitBreaker {
	if config.FailureThreshold < 1 {
		config.FailureThreshold = 1
	}
	if config.SuccessThreshold < 1 {
		config.SuccessThreshold = 1
	}
	metrics.SetCircuitState(config.Name, int(StateClosed))
	return &CircuitBreaker{config: config, now: time.Now}
}

// Execute runs fn unless ctx is already done or the circuit is open. While
// half-open only one call runs at a time; others are rejected with an
// *OpenError until it finishes.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cb.admit(); err != nil {
		return err
	}

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.probing = false
	if err != nil {
		cb.onFailure()
		return err
	}
	cb.onSuccess()
	return nil
}

func (cb *CircuitBreaker) admit() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if wait := cb.remainingLocked(); wait > 0 {
			return &OpenError{Name: cb.config.Name, RetryAfter: wait}
		}
		cb.setState(StateHalfOpen)
		cb.successes = 0
		cb.log().Info().Msg("Circuit breaker half-open, allowing a trial call")
		fallthrough
	case StateHalfOpen:
		if cb.probing {
			return &OpenError{Name: cb.config.Name}
		}
		cb.probing = true
	}
	return nil
}

func (cb *CircuitBreaker) onFailure() {
	cb.failures++

	switch cb.state {
	case StateClosed:
		if cb.failures >= cb.config.FailureThreshold {
			cb.open()
			cb.log().Warn().Int("failures", cb.failures).Msg("Circuit breaker opened")
		}
	case StateHalfOpen:
		cb.open()
		cb.log().Warn().Msg("Circuit breaker reopened after failed trial")
	}
}

func (cb *CircuitBreaker) onSuccess() {
	cb.failures = 0
	if cb.state != StateHalfOpen {
		return
	}
	cb.successes++
	if cb.successes >= cb.config.SuccessThreshold {
		cb.setState(StateClosed)
		cb.log().Info().Msg("Circuit breaker closed")
	}
}

func (cb *CircuitBreaker) open() {
	cb.openedAt = cb.now()
	cb.setState(StateOpen)
}

func (cb *CircuitBreaker) remainingLocked() time.Duration {
	if cb.state != StateOpen {
		return 0
	}
	if wait := cb.config.Timeout - cb.now().Sub(cb.openedAt); wait > 0 {
		return wait
	}
	return 0
}

func (cb *CircuitBreaker) setState(s State) {
	cb.state = s
	metrics.SetCircuitState(cb.config.Name, int(s))
}

func (cb *CircuitBreaker) log() *zerolog.Logger {
	l := logger.Component("circuitbreaker").With().Str("circuit_breaker", cb.config.Name).Logger()
	return &l
}

// Name returns the configured name.
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

// Check fails while the circuit is open, so it can serve as a health check.
func (cb *CircuitBreaker) Check() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state == StateOpen {
		return &OpenError{Name: cb.config.Name, RetryAfter: cb.remainingLocked()}
	}
	return nil
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
