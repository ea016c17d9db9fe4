// Package session implements the simulated authentication flow as a small state machine.
// It decides which surface the user sees; it is not a security boundary.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonathan/opportunity-hub/internal/types"
)

// State is a gate state.
type State string

// Gate states
const (
	StateLanding       State = "landing"
	StateAuth          State = "auth"
	StateAuthenticated State = "authenticated"
)

// DefaultDelay is the artificial latency of a form submission.
const DefaultDelay = time.Second

var (
	// ErrInvalidTransition is returned when an event is not allowed in the current state.
	ErrInvalidTransition = errors.New("invalid session transition")
	// ErrInvalidLogin is returned when the submitted form fails validation.
	ErrInvalidLogin = errors.New("invalid login request")
)

// Option configures a Gate.
type Option func(*Gate)

// WithDelay overrides the submission delay. Zero disables it.
func WithDelay(d time.Duration) Option {
	return func(g *Gate) {
		g.delay = d
	}
}

// Gate tracks where the user is in the landing → auth → authenticated flow.
type Gate struct {
	mu    sync.Mutex
	state State
	mode  types.AuthMode
	user  *types.User
	delay time.Duration
}

// NewGate creates a gate. A non-nil persisted user starts it authenticated.
func NewGate(user *types.User, opts ...Option) *Gate {
	g := &Gate{
		state: StateLanding,
		delay: DefaultDelay,
	}
	for _, opt := range opts {
		opt(g)
	}
	if user != nil {
		g.state = StateAuthenticated
		g.user = user
	}
	return g
}

// Snapshot is a point-in-time view of the gate.
type Snapshot struct {
	State State          `json:"state"`
	Mode  types.AuthMode `json:"mode,omitempty"`
	User  *types.User    `json:"user,omitempty"`
}

// Snapshot returns the current state.
func (g *Gate) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := Snapshot{State: g.state, Mode: g.mode}
	if g.user != nil {
		u := *g.user
		s.User = &u
	}
	return s
}

// Authenticated reports whether the snapshot was taken in the authenticated state.
func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated
}

// State returns the current state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// User returns the authenticated user, or nil.
func (g *Gate) User() *types.User {
	return g.Snapshot().User
}

// Authenticated reports whether the gate is in the authenticated state.
func (g *Gate) Authenticated() bool {
	return g.State() == StateAuthenticated
}

// ChooseAuth moves from the landing page to the entry form in the given mode.
func (g *Gate) ChooseAuth(mode types.AuthMode) error {
	if _, err := types.ParseAuthMode(string(mode)); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateLanding {
		return g.invalid("choose auth")
	}
	g.state = StateAuth
	g.mode = mode
	return nil
}

// Back returns from the entry form to the landing page.
func (g *Gate) Back() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateAuth {
		return g.invalid("back")
	}
	g.state = StateLanding
	g.mode = ""
	return nil
}

// Submit accepts any well-formed email and non-empty password after the artificial delay.
// The derived user's name is the email local part.
func (g *Gate) Submit(ctx context.Context, req types.LoginRequest) (*types.User, error) {
	g.mu.Lock()
	if g.state != StateAuth {
		err := g.invalid("submit")
		g.mu.Unlock()
		return nil, err
	}
	delay := g.delay
	g.mu.Unlock()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLogin, types.ValidationMessage(err))
	}

	if err := wait(ctx, delay); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	// Back may have been pressed while waiting.
	if g.state != StateAuth {
		return nil, g.invalid("submit")
	}
	user := types.NewUser(req.Email, "")
	g.state = StateAuthenticated
	g.mode = ""
	g.user = user

	u := *user
	return &u, nil
}

// Logout returns to the landing page and forgets the user.
func (g *Gate) Logout() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateAuthenticated {
		return g.invalid("logout")
	}
	g.state = StateLanding
	g.user = nil
	return nil
}

func (g *Gate) invalid(event string) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, g.state)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
