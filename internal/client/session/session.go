// Package session enforces the client-side session lifetime: a fixed
// countdown that forces logout when it reaches zero. This is an absolute
// timeout, not an idle timeout — the counter decrements once per second of
// wall-clock time regardless of user activity.
package session

import (
	"sync"
	"time"
)

type State int

const (
	Inactive State = iota
	Active
	Expired
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// Session is a single countdown instance. It moves Inactive → Active →
// Expired; Expired is terminal, a new login constructs a new Session.
// The expiry callback fires exactly once, and only on countdown expiry,
// not on explicit logout.
type Session struct {
	mu        sync.Mutex
	state     State
	remaining int
	interval  time.Duration
	onExpire  func()
	stop      chan struct{}
	stopOnce  sync.Once
}

// New returns an Inactive session that will run for the given duration once
// started. onExpire may be nil.
func New(duration time.Duration, onExpire func()) *Session {
	return &Session{
		state:     Inactive,
		remaining: int(duration.Seconds()),
		interval:  time.Second,
		onExpire:  onExpire,
		stop:      make(chan struct{}),
	}
}

// Start transitions Inactive → Active and begins the once-per-second
// countdown. Starting a session twice, or starting an expired one, is a
// no-op.
func (s *Session) Start() {
	s.mu.Lock()
	if s.state != Inactive {
		s.mu.Unlock()
		return
	}
	s.state = Active
	s.mu.Unlock()

	go s.run()
}

func (s *Session) run() {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-t.C:
			if !s.Tick() {
				return
			}
		}
	}
}

// Tick decrements the counter by one second. When it reaches zero the
// session transitions to Expired and the expiry callback fires, exactly
// once. Ticks after Expired (or before Start) do nothing. It reports
// whether the session is still Active.
func (s *Session) Tick() bool {
	s.mu.Lock()
	if s.state != Active {
		s.mu.Unlock()
		return false
	}

	s.remaining--
	if s.remaining > 0 {
		s.mu.Unlock()
		return true
	}

	s.remaining = 0
	s.state = Expired
	cb := s.onExpire
	s.mu.Unlock()

	s.halt()
	if cb != nil {
		cb()
	}
	return false
}

// Logout expires the session without firing the expiry callback and
// deterministically halts the ticker goroutine. Safe to call more than once.
func (s *Session) Logout() {
	s.mu.Lock()
	if s.state == Expired {
		s.mu.Unlock()
		return
	}
	s.state = Expired
	s.mu.Unlock()

	s.halt()
}

func (s *Session) halt() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Remaining returns the seconds left on the countdown.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
