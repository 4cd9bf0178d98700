package services

import (
	"sync"
	"time"
)

// loginThrottle counts failed verifications per email inside a sliding
// window. Once the limit is reached, further attempts for that email are
// rejected until the window passes. State is process-local; the limit
// applies per server instance.
type loginThrottle struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	now    func() time.Time

	attempts map[string]*attemptWindow
}

type attemptWindow struct {
	count int
	start time.Time
}

func newLoginThrottle(limit int, window time.Duration) *loginThrottle {
	return &loginThrottle{
		limit:    limit,
		window:   window,
		now:      time.Now,
		attempts: make(map[string]*attemptWindow),
	}
}

// Blocked reports whether the email has exhausted its attempts.
// The throttle keys on the submitted email whether or not an account exists,
// so it does not reveal registration status.
func (t *loginThrottle) Blocked(email string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, ok := t.attempts[email]
	if !ok {
		return false
	}
	if t.now().Sub(w.start) > t.window {
		delete(t.attempts, email)
		return false
	}
	return w.count >= t.limit
}

// Fail records one failed attempt for the email.
func (t *loginThrottle) Fail(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	w, ok := t.attempts[email]
	if !ok || now.Sub(w.start) > t.window {
		t.attempts[email] = &attemptWindow{count: 1, start: now}
		return
	}
	w.count++
}

// Reset clears the attempt window for the email after a successful login.
func (t *loginThrottle) Reset(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.attempts, email)
}
