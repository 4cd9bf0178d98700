package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestThrottle_BlocksAtLimit(t *testing.T) {
	th := newLoginThrottle(3, time.Minute)

	require.False(t, th.Blocked("a@x.com"))

	th.Fail("a@x.com")
	th.Fail("a@x.com")
	require.False(t, th.Blocked("a@x.com"))

	th.Fail("a@x.com")
	require.True(t, th.Blocked("a@x.com"))

	// other emails unaffected
	require.False(t, th.Blocked("b@x.com"))
}

func TestThrottle_WindowExpires(t *testing.T) {
	th := newLoginThrottle(2, time.Minute)

	now := time.Unix(1000, 0)
	th.now = func() time.Time { return now }

	th.Fail("a@x.com")
	th.Fail("a@x.com")
	require.True(t, th.Blocked("a@x.com"))

	now = now.Add(2 * time.Minute)
	require.False(t, th.Blocked("a@x.com"), "attempts outside the window must not count")

	// and a new failure starts a fresh window
	th.Fail("a@x.com")
	require.False(t, th.Blocked("a@x.com"))
}

func TestThrottle_ResetClears(t *testing.T) {
	th := newLoginThrottle(2, time.Minute)

	th.Fail("a@x.com")
	th.Fail("a@x.com")
	require.True(t, th.Blocked("a@x.com"))

	th.Reset("a@x.com")
	require.False(t, th.Blocked("a@x.com"))
}
