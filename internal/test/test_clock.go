package test

import (
	"time"

	"github.com/dropbox/godropbox/time2"
)

// NewTestClock returns a mock clock frozen at the current wall time.
//
//nolint:ireturn
func NewTestClock() time2.Clock {
	return time2.NewMockClock(time.Now())
}
