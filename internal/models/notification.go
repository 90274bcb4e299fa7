package models

import (
	"math"
	"time"
)

// Timeout is the expiry policy of a notification in milliseconds, using the
// freedesktop convention: -1 lets the server decide, 0 never expires.
type Timeout int32

const (
	TimeoutDefault Timeout = -1
	TimeoutNever   Timeout = 0
)

// TimeoutAfter returns a policy expiring after d. Non-positive durations
// fall back to TimeoutDefault; durations beyond the int32 range saturate.
func TimeoutAfter(d time.Duration) Timeout {
	ms := d.Milliseconds()
	if ms <= 0 {
		return TimeoutDefault
	}
	if ms > math.MaxInt32 {
		return Timeout(math.MaxInt32)
	}
	return Timeout(ms)
}

// Action is a button offered on a notification.
type Action struct {
	Key   string
	Label string
}

// Notification describes a desktop notification to display.
type Notification struct {
	AppName string
	Summary string
	Body    string
	Timeout Timeout
	Actions []Action
}

// NotificationHandle references a notification shown by the desktop.
// The zero value refers to nothing.
type NotificationHandle struct {
	ID uint32
}

// Valid reports whether the handle refers to a shown notification.
func (h NotificationHandle) Valid() bool {
	return h.ID != 0
}
