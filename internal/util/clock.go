package util

import "time"

// Clock abstracts time to keep the event loop deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock, keeping the monotonic reading.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
