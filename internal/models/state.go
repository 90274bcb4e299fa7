package models

import "time"

// StateKind tags the active TimerState variant.
type StateKind int

const (
	KindOff StateKind = iota
	KindRunning
	KindPaused
	KindFinished
)

func (k StateKind) String() string {
	switch k {
	case KindOff:
		return "off"
	case KindRunning:
		return "running"
	case KindPaused:
		return "paused"
	case KindFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// TimerState is a closed set of variants. Only the types in this file
// implement it; switches over it panic on anything else.
type TimerState interface {
	Kind() StateKind
	timerState()
}

// Off is a timer that has not been started.
type Off struct{}

// Running is a timer counting down to Completion.
type Running struct {
	Completion time.Time
}

// Paused is a timer halted with Remaining left on it.
type Paused struct {
	Remaining time.Duration
}

// Finished is a timer whose countdown ended at Completed. Notification
// refers to the desktop notification shown at that moment.
type Finished struct {
	Completed    time.Time
	Notification NotificationHandle
}

func (Off) Kind() StateKind      { return KindOff }
func (Running) Kind() StateKind  { return KindRunning }
func (Paused) Kind() StateKind   { return KindPaused }
func (Finished) Kind() StateKind { return KindFinished }

func (Off) timerState()      {}
func (Running) timerState()  {}
func (Paused) timerState()   {}
func (Finished) timerState() {}
