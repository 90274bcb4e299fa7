package tui

import "errors"

var (
	// ErrTerminalClosed is returned by the backend once the terminal program
	// has stopped without an error of its own.
	ErrTerminalClosed = errors.New("terminal closed")
	ErrNotStarted     = errors.New("terminal not started")
)
