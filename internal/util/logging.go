// Package util provides common utilities including logging helpers,
// clock access and file system locations.
package util

import (
	"io"
	"log"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// DiscardLogs silences the standard logger. Used when no log file can be
// opened, since the terminal belongs to the renderer.
func DiscardLogs() {
	log.SetOutput(io.Discard)
}
