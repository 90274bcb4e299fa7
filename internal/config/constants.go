package config

import "time"

// Timer defaults.
const (
	DefaultDuration = 5 * time.Second
	DefaultLabel    = "Timer"
)

// Loop cadence. PollInterval bounds both input latency and completion detection.
const (
	PollInterval = 100 * time.Millisecond
)

// Notification texts.
const (
	NotifySummary       = "Timer Finished"
	NotifyBodyFormat    = "%s has finished."
	NotifyDismissKey    = "dismiss"
	NotifyDismissLabel  = "Dismiss"
	TestNotifySummary   = "Test Notification"
	TestNotifyBody      = "Notifications are working."
	TestNotifyTimeout   = 5 * time.Second
	NotifyCallTimeout   = 2 * time.Second
	NotifyDismissOnQuit = true
)

// Application settings.
const (
	AppName     = "tock"
	AppTitle    = "Tock"
	LogFileName = "tock.log"
	Version     = "0.1.0"
)
