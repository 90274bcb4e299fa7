package config

import "testing"

func TestConstants(t *testing.T) {
	if DefaultDuration <= 0 {
		t.Fatalf("DefaultDuration must be positive")
	}
	if PollInterval <= 0 {
		t.Fatalf("PollInterval must be positive")
	}
	if PollInterval >= DefaultDuration {
		t.Fatalf("PollInterval %s should be shorter than DefaultDuration %s", PollInterval, DefaultDuration)
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if NotifySummary != "Timer Finished" {
		t.Fatalf("unexpected NotifySummary %q", NotifySummary)
	}
	if MinPanelWidth > DefaultPanelWidth || MinPanelHeight > DefaultPanelHeight {
		t.Fatalf("default panel size must not be below the minimum")
	}
	if KeyBufferSize <= 0 {
		t.Fatalf("KeyBufferSize must be positive")
	}
}
