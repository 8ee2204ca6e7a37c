package constants

import "testing"

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		status DocumentStatus
		want   bool
	}{
		{StatusUploaded, false},
		{StatusQueued, false},
		{StatusProcessing, false},
		{StatusProcessed, true},
		{StatusFailed, true},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.want {
			t.Errorf("IsTerminal(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to DocumentStatus
		want     bool
	}{
		{StatusUploaded, StatusQueued, true},
		{StatusUploaded, StatusProcessing, true},
		{StatusQueued, StatusProcessing, true},
		{StatusProcessing, StatusProcessed, true},
		{StatusProcessing, StatusFailed, true},

		{StatusUploaded, StatusProcessed, false},
		{StatusQueued, StatusUploaded, false},
		{StatusProcessed, StatusProcessing, false},
		{StatusProcessed, StatusFailed, false},
		{StatusFailed, StatusProcessing, false},
		{StatusFailed, StatusProcessed, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("CanTransition(%q -> %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestTerminalStatesHaveNoTransitions(t *testing.T) {
	for _, from := range []DocumentStatus{StatusProcessed, StatusFailed} {
		for _, to := range Statuses() {
			if from.CanTransition(DocumentStatus(to)) {
				t.Errorf("terminal state %q must not transition to %q", from, to)
			}
		}
	}
}
