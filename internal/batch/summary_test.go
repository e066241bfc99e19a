package batch

import (
	"strings"
	"testing"
	"time"
)

func TestSummaryString(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sum := Summary{
		Attempted: 42,
		Stored:    40,
		Failed:    2,
		Started:   started,
		Finished:  started.Add(95 * time.Second),
	}

	got := sum.String()
	if !strings.Contains(got, "attempted 42") ||
		!strings.Contains(got, "stored 40") ||
		!strings.Contains(got, "failed 2") {
		t.Errorf("unexpected summary string %q", got)
	}
	if !strings.Contains(got, "1m 35s") {
		t.Errorf("expected elapsed 1m 35s in %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{42 * time.Second, "42.0s"},
		{95 * time.Second, "1m 35s"},
		{3*time.Hour + 4*time.Minute + 5*time.Second, "3h 4m 5s"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
