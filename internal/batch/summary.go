package batch

import (
	"fmt"
	"time"
)

// Summary reports the outcome of one batch run. Attempted counts every
// index visited; Stored plus Failed equals Attempted unless the run was
// cancelled mid-batch.
type Summary struct {
	Attempted int
	Stored    int
	Failed    int
	Started   time.Time
	Finished  time.Time
}

// Elapsed returns the wall-clock duration of the run.
func (s Summary) Elapsed() time.Duration {
	return s.Finished.Sub(s.Started)
}

// String renders the summary as a single console line.
func (s Summary) String() string {
	return fmt.Sprintf("attempted %d | stored %d | failed %d | %s",
		s.Attempted, s.Stored, s.Failed, formatDuration(s.Elapsed()))
}

// formatDuration formats a duration as a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
