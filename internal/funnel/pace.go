package funnel

import "math"

// DefaultWarnThreshold is the sales deficit at which pace flips from warning
// to behind.
const DefaultWarnThreshold = 2

// PaceStatus classifies the gap between actual and expected sales pace.
type PaceStatus string

const (
	PaceOnTrack PaceStatus = "on-track"
	PaceWarning PaceStatus = "warning"
	PaceBehind  PaceStatus = "behind"
)

// Pace projects month-end sales from the current run rate against a goal.
type Pace struct {
	Expected  int        `json:"expected"`
	Projected int        `json:"projected"`
	Gap       int        `json:"gap"`
	Status    PaceStatus `json:"status"`
}

// ComputePace compares current sales to the pro-rated goal for the day of the
// month. warnThreshold is the deficit tolerated before status turns behind;
// pass DefaultWarnThreshold unless configured otherwise. Day zero projects the
// current sales unchanged.
func ComputePace(currentSales, goalSales, dayOfMonth, daysInMonth, warnThreshold int) Pace {
	expected := 0
	if daysInMonth > 0 {
		expected = int(math.Round(float64(goalSales) * float64(dayOfMonth) / float64(daysInMonth)))
	}

	projected := currentSales
	if daysInMonth > 0 && dayOfMonth > 0 {
		projected = int(math.Round(float64(currentSales) * float64(daysInMonth) / float64(dayOfMonth)))
	}

	gap := currentSales - expected

	status := PaceOnTrack
	switch {
	case gap >= 0:
		status = PaceOnTrack
	case gap >= -warnThreshold:
		status = PaceWarning
	default:
		status = PaceBehind
	}

	return Pace{
		Expected:  expected,
		Projected: projected,
		Gap:       gap,
		Status:    status,
	}
}
