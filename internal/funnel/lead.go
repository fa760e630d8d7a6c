// Package funnel models the sales funnel and derives the performance metrics
// shown on the tracking dashboard. Everything in this package is a pure
// function over in-memory data; metrics are recomputed on every query and
// never stored.
package funnel

// Source is where a lead came from.
type Source string

const (
	SourceInternet Source = "internet"
	SourcePhone    Source = "phone"
	SourceWalkIn   Source = "walk-in"
)

// Status is a lead's position in the funnel. The funnel reads
// lead → appt-set → showed → sold, with lost reachable from any non-sold
// status. Transitions are deliberately unconstrained: any status may be set
// at any time.
type Status string

const (
	StatusLead     Status = "lead"
	StatusApptSet  Status = "appt-set"
	StatusShowed   Status = "showed"
	StatusSold     Status = "sold"
	StatusLost     Status = "lost"
)

// ValidSource reports whether s is a known lead source.
func ValidSource(s Source) bool {
	switch s {
	case SourceInternet, SourcePhone, SourceWalkIn:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known funnel status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusLead, StatusApptSet, StatusShowed, StatusSold, StatusLost:
		return true
	}
	return false
}

// Lead is a single tracked opportunity. Walk-in traffic is tracked through the
// aggregate WalkIn counters rather than individual leads.
type Lead struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Source Source `json:"source"`
	Status Status `json:"status"`
}

// WalkIn holds the aggregate walk-in traffic counters.
type WalkIn struct {
	Visits int `json:"visits"`
	Sales  int `json:"sales"`
}

// Goals are the per-user monthly targets. Rates are percentages.
type Goals struct {
	Sales         int     `json:"sales"`
	ShowRate      float64 `json:"showRate"`
	CloseRate     float64 `json:"closeRate"`
	InternetLeads int     `json:"internetLeads"`
	PhoneLeads    int     `json:"phoneLeads"`
	WalkIns       int     `json:"walkIns"`
}
