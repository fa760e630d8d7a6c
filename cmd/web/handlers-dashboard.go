package main

import (
	"net/http"
	"sort"
	"time"

	"github.com/dealercoach/dealercoach/internal/contexthelpers"
	"github.com/dealercoach/dealercoach/internal/funnel"
	"github.com/dealercoach/dealercoach/internal/models"
)

const recentSessionLimit = 10

type sessionSummary struct {
	ID              string    `json:"id"`
	ChecklistID     string    `json:"checklistId"`
	PersonaID       string    `json:"personaId"`
	OverallScore    int       `json:"overallScore"`
	DurationSeconds int       `json:"durationSeconds"`
	CreatedAt       time.Time `json:"createdAt"`
}

func summarizeSessions(sessions []models.TrainingSession) []sessionSummary {
	summaries := make([]sessionSummary, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, sessionSummary{
			ID:              session.ID,
			ChecklistID:     session.ChecklistID,
			PersonaID:       session.PersonaID,
			OverallScore:    session.OverallScore,
			DurationSeconds: session.DurationSeconds,
			CreatedAt:       session.CreatedAt,
		})
	}
	return summaries
}

// dashboard assembles the tracking view: funnel metrics, pace against the
// monthly goal, and recent training scores. Everything is computed on the
// fly from the stored leads and counters, nothing is cached.
func (app *application) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := contexthelpers.AuthenticatedUserID(ctx)

	leads, err := app.leads.List(ctx, userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	walkIn, err := app.goals.WalkIn(ctx, userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	goals, err := app.goals.Goals(ctx, userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	sessions, err := app.sessions.ListRecent(ctx, userID, recentSessionLimit)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	metrics := funnel.ComputeMetrics(leads, walkIn)
	now := time.Now()
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	pace := funnel.ComputePace(metrics.TotalSales, goals.Sales, now.Day(), daysInMonth, app.paceWarnThreshold)

	app.writeJSON(w, r, http.StatusOK, struct {
		Metrics        funnel.Metrics   `json:"metrics"`
		Pace           funnel.Pace      `json:"pace"`
		Goals          funnel.Goals     `json:"goals"`
		WalkIns        funnel.WalkIn    `json:"walkIns"`
		RecentSessions []sessionSummary `json:"recentSessions"`
	}{
		Metrics:        metrics,
		Pace:           pace,
		Goals:          goals,
		WalkIns:        walkIn,
		RecentSessions: summarizeSessions(sessions),
	})
}

type teamMemberMetrics struct {
	UserID  string         `json:"userId"`
	Metrics funnel.Metrics `json:"metrics"`
}

// teamMetrics reports every team member's funnel metrics. Managers only.
func (app *application) teamMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counters, err := app.leads.TeamCounters(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	walkIns, err := app.goals.AllWalkIns(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	// A member with walk-in counters but no leads still shows up.
	members := map[string]funnel.TeamMemberCounters{}
	for userID, c := range counters {
		members[userID] = c
	}
	for userID, walkIn := range walkIns {
		c := members[userID]
		c.WalkInVisits = walkIn.Visits
		c.WalkInSales = walkIn.Sales
		members[userID] = c
	}

	team := make([]teamMemberMetrics, 0, len(members))
	for userID, c := range members {
		team = append(team, teamMemberMetrics{
			UserID:  userID,
			Metrics: funnel.ComputeTeamMemberMetrics(c),
		})
	}
	sort.Slice(team, func(i, j int) bool { return team[i].UserID < team[j].UserID })

	app.writeJSON(w, r, http.StatusOK, struct {
		Team []teamMemberMetrics `json:"team"`
	}{Team: team})
}
