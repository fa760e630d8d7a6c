package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dealercoach/dealercoach/internal/auth"
	"github.com/dealercoach/dealercoach/internal/funnel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadLifecycle(t *testing.T) {
	t.Parallel()
	server := startTestServer(t, testLookupEnv(nil))
	token := mintToken(t, "sales-1", auth.RoleSalesperson)

	resp := server.do(t, http.MethodGet, "/api/leads", token, nil)
	var leads []funnel.Lead
	decode(t, resp, &leads)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, leads)

	resp = server.do(t, http.MethodPost, "/api/leads", token, map[string]any{
		"name":   "John Smith",
		"source": "internet",
	})
	var created funnel.Lead
	decode(t, resp, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotZero(t, created.ID)
	assert.Equal(t, funnel.StatusLead, created.Status)

	// Status jumps straight to sold; transitions are unconstrained.
	resp = server.do(t, http.MethodPatch, fmt.Sprintf("/api/leads/%d", created.ID), token, map[string]any{
		"status": "sold",
	})
	var updated funnel.Lead
	decode(t, resp, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, funnel.StatusSold, updated.Status)
	assert.Equal(t, "John Smith", updated.Name)

	// Another user's token cannot see or touch the lead.
	otherToken := mintToken(t, "sales-2", auth.RoleSalesperson)
	resp = server.do(t, http.MethodGet, "/api/leads", otherToken, nil)
	decode(t, resp, &leads)
	assert.Empty(t, leads)
	resp = server.do(t, http.MethodDelete, fmt.Sprintf("/api/leads/%d", created.ID), otherToken, nil)
	drain(t, resp, http.StatusNotFound)

	resp = server.do(t, http.MethodDelete, fmt.Sprintf("/api/leads/%d", created.ID), token, nil)
	drain(t, resp, http.StatusNoContent)
}

func TestLeadValidation(t *testing.T) {
	t.Parallel()
	server := startTestServer(t, testLookupEnv(nil))
	token := mintToken(t, "sales-1", auth.RoleSalesperson)

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{name: "missing name", payload: map[string]any{"source": "internet"}},
		{name: "bad source", payload: map[string]any{"name": "X", "source": "carrier-pigeon"}},
		{name: "bad status", payload: map[string]any{"name": "X", "source": "phone", "status": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := server.do(t, http.MethodPost, "/api/leads", token, tt.payload)
			drain(t, resp, http.StatusBadRequest)
		})
	}

	resp := server.do(t, http.MethodPatch, "/api/leads/not-a-number", token, map[string]any{})
	drain(t, resp, http.StatusBadRequest)
	resp = server.do(t, http.MethodPatch, "/api/leads/999", token, map[string]any{"status": "sold"})
	drain(t, resp, http.StatusNotFound)
}

func TestGoalsAndWalkIns(t *testing.T) {
	t.Parallel()
	server := startTestServer(t, testLookupEnv(nil))
	token := mintToken(t, "sales-1", auth.RoleSalesperson)

	resp := server.do(t, http.MethodGet, "/api/goals", token, nil)
	var goals funnel.Goals
	decode(t, resp, &goals)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, goals.Sales)

	resp = server.do(t, http.MethodPut, "/api/goals", token, funnel.Goals{
		Sales: 15, ShowRate: 60, CloseRate: 30, InternetLeads: 80, PhoneLeads: 40, WalkIns: 25,
	})
	drain(t, resp, http.StatusOK)

	resp = server.do(t, http.MethodGet, "/api/goals", token, nil)
	decode(t, resp, &goals)
	assert.Equal(t, 15, goals.Sales)
	assert.InDelta(t, 60.0, goals.ShowRate, 0.001)

	resp = server.do(t, http.MethodPut, "/api/goals", token, funnel.Goals{Sales: -1})
	drain(t, resp, http.StatusBadRequest)

	resp = server.do(t, http.MethodPut, "/api/walk-ins", token, funnel.WalkIn{Visits: 10, Sales: 2})
	var walkIn funnel.WalkIn
	decode(t, resp, &walkIn)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, walkIn.Visits)

	resp = server.do(t, http.MethodPut, "/api/walk-ins", token, funnel.WalkIn{Visits: -1})
	drain(t, resp, http.StatusBadRequest)
}

func TestDashboard(t *testing.T) {
	t.Parallel()
	server := startTestServer(t, testLookupEnv(nil))
	token := mintToken(t, "sales-1", auth.RoleSalesperson)

	// One sold internet lead plus walk-in traffic.
	resp := server.do(t, http.MethodPost, "/api/leads", token, map[string]any{
		"name": "Buyer", "source": "internet", "status": "sold",
	})
	drain(t, resp, http.StatusCreated)
	resp = server.do(t, http.MethodPut, "/api/walk-ins", token, funnel.WalkIn{Visits: 3, Sales: 1})
	drain(t, resp, http.StatusOK)
	resp = server.do(t, http.MethodPut, "/api/goals", token, funnel.Goals{Sales: 10})
	drain(t, resp, http.StatusOK)

	resp = server.do(t, http.MethodGet, "/api/dashboard", token, nil)
	var dashboard struct {
		Metrics        funnel.Metrics   `json:"metrics"`
		Pace           funnel.Pace      `json:"pace"`
		Goals          funnel.Goals     `json:"goals"`
		WalkIns        funnel.WalkIn    `json:"walkIns"`
		RecentSessions []sessionSummary `json:"recentSessions"`
	}
	decode(t, resp, &dashboard)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 1, dashboard.Metrics.Internet.Sales)
	assert.Equal(t, 2, dashboard.Metrics.TotalSales)
	assert.Equal(t, 4, dashboard.Metrics.TotalOpportunities)
	assert.Equal(t, "100.0", dashboard.Metrics.ShowRate)
	assert.Equal(t, 10, dashboard.Goals.Sales)
	assert.Equal(t, 3, dashboard.WalkIns.Visits)
	assert.Empty(t, dashboard.RecentSessions)
	assert.Contains(t, []funnel.PaceStatus{funnel.PaceOnTrack, funnel.PaceWarning, funnel.PaceBehind},
		dashboard.Pace.Status)
}
