package main

import (
	"net/http"
	"testing"

	"github.com/dealercoach/dealercoach/internal/auth"
	"github.com/dealercoach/dealercoach/internal/funnel"
	"github.com/dealercoach/dealercoach/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteWorkflow(t *testing.T) {
	t.Parallel()
	server := startTestServer(t, testLookupEnv(nil))
	managerToken := mintToken(t, "manager-1", auth.RoleManager)

	type invitedResponse struct {
		Invited bool `json:"invited"`
	}

	// check-invite is public: no token needed.
	resp := server.do(t, http.MethodPost, "/api/check-invite", "", map[string]any{
		"email": "new.hire@example.com",
	})
	var invited invitedResponse
	decode(t, resp, &invited)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, invited.Invited)

	resp = server.do(t, http.MethodPost, "/api/send-invite", managerToken, map[string]any{
		"email": "New.Hire@Example.com",
	})
	var sent struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decode(t, resp, &sent)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, sent.Success)

	// Case-insensitive match.
	resp = server.do(t, http.MethodPost, "/api/check-invite", "", map[string]any{
		"email": "NEW.HIRE@example.com",
	})
	decode(t, resp, &invited)
	assert.True(t, invited.Invited)

	// The manager sees the recorded invitation, lowercased.
	resp = server.do(t, http.MethodGet, "/api/invitations", managerToken, nil)
	var invitations []models.Invitation
	decode(t, resp, &invitations)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, invitations, 1)
	assert.Equal(t, "new.hire@example.com", invitations[0].Email)
	assert.Equal(t, "manager-1", invitations[0].InvitedBy)

	// Missing email is a validation error.
	resp = server.do(t, http.MethodPost, "/api/check-invite", "", map[string]any{"email": "  "})
	drain(t, resp, http.StatusBadRequest)
	resp = server.do(t, http.MethodPost, "/api/send-invite", managerToken, map[string]any{"email": "not-an-email"})
	drain(t, resp, http.StatusBadRequest)
}

func TestManagerGates(t *testing.T) {
	t.Parallel()
	server := startTestServer(t, testLookupEnv(nil))
	salesToken := mintToken(t, "sales-1", auth.RoleSalesperson)

	resp := server.do(t, http.MethodPost, "/api/send-invite", salesToken, map[string]any{
		"email": "friend@example.com",
	})
	drain(t, resp, http.StatusForbidden)

	resp = server.do(t, http.MethodGet, "/api/team/metrics", salesToken, nil)
	drain(t, resp, http.StatusForbidden)

	resp = server.do(t, http.MethodGet, "/api/invitations", salesToken, nil)
	drain(t, resp, http.StatusForbidden)

	resp = server.do(t, http.MethodGet, "/api/team/metrics", "", nil)
	drain(t, resp, http.StatusUnauthorized)
}

func TestTeamMetrics(t *testing.T) {
	t.Parallel()
	server := startTestServer(t, testLookupEnv(nil))
	managerToken := mintToken(t, "manager-1", auth.RoleManager)
	aliceToken := mintToken(t, "alice", auth.RoleSalesperson)
	bobToken := mintToken(t, "bob", auth.RoleSalesperson)

	resp := server.do(t, http.MethodPost, "/api/leads", aliceToken, map[string]any{
		"name": "Buyer", "source": "internet", "status": "sold",
	})
	drain(t, resp, http.StatusCreated)
	resp = server.do(t, http.MethodPut, "/api/walk-ins", bobToken, funnel.WalkIn{Visits: 4, Sales: 2})
	drain(t, resp, http.StatusOK)

	resp = server.do(t, http.MethodGet, "/api/team/metrics", managerToken, nil)
	var body struct {
		Team []teamMemberMetrics `json:"team"`
	}
	decode(t, resp, &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	metricsByUser := map[string]funnel.Metrics{}
	for _, member := range body.Team {
		metricsByUser[member.UserID] = member.Metrics
	}

	alice, ok := metricsByUser["alice"]
	require.True(t, ok)
	assert.Equal(t, 1, alice.Internet.Sales)
	assert.Equal(t, "100.0", alice.Conversion)

	// Bob has walk-in counters but no leads and still appears.
	bob, ok := metricsByUser["bob"]
	require.True(t, ok)
	assert.Equal(t, 2, bob.TotalSales)
	assert.Equal(t, 4, bob.WalkIn.Visits)
	assert.Equal(t, "50.0", bob.CloseRate)
}
