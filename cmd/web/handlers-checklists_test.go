package main

import (
	"net/http"
	"testing"

	"github.com/dealercoach/dealercoach/internal/auth"
	"github.com/dealercoach/dealercoach/internal/checklist"
	"github.com/dealercoach/dealercoach/internal/personas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPersonas(t *testing.T) {
	t.Parallel()
	server := startTestServer(t, testLookupEnv(nil))
	token := mintToken(t, "sales-1", auth.RoleSalesperson)

	resp := server.do(t, http.MethodGet, "/api/personas", token, nil)
	var list []personas.Persona
	decode(t, resp, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, list)
	for _, persona := range list {
		assert.NotEmpty(t, persona.ID)
		assert.NotEmpty(t, persona.Voice)
		// System prompts stay server-side.
		assert.Empty(t, persona.SystemPrompt)
	}
}

func TestChecklists(t *testing.T) {
	t.Parallel()
	server := startTestServer(t, testLookupEnv(nil))
	token := mintToken(t, "sales-1", auth.RoleSalesperson)

	resp := server.do(t, http.MethodGet, "/api/checklists", token, nil)
	var list []checklist.Dictionary
	decode(t, resp, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 4)

	resp = server.do(t, http.MethodGet, "/api/checklists/trade-appraisal", token, nil)
	var dictionary checklist.Dictionary
	decode(t, resp, &dictionary)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "trade-appraisal", dictionary.ID)
	assert.Len(t, dictionary.Items, 17)

	resp = server.do(t, http.MethodGet, "/api/checklists/no-such-list", token, nil)
	var body errorResponse
	decode(t, resp, &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, body.Error)
}

func TestScanChecklist(t *testing.T) {
	t.Parallel()
	server := startTestServer(t, testLookupEnv(nil))
	token := mintToken(t, "sales-1", auth.RoleSalesperson)

	type scanResponse struct {
		State    checklist.State `json:"state"`
		Progress int             `json:"progress"`
	}

	resp := server.do(t, http.MethodPost, "/api/checklists/cna/scan", token, map[string]any{
		"turns": []checklist.Turn{
			{Role: checklist.RoleUser, Content: "Welcome in! My name is Alex, nice to meet you."},
		},
		"state": map[string]bool{},
	})
	var first scanResponse
	decode(t, resp, &first)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Positive(t, first.Progress)

	// Completion is monotonic: re-scanning with unrelated turns keeps
	// previously completed items.
	resp = server.do(t, http.MethodPost, "/api/checklists/cna/scan", token, map[string]any{
		"turns": []checklist.Turn{{Role: checklist.RoleUser, Content: "hmm"}},
		"state": first.State,
	})
	var second scanResponse
	decode(t, resp, &second)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.GreaterOrEqual(t, second.Progress, first.Progress)
	for id, done := range first.State {
		if done {
			assert.True(t, second.State[id], "item %s lost completion", id)
		}
	}

	resp = server.do(t, http.MethodPost, "/api/checklists/no-such-list/scan", token, map[string]any{})
	drain(t, resp, http.StatusNotFound)
}
