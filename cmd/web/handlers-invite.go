package main

import (
	"net/http"
	"strings"

	"github.com/dealercoach/dealercoach/internal/contexthelpers"
)

// checkInvite reports whether an email address has been invited. The signup
// flow calls this before the user has a token, so the endpoint is public.
func (app *application) checkInvite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		app.clientError(w, r, http.StatusBadRequest, "Email is required")
		return
	}

	invited, err := app.invitations.Exists(r.Context(), req.Email)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, struct {
		Invited bool `json:"invited"`
	}{Invited: invited})
}

// listInvitations returns every recorded invitation. Managers only.
func (app *application) listInvitations(w http.ResponseWriter, r *http.Request) {
	invitations, err := app.invitations.List(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, invitations)
}

// sendInvite records an invitation for a new team member. Managers only.
func (app *application) sendInvite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		app.clientError(w, r, http.StatusBadRequest, "A valid email is required")
		return
	}

	invitedBy := contexthelpers.AuthenticatedUserID(r.Context())
	if err := app.invitations.Create(r.Context(), email, invitedBy); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{Success: true, Message: "Invitation sent"})
}
