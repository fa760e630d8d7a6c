package main

import (
	"net/http"
	"strconv"

	"github.com/dealercoach/dealercoach/internal/contexthelpers"
	"github.com/dealercoach/dealercoach/internal/funnel"
)

func (app *application) listLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := app.leads.List(r.Context(), contexthelpers.AuthenticatedUserID(r.Context()))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, leads)
}

func (app *application) createLead(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string        `json:"name"`
		Source funnel.Source `json:"source"`
		Status funnel.Status `json:"status"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		app.clientError(w, r, http.StatusBadRequest, "Name is required")
		return
	}
	if !funnel.ValidSource(req.Source) {
		app.clientError(w, r, http.StatusBadRequest, "Invalid lead source")
		return
	}
	if req.Status == "" {
		req.Status = funnel.StatusLead
	}
	if !funnel.ValidStatus(req.Status) {
		app.clientError(w, r, http.StatusBadRequest, "Invalid lead status")
		return
	}

	lead, err := app.leads.Create(r.Context(),
		contexthelpers.AuthenticatedUserID(r.Context()), req.Name, req.Source, req.Status)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, lead)
}

func (app *application) updateLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, "Invalid lead id")
		return
	}

	var req struct {
		Name   *string        `json:"name"`
		Source *funnel.Source `json:"source"`
		Status *funnel.Status `json:"status"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	if req.Name != nil && *req.Name == "" {
		app.clientError(w, r, http.StatusBadRequest, "Name must not be empty")
		return
	}
	if req.Source != nil && !funnel.ValidSource(*req.Source) {
		app.clientError(w, r, http.StatusBadRequest, "Invalid lead source")
		return
	}
	// Any status can be set at any time; only the value itself is validated.
	if req.Status != nil && !funnel.ValidStatus(*req.Status) {
		app.clientError(w, r, http.StatusBadRequest, "Invalid lead status")
		return
	}

	userID := contexthelpers.AuthenticatedUserID(r.Context())
	if err := app.leads.Update(r.Context(), userID, id, req.Name, req.Source, req.Status); err != nil {
		app.notFoundOrServerError(w, r, err)
		return
	}

	leads, err := app.leads.List(r.Context(), userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	for _, lead := range leads {
		if lead.ID == id {
			app.writeJSON(w, r, http.StatusOK, lead)
			return
		}
	}
	app.clientError(w, r, http.StatusNotFound, "Not found")
}

func (app *application) deleteLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, "Invalid lead id")
		return
	}

	userID := contexthelpers.AuthenticatedUserID(r.Context())
	if err := app.leads.Delete(r.Context(), userID, id); err != nil {
		app.notFoundOrServerError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) updateWalkIns(w http.ResponseWriter, r *http.Request) {
	var req funnel.WalkIn
	if !app.readJSON(w, r, &req) {
		return
	}
	if req.Visits < 0 || req.Sales < 0 {
		app.clientError(w, r, http.StatusBadRequest, "Counters must not be negative")
		return
	}

	userID := contexthelpers.AuthenticatedUserID(r.Context())
	if err := app.goals.UpsertWalkIn(r.Context(), userID, req); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, req)
}

func (app *application) getGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := app.goals.Goals(r.Context(), contexthelpers.AuthenticatedUserID(r.Context()))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, goals)
}

func (app *application) updateGoals(w http.ResponseWriter, r *http.Request) {
	var req funnel.Goals
	if !app.readJSON(w, r, &req) {
		return
	}
	if req.Sales < 0 || req.InternetLeads < 0 || req.PhoneLeads < 0 || req.WalkIns < 0 ||
		req.ShowRate < 0 || req.CloseRate < 0 {
		app.clientError(w, r, http.StatusBadRequest, "Goals must not be negative")
		return
	}

	userID := contexthelpers.AuthenticatedUserID(r.Context())
	if err := app.goals.UpsertGoals(r.Context(), userID, req); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, req)
}
