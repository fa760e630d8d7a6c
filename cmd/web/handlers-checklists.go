package main

import (
	"net/http"

	"github.com/dealercoach/dealercoach/internal/checklist"
	"github.com/dealercoach/dealercoach/internal/personas"
)

func (app *application) listPersonas(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, personas.All())
}

func (app *application) listChecklists(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, checklist.Dictionaries)
}

func (app *application) getChecklist(w http.ResponseWriter, r *http.Request) {
	dictionary, ok := checklist.Lookup(r.PathValue("id"))
	if !ok {
		app.clientError(w, r, http.StatusNotFound, "Unknown checklist")
		return
	}
	app.writeJSON(w, r, http.StatusOK, dictionary)
}

// scanChecklist runs the keyword scanner server-side for thin clients. The
// endpoint is stateless: the client owns the checklist state and sends it
// back on every call.
func (app *application) scanChecklist(w http.ResponseWriter, r *http.Request) {
	dictionary, ok := checklist.Lookup(r.PathValue("id"))
	if !ok {
		app.clientError(w, r, http.StatusNotFound, "Unknown checklist")
		return
	}

	var req struct {
		Turns []checklist.Turn `json:"turns"`
		State checklist.State  `json:"state"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}

	state := checklist.Scan(req.Turns, req.State, dictionary.Items)
	app.writeJSON(w, r, http.StatusOK, struct {
		State    checklist.State `json:"state"`
		Progress int             `json:"progress"`
	}{State: state, Progress: checklist.Progress(state, dictionary.Items)})
}
