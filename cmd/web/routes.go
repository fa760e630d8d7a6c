package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	authed := alice.New(app.authenticate)
	manager := authed.Append(app.requireManager)

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.HandleFunc("POST /api/check-invite", app.checkInvite)

	mux.Handle("POST /api/chat", authed.ThenFunc(app.chat))
	mux.Handle("POST /api/training-chat", authed.ThenFunc(app.trainingChat))
	mux.Handle("POST /api/evaluate-session", authed.ThenFunc(app.evaluateSession))
	mux.Handle("POST /api/speak", authed.ThenFunc(app.speak))
	mux.Handle("POST /api/transcribe", authed.ThenFunc(app.transcribe))

	mux.Handle("GET /api/personas", authed.ThenFunc(app.listPersonas))
	mux.Handle("GET /api/checklists", authed.ThenFunc(app.listChecklists))
	mux.Handle("GET /api/checklists/{id}", authed.ThenFunc(app.getChecklist))
	mux.Handle("POST /api/checklists/{id}/scan", authed.ThenFunc(app.scanChecklist))

	mux.Handle("GET /api/leads", authed.ThenFunc(app.listLeads))
	mux.Handle("POST /api/leads", authed.ThenFunc(app.createLead))
	mux.Handle("PATCH /api/leads/{id}", authed.ThenFunc(app.updateLead))
	mux.Handle("DELETE /api/leads/{id}", authed.ThenFunc(app.deleteLead))
	mux.Handle("PUT /api/walk-ins", authed.ThenFunc(app.updateWalkIns))
	mux.Handle("GET /api/goals", authed.ThenFunc(app.getGoals))
	mux.Handle("PUT /api/goals", authed.ThenFunc(app.updateGoals))
	mux.Handle("GET /api/dashboard", authed.ThenFunc(app.dashboard))

	mux.Handle("GET /api/team/metrics", manager.ThenFunc(app.teamMetrics))
	mux.Handle("GET /api/invitations", manager.ThenFunc(app.listInvitations))
	mux.Handle("POST /api/send-invite", manager.ThenFunc(app.sendInvite))

	return alice.New(app.recoverPanic, app.logRequest, app.corsHeaders).Then(mux)
}
