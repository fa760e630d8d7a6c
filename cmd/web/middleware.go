package main

import (
	"fmt"
	"net/http"

	"github.com/dealercoach/dealercoach/internal/contexthelpers"
)

// corsHeaders allows the SPA frontend to call the API from any origin. Auth is
// bearer-token based, so a permissive policy does not expose cookies.
func (app *application) corsHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			proto  = r.Proto
			method = r.Method
			uri    = r.URL.RequestURI()
		)

		app.logger.Debug("received request", "proto", proto, "method", method, "uri", uri)

		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// authenticate rejects requests without a valid bearer token. It runs before
// any request parsing or upstream call so an unauthenticated request never
// costs us anything.
func (app *application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := app.verifier.VerifyHeader(r.Header.Get("Authorization"))
		if err != nil {
			app.clientError(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}

		r = contexthelpers.AuthenticateContext(r, claims)
		next.ServeHTTP(w, r)
	})
}

func (app *application) requireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !contexthelpers.IsManager(r.Context()) {
			app.clientError(w, r, http.StatusForbidden, "Manager role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
