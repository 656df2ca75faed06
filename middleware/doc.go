// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Each request gets an id (the inbound X-Request-ID, or a new UUID) that is
echoed in the response and logged with the start line (method, path,
remote) and completion line (status, duration_ms).

# Bearer Authentication

Protected routes are wrapped with RequireAuth:

	mux.HandleFunc("GET /api/features",
		middleware.WithLogging(middleware.RequireAuth(svc, featureHandler.List)))

A missing token or one the Authenticator rejects gets a 401. Handlers read
the caller with IdentityFrom(r.Context()).

# Panic Recovery and CORS

	server := http.Server{
		Handler: middleware.Recover(middleware.CORS(mux)),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message") // {"error": "message"}

	var req models.CredentialsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
