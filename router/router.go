// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/danielhkuo/upvote/auth"
	"github.com/danielhkuo/upvote/cliparse"
	"github.com/danielhkuo/upvote/handlers"
	"github.com/danielhkuo/upvote/middleware"
	"github.com/danielhkuo/upvote/service"
)

const Banner = "upvote API v1"

// NewRouter wires the service and handlers and returns the full handler
// chain: panic recovery, CORS, then the route table.
func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	svc := service.New(db,
		auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		auth.NewBcryptHasher(cfg.BcryptCost),
	)

	return middleware.Recover(middleware.CORS(NewMux(svc)))
}

// NewMux registers every route against svc
func NewMux(svc *service.Service) *http.ServeMux {
	mux := http.NewServeMux()

	authHandler := handlers.NewAuthHandler(svc)
	featureHandler := handlers.NewFeatureHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts (public)
	mux.HandleFunc("POST /api/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /api/login", middleware.WithLogging(authHandler.Login))

	// Features (bearer token)
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(svc, h))
	}
	mux.HandleFunc("GET /api/features", protected(featureHandler.List))
	mux.HandleFunc("POST /api/features", protected(featureHandler.Create))
	mux.HandleFunc("POST /api/features/{id}/upvote", protected(featureHandler.Upvote))

	// Anything else under /api answers in JSON
	mux.HandleFunc("/api/", apiFallback(mux))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	return mux
}

// apiFallback answers requests no API route took. A path registered under
// another method gets 405 with an Allow header, anything else 404.
func apiFallback(mux *http.ServeMux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range []string{http.MethodGet, http.MethodPost} {
			if method == r.Method {
				continue
			}
			alt := r.Clone(r.Context())
			alt.Method = method
			if _, pattern := mux.Handler(alt); pattern != "" && pattern != "/api/" {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			middleware.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	}
}
