// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/upvote/middleware"
	"github.com/danielhkuo/upvote/models"
	"github.com/danielhkuo/upvote/service"
)

// FeatureHandler serves the feature routes. Every route sits behind
// middleware.RequireAuth, so the caller's identity is always in the context.
type FeatureHandler struct {
	svc *service.Service
}

func NewFeatureHandler(svc *service.Service) *FeatureHandler {
	return &FeatureHandler{svc: svc}
}

// caller returns the authenticated identity, answering 401 when there is none
func caller(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Access token missing")
	}
	return id, ok
}

// List handles GET /api/features
func (h *FeatureHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}

	features, err := h.svc.ListFeatures(r.Context(), user.UserID)
	if err != nil {
		writeServiceError(w, r, "list features", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListFeaturesResponse{Features: features})
}

// Create handles POST /api/features
func (h *FeatureHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}

	var req models.CreateFeatureRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	featureID, err := h.svc.CreateFeature(r.Context(), user.UserID, req.Title, req.Description)
	if err != nil {
		writeServiceError(w, r, "create feature", err)
		return
	}

	slog.Info("feature submitted", "feature_id", featureID, "user_id", user.UserID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateFeatureResponse{
		Message:   "Feature submitted successfully",
		FeatureID: featureID,
	})
}

// Upvote handles POST /api/features/{id}/upvote
func (h *FeatureHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}

	featureID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || featureID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Feature ID is required")
		return
	}

	if err := h.svc.Upvote(r.Context(), user.UserID, featureID); err != nil {
		writeServiceError(w, r, "upvote", err)
		return
	}

	slog.Info("vote registered", "feature_id", featureID, "user_id", user.UserID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Vote registered successfully"})
}
