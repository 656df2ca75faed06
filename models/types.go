// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateFeatureRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Response types

type TokenResponse struct {
	Token string `json:"token"`
}

type CreateFeatureResponse struct {
	Message   string `json:"message"`
	FeatureID int64  `json:"featureId"`
}

type ListFeaturesResponse struct {
	Features []FeatureView `json:"features"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

type Feature struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// FeatureView is a feature annotated with its vote tally, as seen by one user
type FeatureView struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	VoteCount   int64     `json:"voteCount"`
	VotedByUser bool      `json:"votedByUser"`
}

// Identity is the authenticated caller resolved from a credential token
type Identity struct {
	UserID int64
	Email  string
}

// AuthResult is returned by register and login
type AuthResult struct {
	Identity Identity
	Token    string
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
