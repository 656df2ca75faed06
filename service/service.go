// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/danielhkuo/upvote/auth"
	"github.com/danielhkuo/upvote/models"
	"github.com/danielhkuo/upvote/store"
)

// Service implements accounts, feature submission and voting.
// It holds no mutable state; the database is the only shared resource.
type Service struct {
	store  *store.Store
	tokens *auth.TokenIssuer
	hasher auth.PasswordHasher
}

func New(db store.DBTX, tokens *auth.TokenIssuer, hasher auth.PasswordHasher) *Service {
	return &Service{
		store:  store.New(db),
		tokens: tokens,
		hasher: hasher,
	}
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func requireCredentials(email, password string) error {
	if email == "" || password == "" {
		return newError(ErrInvalidInput, "Email and password are required", nil)
	}
	return nil
}

// validateCredentials applies the registration rules on top of
// requireCredentials. Login only requires both fields to be present.
func validateCredentials(email, password string) error {
	if err := requireCredentials(email, password); err != nil {
		return err
	}
	if !strings.Contains(email, "@") {
		return newError(ErrInvalidInput, "Invalid email address", nil)
	}
	return nil
}

// Register creates an account and returns a token for it.
// The users.email unique index decides conflicts, so two concurrent
// registrations of one address yield exactly one account.
func (s *Service) Register(ctx context.Context, email, password string) (models.AuthResult, error) {
	email = NormalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return models.AuthResult{}, err
	}

	hash, err := s.hasher.Hash(password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return models.AuthResult{}, newError(ErrInvalidInput, "Password must be at most 72 bytes", err)
	}
	if err != nil {
		return models.AuthResult{}, newError(ErrInternal, "Failed to register user", err)
	}

	user, err := s.store.CreateUser(ctx, email, hash)
	if errors.Is(err, store.ErrDuplicate) {
		return models.AuthResult{}, newError(ErrConflict, "Email is already registered", err)
	}
	if err != nil {
		return models.AuthResult{}, newError(ErrStore, "Failed to register user", err)
	}

	return s.issue(user.ID, user.Email)
}

// Login checks the password against the stored hash and returns a token.
func (s *Service) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	email = NormalizeEmail(email)
	if err := requireCredentials(email, password); err != nil {
		return models.AuthResult{}, err
	}

	user, err := s.store.UserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return models.AuthResult{}, newError(ErrNotFound, "User not found", err)
	}
	if err != nil {
		return models.AuthResult{}, newError(ErrStore, "Database error", err)
	}

	err = s.hasher.Compare(user.PasswordHash, password)
	if errors.Is(err, auth.ErrPasswordMismatch) {
		return models.AuthResult{}, newError(ErrUnauthorized, "Incorrect password", err)
	}
	if err != nil {
		return models.AuthResult{}, newError(ErrInternal, "Failed to log in", err)
	}

	return s.issue(user.ID, user.Email)
}

func (s *Service) issue(userID int64, email string) (models.AuthResult, error) {
	token, err := s.tokens.Issue(userID, email)
	if err != nil {
		return models.AuthResult{}, newError(ErrInternal, "Failed to issue token", err)
	}
	return models.AuthResult{
		Identity: models.Identity{UserID: userID, Email: email},
		Token:    token,
	}, nil
}

// Authenticate resolves a credential token to the identity it was issued for.
func (s *Service) Authenticate(token string) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, newError(ErrUnauthorized, "Access token missing", nil)
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return models.Identity{}, newError(ErrUnauthorized, "Invalid or expired token", err)
	}
	return models.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

// CreateFeature stores a feature request by authorID and returns its id.
// Duplicate titles are allowed.
func (s *Service) CreateFeature(ctx context.Context, authorID int64, title, description string) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, newError(ErrInvalidInput, "Feature title is required", nil)
	}

	feature, err := s.store.CreateFeature(ctx, authorID, title, strings.TrimSpace(description))
	if errors.Is(err, store.ErrUnknownUser) {
		return 0, newError(ErrUnauthorized, "Invalid or expired token", err)
	}
	if err != nil {
		return 0, newError(ErrStore, "Failed to submit feature", err)
	}
	return feature.ID, nil
}

// Upvote records one vote by userID for featureID.
// Returns ErrNotFound for an unknown feature and ErrAlreadyVoted when the
// user has voted for it before, including when the earlier vote is a
// concurrent request that committed first. A token whose user no longer
// exists is ErrUnauthorized.
func (s *Service) Upvote(ctx context.Context, userID, featureID int64) error {
	err := s.store.AddVote(ctx, userID, featureID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return newError(ErrNotFound, "Feature not found", err)
	case errors.Is(err, store.ErrDuplicate):
		return newError(ErrAlreadyVoted, "User has already upvoted this feature", err)
	case errors.Is(err, store.ErrUnknownUser):
		return newError(ErrUnauthorized, "Invalid or expired token", err)
	default:
		return newError(ErrStore, "Failed to register vote", err)
	}
}

// ListFeatures returns all features, newest first, with vote counts and
// whether userID voted for each. Computed from the ledger on every call.
func (s *Service) ListFeatures(ctx context.Context, userID int64) ([]models.FeatureView, error) {
	features, err := s.store.ListFeatures(ctx, userID)
	if err != nil {
		return nil, newError(ErrStore, "Failed to retrieve features", err)
	}
	return features, nil
}
