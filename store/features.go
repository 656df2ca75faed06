// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/danielhkuo/upvote/db"
	"github.com/danielhkuo/upvote/models"
)

// CreateFeature inserts a feature and returns it with its assigned id.
// Returns ErrUnknownUser when authorID has no users row.
func (s *Store) CreateFeature(ctx context.Context, authorID int64, title, description string) (models.Feature, error) {
	feature := models.Feature{
		Title:       title,
		Description: description,
		AuthorID:    authorID,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO features (title, description, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, feature.Title, feature.Description, feature.AuthorID, feature.CreatedAt).Scan(&feature.ID)
	if db.IsForeignKeyViolation(err) {
		return models.Feature{}, ErrUnknownUser
	}
	if err != nil {
		return models.Feature{}, fmt.Errorf("insert feature: %w", err)
	}

	return feature, nil
}

// ListFeatures returns every feature, newest first, with its vote count and
// whether viewerID has voted for it. Counts and flags come from a single
// query so they always describe the same snapshot of the ledger.
func (s *Store) ListFeatures(ctx context.Context, viewerID int64) ([]models.FeatureView, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT f.id, f.title, f.description, f.user_id, f.created_at,
		       COUNT(v.id) AS vote_count,
		       COALESCE(MAX(CASE WHEN v.user_id = $1 THEN 1 ELSE 0 END), 0) AS voted
		FROM features f
		LEFT JOIN votes v ON v.feature_id = f.id
		GROUP BY f.id, f.title, f.description, f.user_id, f.created_at
		ORDER BY f.created_at DESC, f.id DESC
	`, viewerID)
	if err != nil {
		return nil, fmt.Errorf("query features: %w", err)
	}
	defer rows.Close()

	features := make([]models.FeatureView, 0)
	for rows.Next() {
		var f models.FeatureView
		var voted int64
		if err := rows.Scan(&f.ID, &f.Title, &f.Description, &f.AuthorID, &f.CreatedAt, &f.VoteCount, &voted); err != nil {
			return nil, fmt.Errorf("scan feature: %w", err)
		}
		f.VotedByUser = voted == 1
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate features: %w", err)
	}

	return features, nil
}
