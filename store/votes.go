// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/upvote/db"
)

// AddVote records a vote by userID for featureID.
//
// The feature lookup and the insert are one statement: if the feature does
// not exist nothing is inserted and ErrNotFound is returned. The
// UNIQUE (user_id, feature_id) constraint rejects a second vote with
// ErrDuplicate, so concurrent attempts for the same pair store exactly one row.
// A userID with no users row gives ErrUnknownUser.
func (s *Store) AddVote(ctx context.Context, userID, featureID int64) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO votes (user_id, feature_id)
		SELECT CAST($1 AS BIGINT), f.id FROM features f WHERE f.id = $2
	`, userID, featureID)

	if db.IsUniqueViolation(err) {
		return ErrDuplicate
	}
	if db.IsForeignKeyViolation(err) {
		return ErrUnknownUser
	}
	if err != nil {
		return fmt.Errorf("insert vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert vote: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}
