// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package service holds the account and voting rules on top of the store.

Every failure is a *Error carrying a kind (ErrInvalidInput, ErrConflict,
ErrNotFound, ErrUnauthorized, ErrAlreadyVoted, ErrStore, ErrInternal) and a
message that is safe to return to clients:

	if errors.Is(err, service.ErrAlreadyVoted) {
		// 400
	}
	msg := service.Message(err, "Internal server error")
*/
package service
