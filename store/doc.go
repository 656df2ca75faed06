// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store runs the SQL for users, features and the vote ledger.
// Queries use $N placeholders, which every supported driver accepts.
package store
