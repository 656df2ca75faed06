// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Upvote API.

# Handler Types

Each handler is a struct holding the domain service:

  - AuthHandler: account registration and login
  - FeatureHandler: feature listing, submission and upvotes

	svc := service.New(db, tokens, hasher)
	authHandler := handlers.NewAuthHandler(svc)

# Endpoints

	POST /api/register              → Register (returns token)
	POST /api/login                 → Login (returns token)
	GET  /api/features              → List
	POST /api/features              → Create (returns featureId)
	POST /api/features/{id}/upvote  → Upvote

Feature routes expect middleware.RequireAuth in front of them.

# Errors

Service errors are mapped to statuses by kind:

	invalid input, already voted  → 400
	unauthorized                  → 401
	not found                     → 404
	conflict                      → 409
	store or internal failure     → 500

Bodies are {"error": "<message>"}. Store failures are logged with their
cause and answered with a generic message.
*/
package handlers
