// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Upvote API.

# Route Registration

NewRouter builds the service from the configuration and returns the
complete handler (Recover, CORS, then the mux):

	handler := router.NewRouter(db, cfg)

NewMux registers the routes against an existing service, which tests use
directly.

# Endpoints

Health and banner:

	GET /health
	GET /

Accounts (public):

	POST /api/register - Create account, returns token
	POST /api/login    - Exchange credentials for token

Features (requires Authorization: Bearer <token>):

	GET  /api/features             - List with vote counts
	POST /api/features             - Submit a feature request
	POST /api/features/{id}/upvote - Vote once for a feature

Other requests under /api get a JSON error: 405 with an Allow header when
the path exists under another method, 404 otherwise.
*/
package router
