// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types.

# Request Types

  - CredentialsRequest: body of POST /register and POST /login
  - CreateFeatureRequest: body of POST /features

# Response Types

  - TokenResponse: {"token": "..."}
  - CreateFeatureResponse: {"message": "...", "featureId": 1}
  - ListFeaturesResponse: {"features": [...]}
  - MessageResponse: {"message": "..."}
  - ErrorResponse: {"error": "..."}

# Domain Types

User, Feature and FeatureView mirror the users and features tables.
FeatureView adds the derived voteCount and votedByUser fields, which are
computed on every read and never stored.

User.PasswordHash has the json:"-" tag and is never serialized.
*/
package models
