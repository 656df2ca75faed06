// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and credential tokens.

# Passwords

Passwords are stored as salted bcrypt hashes:

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	hash, err := hasher.Hash(password)
	err = hasher.Compare(hash, candidate) // ErrPasswordMismatch on failure

Compare uses bcrypt's constant-time comparison. Passwords longer than
72 bytes are rejected with ErrPasswordTooLong.

# Credential Tokens

Tokens are HS256 JWTs carrying the user id and normalized email:

	issuer := auth.NewTokenIssuer(secret, 24*time.Hour)
	token, err := issuer.Issue(userID, email)
	claims, err := issuer.Verify(token)

Verify rejects other signing methods, tokens without an expiry, and tokens
signed with a different secret (ErrInvalidToken). Expired tokens return
ErrTokenExpired. Every token gets a random jti.
*/
package auth
