// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session token handling.

# Passwords

Passwords are hashed with bcrypt at the default cost:

	hash, err := auth.HashPassword(req.Password)
	...
	if err := auth.CheckPassword(storedHash, req.Password); err != nil {
		// uniform failure, no username enumeration
	}

CheckPassword returns the same ErrInvalidCredentials for a wrong password
as the login handler uses for an unknown username, so the two cases are
indistinguishable to a client.

# Session Tokens

Login issues an HS256 JWT whose subject is the username:

	token, err := auth.GenerateSessionToken(req.Username, secret)

UsernameFromToken validates the signature and expiry and returns the
subject, or ErrInvalidToken for any failure. Tokens expire after
SessionTTL (24 hours).
*/
package auth
