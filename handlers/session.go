// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/movie-night/auth"
	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/middleware"
)

// requireClaimedUser checks the optional session token against the
// username the request body claims. A present token must be valid and
// issued for that username. A missing token passes unless RequireAuth
// is set. Writes the error response and returns false on rejection.
func requireClaimedUser(w http.ResponseWriter, r *http.Request, cfg cliparse.Config, claimed string) bool {
	token := middleware.BearerToken(r)
	if token == "" {
		if cfg.RequireAuth {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Session token required")
			return false
		}
		// Original trust model: the claimed username is taken at face value
		return true
	}

	subject, err := auth.UsernameFromToken(token, []byte(cfg.SessionSecret))
	if err != nil || subject != claimed {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session")
		return false
	}

	return true
}
