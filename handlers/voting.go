// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/db"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotingHandler(dbConn *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: dbConn, cfg: cfg}
}

// CastVote handles POST /movies/{id}/vote
//
// The count increment and the vote record are one transaction: either
// both persist or neither does. The composite primary key on votes is
// the backstop for two requests racing on the same (username, movie)
// pair - exactly one insert commits, the other maps to the same
// already-voted response as the sequential case.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Movie not found")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Username required")
		return
	}

	if !requireClaimedUser(w, r, h.cfg, req.Username) {
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Voting failed")
		return
	}
	defer tx.Rollback()

	// Increment first: a zero-row update means the movie does not exist,
	// and the rollback discards nothing.
	res, err := tx.Exec(`
		UPDATE movies SET votes = votes + 1 WHERE id = $1
	`, movieID)
	if err != nil {
		slog.Error("failed to increment vote count", "error", err, "movie_id", movieID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Voting failed")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Voting failed")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Movie not found")
		return
	}

	_, err = tx.Exec(`
		INSERT INTO votes (username, movie_id)
		VALUES ($1, $2)
	`, req.Username, movieID)

	if err != nil {
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Already voted for this movie")
			return
		}
		slog.Error("failed to insert vote", "error", err, "movie_id", movieID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Voting failed")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit vote", "error", err, "movie_id", movieID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Voting failed")
		return
	}

	slog.Info("vote recorded", "movie_id", movieID, "username", req.Username)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Vote recorded",
	})
}
