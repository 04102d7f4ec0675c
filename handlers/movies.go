// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
)

type MovieHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewMovieHandler(dbConn *sql.DB, cfg cliparse.Config) *MovieHandler {
	return &MovieHandler{db: dbConn, cfg: cfg}
}

// ListMovies handles GET /movies
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	// Secondary sort on id keeps equal vote counts in submission order,
	// so the listing is stable across requests.
	rows, err := h.db.Query(`
		SELECT id, title, description, username, votes
		FROM movies
		ORDER BY votes DESC, id ASC
	`)
	if err != nil {
		slog.Error("failed to query movies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch movies")
		return
	}
	defer rows.Close()

	movies := []models.Movie{}
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.Username, &m.Votes); err != nil {
			slog.Error("failed to scan movie", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch movies")
			return
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate movies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch movies")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, movies)
}

// AddMovie handles POST /movies
func (h *MovieHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	var req models.AddMovieRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" || req.Description == "" || req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if !requireClaimedUser(w, r, h.cfg, req.Username) {
		return
	}

	// The username is a soft reference: it is not checked against the
	// users table, matching the service's trust model.
	_, err := h.db.Exec(`
		INSERT INTO movies (title, description, username, votes)
		VALUES ($1, $2, $3, 0)
	`, req.Title, req.Description, req.Username)

	if err != nil {
		slog.Error("failed to insert movie", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add movie")
		return
	}

	slog.Info("movie added", "title", req.Title, "username", req.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Movie added successfully",
	})
}
