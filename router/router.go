// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	_ "embed"
	"net/http"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/handlers"
	"github.com/danielhkuo/movie-night/middleware"
)

//go:embed index.html
var indexHTML []byte

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(db, cfg)
	movieHandler := handlers.NewMovieHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /register", middleware.WithLogging(accountHandler.Register))
	mux.HandleFunc("POST /login", middleware.WithLogging(accountHandler.Login))

	// Movies
	mux.HandleFunc("GET /movies", middleware.WithLogging(movieHandler.ListMovies))
	mux.HandleFunc("POST /movies", middleware.WithLogging(movieHandler.AddMovie))

	// Voting
	mux.HandleFunc("POST /movies/{id}/vote", middleware.WithLogging(votingHandler.CastVote))

	// Web UI
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})

	return mux
}
