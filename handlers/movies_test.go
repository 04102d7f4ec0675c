// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/movie-night/auth"
	"github.com/danielhkuo/movie-night/models"
	"github.com/danielhkuo/movie-night/testutil"
)

func TestAddMovie_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewMovieHandler(db, cfg)

	testutil.CreateTestUser(t, db, "alice", "pw1")

	req := testutil.MakeRequest("POST", "/movies", models.AddMovieRequest{
		Title:       "Inception",
		Description: "dream heist",
		Username:    "alice",
	}, nil)
	w := httptest.NewRecorder()

	h.AddMovie(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.MessageResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Movie added successfully" {
		t.Errorf("Expected 'Movie added successfully', got %q", resp.Message)
	}

	var votes int64
	if err := db.QueryRow(`SELECT votes FROM movies WHERE title = 'Inception'`).Scan(&votes); err != nil {
		t.Fatalf("Movie row missing: %v", err)
	}
	if votes != 0 {
		t.Errorf("New movie should start at 0 votes, got %d", votes)
	}
}

func TestAddMovie_MissingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewMovieHandler(db, cfg)

	tests := []struct {
		name string
		body models.AddMovieRequest
	}{
		{"missing title", models.AddMovieRequest{Description: "d", Username: "alice"}},
		{"missing description", models.AddMovieRequest{Title: "t", Username: "alice"}},
		{"missing username", models.AddMovieRequest{Title: "t", Description: "d"}},
		{"all missing", models.AddMovieRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/movies", tt.body, nil)
			w := httptest.NewRecorder()

			h.AddMovie(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message != "Missing required fields" {
				t.Errorf("Expected 'Missing required fields', got %q", resp.Message)
			}
		})
	}
}

func TestAddMovie_UnregisteredUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewMovieHandler(db, cfg)

	// Soft reference: the submitter is never checked against the users table
	req := testutil.MakeRequest("POST", "/movies", models.AddMovieRequest{
		Title:       "Ghost Movie",
		Description: "submitted by nobody",
		Username:    "ghost",
	}, nil)
	w := httptest.NewRecorder()

	h.AddMovie(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
}

func TestAddMovie_SessionMismatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewMovieHandler(db, cfg)

	// Token for bob, claim is alice
	token, err := auth.GenerateSessionToken("bob", []byte(cfg.SessionSecret))
	if err != nil {
		t.Fatal(err)
	}

	req := testutil.MakeRequest("POST", "/movies", models.AddMovieRequest{
		Title:       "Inception",
		Description: "dream heist",
		Username:    "alice",
	}, map[string]string{"Authorization": "Bearer " + token})
	w := httptest.NewRecorder()

	h.AddMovie(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	var count int
	db.QueryRow(`SELECT COUNT(*) FROM movies`).Scan(&count)
	if count != 0 {
		t.Errorf("Rejected request still inserted a movie")
	}
}

func TestListMovies_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewMovieHandler(db, cfg)

	req := testutil.MakeRequest("GET", "/movies", nil, nil)
	w := httptest.NewRecorder()

	h.ListMovies(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	// Empty list must serialize as [], not null
	if !strings.HasPrefix(strings.TrimSpace(w.Body.String()), "[") {
		t.Errorf("Expected JSON array, got %s", w.Body.String())
	}

	var movies []models.Movie
	testutil.AssertJSON(t, w, &movies)
	if len(movies) != 0 {
		t.Errorf("Expected no movies, got %d", len(movies))
	}
}

func TestListMovies_Ordering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewMovieHandler(db, cfg)

	testutil.CreateTestUser(t, db, "alice", "pw1")

	// Insertion order: first, second, third
	first := testutil.CreateTestMovie(t, db, "First", "d", "alice")
	second := testutil.CreateTestMovie(t, db, "Second", "d", "alice")
	third := testutil.CreateTestMovie(t, db, "Third", "d", "alice")

	// Third gets 2 votes, first and second tie at 1
	testutil.CastTestVote(t, db, "alice", third)
	testutil.CastTestVote(t, db, "bob", third)
	testutil.CastTestVote(t, db, "alice", first)
	testutil.CastTestVote(t, db, "alice", second)

	req := testutil.MakeRequest("GET", "/movies", nil, nil)
	w := httptest.NewRecorder()

	h.ListMovies(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var movies []models.Movie
	testutil.AssertJSON(t, w, &movies)

	if len(movies) != 3 {
		t.Fatalf("Expected 3 movies, got %d", len(movies))
	}

	// Highest votes first
	if movies[0].ID != third || movies[0].Votes != 2 {
		t.Errorf("Expected Third (2 votes) first, got %s (%d)", movies[0].Title, movies[0].Votes)
	}

	// Tie broken by insertion order: First before Second
	if movies[1].ID != first {
		t.Errorf("Expected First second (tie broken by creation order), got %s", movies[1].Title)
	}
	if movies[2].ID != second {
		t.Errorf("Expected Second last, got %s", movies[2].Title)
	}

	// Counts never increase down the list
	for i := 1; i < len(movies); i++ {
		if movies[i].Votes > movies[i-1].Votes {
			t.Errorf("Vote counts not non-increasing at index %d", i)
		}
	}
}
