package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/desertthunder/aurabeat/internal/services"
	"github.com/desertthunder/aurabeat/internal/session"
	mocks "github.com/desertthunder/aurabeat/internal/testing"
)

// authedRequest returns a request carrying a fresh session for a known user.
func authedRequest(t *testing.T, manager *session.Manager) *http.Request {
	t.Helper()

	bundle := session.Bundle{
		AccessToken:  "access_token_1",
		RefreshToken: "refresh_token_1",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
		User:         session.Identity{ID: "user_1", Name: "Test Listener"},
	}

	rec := httptest.NewRecorder()
	seed := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := manager.Create(rec, seed, bundle); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func decodeDashboard(t *testing.T, rec *httptest.ResponseRecorder) DashboardData {
	t.Helper()

	var data DashboardData
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return data
}

func TestDashboardHandler(t *testing.T) {
	t.Run("Unauthorized Without Session", func(t *testing.T) {
		h := NewDashboardHandler(&mocks.MockListening{}, testSessionManager(t), nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON error body, got %s", ct)
		}
	})

	t.Run("Composes All Cards", func(t *testing.T) {
		manager := testSessionManager(t)

		next := "next_page"
		spotify := &mocks.MockListening{
			TopTracksFunc: func(ctx context.Context, accessToken, timeRange string, limit int) ([]services.SpotifyTrack, error) {
				if accessToken != "access_token_1" {
					t.Errorf("expected session access token, got %s", accessToken)
				}
				if timeRange != "medium_term" || limit != 5 {
					t.Errorf("unexpected top tracks query: %s/%d", timeRange, limit)
				}
				return []services.SpotifyTrack{{ID: "t1", Name: "Track One"}}, nil
			},
			TopArtistsFunc: func(ctx context.Context, accessToken, timeRange string, limit int) ([]services.SpotifyArtist, error) {
				if limit != 50 {
					t.Errorf("expected the full artist page, got limit %d", limit)
				}
				artists := make([]services.SpotifyArtist, 10)
				for i := range artists {
					artists[i] = services.SpotifyArtist{ID: "a", Name: "Artist", Genres: []string{"indie pop"}}
				}
				return artists, nil
			},
			SavedTracksFunc: func(ctx context.Context, accessToken string, limit, offset int) (*services.SpotifyPaginatedTracks, error) {
				return &services.SpotifyPaginatedTracks{
					Items: []services.SpotifySavedTrack{{AddedAt: "2026-08-01T12:00:00Z"}},
					Total: 812,
				}, nil
			},
			PlaylistsFunc: func(ctx context.Context, accessToken string, limit int) (*services.SpotifyPaginatedPlaylists, error) {
				return &services.SpotifyPaginatedPlaylists{
					Items: []services.SpotifyPlaylist{{ID: "p1", Name: "Liked Mix"}},
					Total: 3,
					Next:  &next,
				}, nil
			},
			CurrentlyPlayingFunc: func(ctx context.Context, accessToken string) (*services.SpotifyCurrentlyPlaying, error) {
				return &services.SpotifyCurrentlyPlaying{IsPlaying: true}, nil
			},
		}

		h := NewDashboardHandler(spotify, manager, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authedRequest(t, manager))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		data := decodeDashboard(t, rec)

		if data.User.ID != "user_1" {
			t.Errorf("expected identity snapshot, got %+v", data.User)
		}
		if len(data.TopTracks) != 1 || data.TopTracks[0].Name != "Track One" {
			t.Errorf("unexpected top tracks %+v", data.TopTracks)
		}
		if len(data.TopArtists) != 5 {
			t.Errorf("display slice should hold 5 artists, got %d", len(data.TopArtists))
		}
		if data.LikedSongs != 812 {
			t.Errorf("expected liked count 812, got %d", data.LikedSongs)
		}
		if len(data.RecentlyLiked) != 1 {
			t.Errorf("unexpected recently liked %+v", data.RecentlyLiked)
		}
		if data.PlaylistTotal != 3 {
			t.Errorf("expected playlist total 3, got %d", data.PlaylistTotal)
		}
		if data.NowPlaying == nil || !data.NowPlaying.IsPlaying {
			t.Errorf("expected now playing state, got %+v", data.NowPlaying)
		}
		if data.Vibe.Energy == 0.5 && data.Vibe.Danceability == 0.5 {
			t.Error("expected the vibe to reflect artist genres, got neutral")
		}
	})

	t.Run("Failed Fetch Degrades Its Card Only", func(t *testing.T) {
		manager := testSessionManager(t)

		spotify := &mocks.MockListening{
			TopTracksFunc: func(ctx context.Context, accessToken, timeRange string, limit int) ([]services.SpotifyTrack, error) {
				return nil, errors.New("upstream down")
			},
			TopArtistsFunc: func(ctx context.Context, accessToken, timeRange string, limit int) ([]services.SpotifyArtist, error) {
				return []services.SpotifyArtist{{ID: "a1", Name: "Artist One", Genres: []string{"techno"}}}, nil
			},
			SavedTracksFunc: func(ctx context.Context, accessToken string, limit, offset int) (*services.SpotifyPaginatedTracks, error) {
				return nil, errors.New("upstream down")
			},
		}

		h := NewDashboardHandler(spotify, manager, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authedRequest(t, manager))

		if rec.Code != http.StatusOK {
			t.Fatalf("degraded dashboard must still render, got %d", rec.Code)
		}

		data := decodeDashboard(t, rec)

		if len(data.TopTracks) != 0 {
			t.Errorf("failed card should be empty, got %+v", data.TopTracks)
		}
		if data.LikedSongs != 0 {
			t.Errorf("failed card should be zero, got %d", data.LikedSongs)
		}
		if len(data.TopArtists) != 1 {
			t.Errorf("healthy card should still be populated, got %+v", data.TopArtists)
		}
	})

	t.Run("No Artists Yields Neutral Vibe", func(t *testing.T) {
		manager := testSessionManager(t)
		h := NewDashboardHandler(&mocks.MockListening{}, manager, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authedRequest(t, manager))

		data := decodeDashboard(t, rec)
		if data.Vibe.Energy != 0.5 || data.Vibe.Instrumentalness != 0.5 {
			t.Errorf("expected neutral vibe, got %+v", data.Vibe)
		}
	})
}

func TestNowPlayingHandler(t *testing.T) {
	t.Run("Unauthorized Without Session", func(t *testing.T) {
		h := NewNowPlayingHandler(&mocks.MockListening{}, testSessionManager(t), nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/now-playing", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("Playing", func(t *testing.T) {
		manager := testSessionManager(t)
		spotify := &mocks.MockListening{
			CurrentlyPlayingFunc: func(ctx context.Context, accessToken string) (*services.SpotifyCurrentlyPlaying, error) {
				return &services.SpotifyCurrentlyPlaying{
					IsPlaying:  true,
					ProgressMS: 42000,
					Item:       services.SpotifyTrack{Name: "Track One"},
				}, nil
			},
		}
		h := NewNowPlayingHandler(spotify, manager, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authedRequest(t, manager))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var playing services.SpotifyCurrentlyPlaying
		if err := json.Unmarshal(rec.Body.Bytes(), &playing); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if playing.Item.Name != "Track One" {
			t.Errorf("unexpected payload %+v", playing)
		}
	})

	t.Run("Nothing Playing", func(t *testing.T) {
		manager := testSessionManager(t)
		h := NewNowPlayingHandler(&mocks.MockListening{}, manager, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authedRequest(t, manager))

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("expected empty body, got %s", rec.Body.String())
		}
	})

	t.Run("Upstream Failure", func(t *testing.T) {
		manager := testSessionManager(t)
		spotify := &mocks.MockListening{
			CurrentlyPlayingFunc: func(ctx context.Context, accessToken string) (*services.SpotifyCurrentlyPlaying, error) {
				return nil, &services.StatusError{Status: 502, Body: "bad gateway"}
			},
		}
		h := NewNowPlayingHandler(spotify, manager, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authedRequest(t, manager))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", rec.Code)
		}
	})
}
