// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/aurabeat/internal/services"
)

// MockListening is a configurable test double for [services.Listening].
//
// Each field overrides one call; unset calls return empty values.
type MockListening struct {
	ProfileFunc          func(ctx context.Context, accessToken string) (*services.SpotifyUser, error)
	TopTracksFunc        func(ctx context.Context, accessToken, timeRange string, limit int) ([]services.SpotifyTrack, error)
	TopArtistsFunc       func(ctx context.Context, accessToken, timeRange string, limit int) ([]services.SpotifyArtist, error)
	CurrentlyPlayingFunc func(ctx context.Context, accessToken string) (*services.SpotifyCurrentlyPlaying, error)
	SavedTracksFunc      func(ctx context.Context, accessToken string, limit, offset int) (*services.SpotifyPaginatedTracks, error)
	PlaylistsFunc        func(ctx context.Context, accessToken string, limit int) (*services.SpotifyPaginatedPlaylists, error)
}

func (m *MockListening) Profile(ctx context.Context, accessToken string) (*services.SpotifyUser, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, accessToken)
	}
	return &services.SpotifyUser{}, nil
}

func (m *MockListening) TopTracks(ctx context.Context, accessToken, timeRange string, limit int) ([]services.SpotifyTrack, error) {
	if m.TopTracksFunc != nil {
		return m.TopTracksFunc(ctx, accessToken, timeRange, limit)
	}
	return nil, nil
}

func (m *MockListening) TopArtists(ctx context.Context, accessToken, timeRange string, limit int) ([]services.SpotifyArtist, error) {
	if m.TopArtistsFunc != nil {
		return m.TopArtistsFunc(ctx, accessToken, timeRange, limit)
	}
	return nil, nil
}

func (m *MockListening) CurrentlyPlaying(ctx context.Context, accessToken string) (*services.SpotifyCurrentlyPlaying, error) {
	if m.CurrentlyPlayingFunc != nil {
		return m.CurrentlyPlayingFunc(ctx, accessToken)
	}
	return nil, nil
}

func (m *MockListening) SavedTracks(ctx context.Context, accessToken string, limit, offset int) (*services.SpotifyPaginatedTracks, error) {
	if m.SavedTracksFunc != nil {
		return m.SavedTracksFunc(ctx, accessToken, limit, offset)
	}
	return &services.SpotifyPaginatedTracks{}, nil
}

func (m *MockListening) Playlists(ctx context.Context, accessToken string, limit int) (*services.SpotifyPaginatedPlaylists, error) {
	if m.PlaylistsFunc != nil {
		return m.PlaylistsFunc(ctx, accessToken, limit)
	}
	return &services.SpotifyPaginatedPlaylists{}, nil
}

// MockRefresher is a test double for [services.Refresher] that records each
// call.
type MockRefresher struct {
	Response *services.TokenResponse
	Err      error
	Calls    int
}

func (m *MockRefresher) Refresh(ctx context.Context, refreshToken string) (*services.TokenResponse, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
