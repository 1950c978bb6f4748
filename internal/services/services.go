// package services defines interfaces for interacting with the upstream music service API
package services

import (
	"context"
	"fmt"
)

// TokenResponse represents the upstream token endpoint's reply to a code
// exchange or refresh request.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type,omitempty"`
	Scope        string `json:"scope,omitempty"`
}

// Refresher mints a new access token from a refresh token.
//
// The session manager is the only caller; the API client never refreshes on
// its own behalf.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error)
}

// Listening defines the read-only listening-data operations the dashboard
// composes. Every call attaches the provided bearer access token and leaves
// token lifecycle to the caller.
type Listening interface {
	// Profile retrieves the authenticated user's profile.
	Profile(ctx context.Context, accessToken string) (*SpotifyUser, error)

	// TopTracks retrieves the user's top tracks for a time range.
	TopTracks(ctx context.Context, accessToken, timeRange string, limit int) ([]SpotifyTrack, error)

	// TopArtists retrieves the user's top artists for a time range.
	TopArtists(ctx context.Context, accessToken, timeRange string, limit int) ([]SpotifyArtist, error)

	// CurrentlyPlaying retrieves the current playback state.
	// Returns nil without error when nothing is playing.
	CurrentlyPlaying(ctx context.Context, accessToken string) (*SpotifyCurrentlyPlaying, error)

	// SavedTracks retrieves a page of the user's saved tracks.
	SavedTracks(ctx context.Context, accessToken string, limit, offset int) (*SpotifyPaginatedTracks, error)

	// Playlists retrieves a page of the user's playlists.
	Playlists(ctx context.Context, accessToken string, limit int) (*SpotifyPaginatedPlaylists, error)
}

// StatusError is a typed failure carrying the upstream HTTP status and raw
// response body. Callers decide recovery: a 401 maps to unauthorized, the
// rest to an upstream failure.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("spotify API error (%d): %s", e.Status, e.Body)
}

// IsUnauthorized reports whether the upstream rejected the bearer token.
func (e *StatusError) IsUnauthorized() bool {
	return e.Status == 401
}
