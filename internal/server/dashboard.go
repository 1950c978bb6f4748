package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/aurabeat/internal/services"
	"github.com/desertthunder/aurabeat/internal/session"
	"github.com/desertthunder/aurabeat/internal/shared"
	"github.com/desertthunder/aurabeat/internal/vibe"
)

// Page sizes are fixed per card; the dashboard never follows pagination.
const (
	topTrackLimit   = 5
	topArtistLimit  = 50
	recentLikeLimit = 10
	playlistLimit   = 50
	displayArtists  = 5
)

// DashboardData is the composed payload behind the dashboard's cards. Tokens
// never appear here, only the identity snapshot.
type DashboardData struct {
	User          session.Identity             `json:"user"`
	TopTracks     []services.SpotifyTrack      `json:"top_tracks"`
	TopArtists    []services.SpotifyArtist     `json:"top_artists"`
	Vibe          vibe.Vector                  `json:"vibe"`
	LikedSongs    int                          `json:"liked_songs"`
	RecentlyLiked []services.SpotifySavedTrack `json:"recently_liked"`
	Playlists     []services.SpotifyPlaylist   `json:"playlists"`
	PlaylistTotal int                          `json:"playlist_total"`

	// NowPlaying is the player state at render time; the card keeps itself
	// fresh through /api/now-playing afterwards.
	NowPlaying *services.SpotifyCurrentlyPlaying `json:"now_playing,omitempty"`
}

// DashboardHandler fans out the independent listening-data fetches for one
// request and joins them before responding.
//
// A failed fetch degrades only its own card; a missing access token fails
// the whole request with 401.
type DashboardHandler struct {
	spotify services.Listening
	manager *session.Manager
	logger  *log.Logger
}

// NewDashboardHandler creates the dashboard composition handler.
func NewDashboardHandler(spotify services.Listening, manager *session.Manager, logger *log.Logger) *DashboardHandler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &DashboardHandler{spotify: spotify, manager: manager, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *DashboardHandler) Routes() []string {
	return []string{"/api/dashboard"}
}

func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	accessToken, ok := h.manager.AccessToken(r.Context(), w, r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bundle, _ := h.manager.Get(r)

	data := DashboardData{
		TopTracks:     []services.SpotifyTrack{},
		TopArtists:    []services.SpotifyArtist{},
		RecentlyLiked: []services.SpotifySavedTrack{},
		Playlists:     []services.SpotifyPlaylist{},
		Vibe:          vibe.Neutral(),
	}
	if bundle != nil {
		data.User = bundle.User
	}

	ctx := r.Context()
	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		tracks, err := h.spotify.TopTracks(ctx, accessToken, "medium_term", topTrackLimit)
		if err != nil {
			h.logger.Warn("top tracks fetch failed", "error", err)
			return
		}
		data.TopTracks = tracks
	}()

	var topArtists []services.SpotifyArtist
	go func() {
		defer wg.Done()
		artists, err := h.spotify.TopArtists(ctx, accessToken, "medium_term", topArtistLimit)
		if err != nil {
			h.logger.Warn("top artists fetch failed", "error", err)
			return
		}
		topArtists = artists
	}()

	go func() {
		defer wg.Done()
		saved, err := h.spotify.SavedTracks(ctx, accessToken, recentLikeLimit, 0)
		if err != nil {
			h.logger.Warn("saved tracks fetch failed", "error", err)
			return
		}
		data.LikedSongs = saved.Total
		data.RecentlyLiked = saved.Items
	}()

	go func() {
		defer wg.Done()
		playlists, err := h.spotify.Playlists(ctx, accessToken, playlistLimit)
		if err != nil {
			h.logger.Warn("playlists fetch failed", "error", err)
			return
		}
		data.Playlists = playlists.Items
		data.PlaylistTotal = playlists.Total
	}()

	go func() {
		defer wg.Done()
		playing, err := h.spotify.CurrentlyPlaying(ctx, accessToken)
		if err != nil {
			h.logger.Warn("currently playing fetch failed", "error", err)
			return
		}
		data.NowPlaying = playing
	}()

	wg.Wait()

	// The vibe profile averages over the full top-artist page; the card only
	// displays the first few artists.
	data.Vibe = vibe.Compute(topArtists)
	if len(topArtists) > displayArtists {
		topArtists = topArtists[:displayArtists]
	}
	data.TopArtists = topArtists

	writeJSON(w, http.StatusOK, data)
}

// NowPlayingHandler is the thin proxy in front of the currently-playing
// endpoint, polled by the display layer.
type NowPlayingHandler struct {
	spotify services.Listening
	manager *session.Manager
	logger  *log.Logger
}

// NewNowPlayingHandler creates the now-playing proxy handler.
func NewNowPlayingHandler(spotify services.Listening, manager *session.Manager, logger *log.Logger) *NowPlayingHandler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &NowPlayingHandler{spotify: spotify, manager: manager, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *NowPlayingHandler) Routes() []string {
	return []string{"/api/now-playing"}
}

func (h *NowPlayingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	accessToken, ok := h.manager.AccessToken(r.Context(), w, r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	playing, err := h.spotify.CurrentlyPlaying(r.Context(), accessToken)
	if err != nil {
		h.logger.Error("currently playing fetch failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch currently playing")
		return
	}

	if playing == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, playing)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

var (
	_ Handler = (*DashboardHandler)(nil)
	_ Handler = (*NowPlayingHandler)(nil)
)
