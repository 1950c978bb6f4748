package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/aurabeat/internal/services"
	"github.com/desertthunder/aurabeat/internal/session"
	"github.com/desertthunder/aurabeat/internal/shared"
	"golang.org/x/oauth2"
)

// Authenticator is the slice of the upstream client the auth flow needs.
type Authenticator interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	Profile(ctx context.Context, accessToken string) (*services.SpotifyUser, error)
}

// AuthHandler implements the browser-facing OAuth2 authorization-code flow:
// login redirect, callback exchange, and logout.
type AuthHandler struct {
	spotify Authenticator
	manager *session.Manager
	logger  *log.Logger
}

// NewAuthHandler creates the auth handler with the upstream client and session manager.
func NewAuthHandler(spotify Authenticator, manager *session.Manager, logger *log.Logger) *AuthHandler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &AuthHandler{spotify: spotify, manager: manager, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *AuthHandler) Routes() []string {
	return []string{"/auth/login", "/auth/callback", "/auth/logout"}
}

func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/auth/login":
		h.login(w, r)
	case "/auth/callback":
		h.callback(w, r)
	case "/auth/logout":
		h.logout(w, r)
	default:
		http.NotFound(w, r)
	}
}

// login redirects to the authorization endpoint. The state parameter carries
// the post-login return path.
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	returnTo := r.URL.Query().Get("callbackUrl")
	if returnTo == "" {
		returnTo = "/"
	}

	http.Redirect(w, r, h.spotify.AuthURL(returnTo), http.StatusFound)
}

// loginError redirects back to the login page with a reason code in the URL.
func (h *AuthHandler) loginError(w http.ResponseWriter, r *http.Request, reason string) {
	http.Redirect(w, r, "/login?error="+url.QueryEscape(reason), http.StatusFound)
}

// callback exchanges the authorization code, captures the identity snapshot,
// and creates the session.
func (h *AuthHandler) callback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if errParam := query.Get("error"); errParam != "" {
		h.logger.Warn("authorization denied", "error", errParam)
		h.loginError(w, r, errParam)
		return
	}

	code := query.Get("code")
	if code == "" {
		h.loginError(w, r, "no_code")
		return
	}

	returnTo := query.Get("state")
	if returnTo == "" || returnTo[0] != '/' {
		returnTo = "/"
	}

	token, err := h.spotify.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Error("token exchange failed", "error", err)
		h.loginError(w, r, "token_exchange_failed")
		return
	}

	profile, err := h.spotify.Profile(r.Context(), token.AccessToken)
	if err != nil {
		h.logger.Error("profile fetch failed", "error", err)
		h.loginError(w, r, "profile_fetch_failed")
		return
	}

	expiresAt := token.Expiry.Unix()
	if token.Expiry.IsZero() {
		expiresAt = session.NowFunc().Unix() + 3600
	}

	bundle := session.Bundle{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    expiresAt,
		User: session.Identity{
			ID:    profile.ID,
			Name:  profile.DisplayName,
			Email: profile.Email,
		},
	}

	if err := h.manager.Create(w, r, bundle); err != nil {
		h.logger.Error("session create failed", "error", err)
		h.loginError(w, r, "unknown")
		return
	}

	// Redirect via script so the Set-Cookie header always lands before
	// navigation.
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Redirecting...</title></head>
<body><script>window.location.href = %q;</script></body>
</html>
`, returnTo)
}

// logout destroys the session and returns to the login page.
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	h.manager.Destroy(w, r)
	http.Redirect(w, r, "/login", http.StatusFound)
}

var _ Handler = (*AuthHandler)(nil)
