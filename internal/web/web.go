// package web serves the browser pages for the dashboard service.
//
// The pages are thin bootstraps: all listening data flows through the JSON
// API, and the dashboard page keeps its now-playing card fresh by polling.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/aurabeat/internal/session"
	"github.com/desertthunder/aurabeat/internal/shared"
)

//go:embed templates/*.html
var templateFiles embed.FS

// loginMessages maps callback reason codes to user-facing text.
var loginMessages = map[string]string{
	"no_code":               "Spotify did not return an authorization code. Please try again.",
	"token_exchange_failed": "Could not complete the sign-in with Spotify. Please try again.",
	"profile_fetch_failed":  "Signed in, but your profile could not be loaded. Please try again.",
	"access_denied":         "Authorization was declined.",
	"unknown":               "Something went wrong during sign-in. Please try again.",
}

// PageHandler serves the login and dashboard pages.
type PageHandler struct {
	manager   *session.Manager
	logger    *log.Logger
	templates *template.Template
}

// NewPageHandler parses the embedded templates and wires the session manager.
func NewPageHandler(manager *session.Manager, logger *log.Logger) (*PageHandler, error) {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	templates, err := template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &PageHandler{manager: manager, logger: logger, templates: templates}, nil
}

// Routes returns the HTTP routes this handler serves.
func (h *PageHandler) Routes() []string {
	return []string{"/", "/login"}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/":
		h.dashboard(w, r)
	case "/login":
		h.login(w, r)
	default:
		http.NotFound(w, r)
	}
}

// dashboard renders the authenticated shell; unauthenticated visitors land on
// the login page instead.
func (h *PageHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	bundle, ok := h.manager.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	h.render(w, "dashboard.html", map[string]any{
		"Name": bundle.User.Name,
	})
}

func (h *PageHandler) login(w http.ResponseWriter, r *http.Request) {
	var message string
	if reason := r.URL.Query().Get("error"); reason != "" {
		message = loginMessages[reason]
		if message == "" {
			message = loginMessages["unknown"]
		}
	}

	h.render(w, "login.html", map[string]any{
		"Error": message,
	})
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("template render failed", "template", name, "error", err)
	}
}
