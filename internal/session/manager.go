package session

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/aurabeat/internal/services"
	"github.com/desertthunder/aurabeat/internal/shared"
)

// Manager guarantees that a caller needing the upstream API receives either
// a currently valid access token or an explicit absence signal.
//
// Verification and refresh failures never propagate past the manager; they
// resolve to absence so calling code has a single branch.
type Manager struct {
	codec     *Codec
	store     Store
	refresher services.Refresher
	logger    *log.Logger
}

// NewManager wires the codec, a store backend, and the token refresher.
func NewManager(codec *Codec, store Store, refresher services.Refresher, logger *log.Logger) *Manager {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Manager{codec: codec, store: store, refresher: refresher, logger: logger}
}

// Create signs the bundle and persists it, overwriting any prior session.
//
// Fails only when the underlying storage write is rejected.
func (m *Manager) Create(w http.ResponseWriter, r *http.Request, bundle Bundle) error {
	token, err := m.codec.Sign(bundle)
	if err != nil {
		return err
	}
	return m.store.Save(w, r, token)
}

// Get reads and verifies the persisted session.
//
// Missing, malformed, tampered, and expired tokens all return (nil, false);
// the distinction only surfaces in debug logs.
func (m *Manager) Get(r *http.Request) (*Bundle, bool) {
	raw, ok := m.store.Load(r)
	if !ok {
		return nil, false
	}

	bundle, err := m.codec.Verify(raw)
	if err != nil {
		m.logger.Debug("session rejected", "error", err)
		return nil, false
	}

	return bundle, true
}

// AccessToken returns a currently valid access token or absence.
//
// A stale token triggers exactly one refresh attempt; there is no retry. On
// refresh success the updated bundle is persisted and the new token
// returned. On any failure the caller is degraded to logged-out.
func (m *Manager) AccessToken(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, bool) {
	bundle, ok := m.Get(r)
	if !ok {
		return "", false
	}

	if !bundle.Stale() {
		return bundle.AccessToken, true
	}

	refreshed, err := m.refresher.Refresh(ctx, bundle.RefreshToken)
	if err != nil {
		m.logger.Warn("token refresh failed", "error", err)
		return "", false
	}

	updated := *bundle
	updated.AccessToken = refreshed.AccessToken
	updated.ExpiresAt = NowFunc().Unix() + refreshed.ExpiresIn
	if refreshed.RefreshToken != "" {
		updated.RefreshToken = refreshed.RefreshToken
	}

	if err := m.Create(w, r, updated); err != nil {
		m.logger.Warn("failed to persist refreshed session", "error", err)
		return "", false
	}

	return updated.AccessToken, true
}

// Destroy deletes the persisted session unconditionally. Idempotent.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) {
	m.store.Clear(w, r)
}
