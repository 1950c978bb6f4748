package session

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/desertthunder/aurabeat/internal/shared"
)

// SQLiteStore keeps signed tokens in a sessions table; the cookie carries
// only a random opaque id.
type SQLiteStore struct {
	db     *sql.DB
	maxAge time.Duration
	secure bool
}

// NewSQLiteStore creates a database-backed store. The sessions table must
// exist (see shared.RunMigrations).
func NewSQLiteStore(db *sql.DB, maxAge time.Duration, secure bool) *SQLiteStore {
	if maxAge <= 0 {
		maxAge = 30 * 24 * time.Hour
	}
	return &SQLiteStore{db: db, maxAge: maxAge, secure: secure}
}

func (s *SQLiteStore) Load(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	var token string
	err = s.db.QueryRow("SELECT token FROM sessions WHERE id = ?", cookie.Value).Scan(&token)
	if err != nil {
		return "", false
	}

	return token, true
}

func (s *SQLiteStore) Save(w http.ResponseWriter, r *http.Request, token string) error {
	id := ""
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		id = cookie.Value
	}
	if id == "" {
		id = shared.GenerateID()
	}

	query := `
		INSERT INTO sessions (id, token, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET token = excluded.token, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.Exec(query, id, token); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (s *SQLiteStore) Clear(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		s.db.Exec("DELETE FROM sessions WHERE id = ?", cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

var _ Store = (*SQLiteStore)(nil)
