package session

import (
	"net/http"
	"time"
)

// CookieName is the name of the session cookie in both store backends.
const CookieName = "session"

// Store persists the signed session token across requests.
//
// Implementations are keyed off the HTTP exchange: the cookie backend keeps
// the token client-side, the sqlite backend keeps it server-side behind an
// opaque id. Save overwrites any prior session; Clear is idempotent.
type Store interface {
	Load(r *http.Request) (string, bool)
	Save(w http.ResponseWriter, r *http.Request, token string) error
	Clear(w http.ResponseWriter, r *http.Request)
}

// CookieStore keeps the signed token itself in an HTTP-only cookie.
type CookieStore struct {
	MaxAge time.Duration
	Secure bool
}

// NewCookieStore creates a cookie-backed store with the given cookie lifetime.
func NewCookieStore(maxAge time.Duration, secure bool) *CookieStore {
	if maxAge <= 0 {
		maxAge = 30 * 24 * time.Hour
	}
	return &CookieStore{MaxAge: maxAge, Secure: secure}
}

func (s *CookieStore) Load(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (s *CookieStore) Save(w http.ResponseWriter, r *http.Request, token string) error {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *CookieStore) Clear(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

var _ Store = (*CookieStore)(nil)
