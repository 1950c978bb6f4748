package session

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/aurabeat/internal/shared"
)

func testBundle() Bundle {
	return Bundle{
		AccessToken:  "access_token_1",
		RefreshToken: "refresh_token_1",
		ExpiresAt:    NowFunc().Add(time.Hour).Unix(),
		User: Identity{
			ID:    "user_1",
			Name:  "Test Listener",
			Email: "listener@example.com",
		},
	}
}

func TestCodec(t *testing.T) {
	t.Run("NewCodec", func(t *testing.T) {
		t.Run("Empty Secret Rejected", func(t *testing.T) {
			_, err := NewCodec("", time.Hour)
			if !errors.Is(err, shared.ErrMissingSecret) {
				t.Errorf("expected ErrMissingSecret, got %v", err)
			}
		})

		t.Run("Default TTL", func(t *testing.T) {
			codec, err := NewCodec("secret", 0)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if codec.TTL() != 30*24*time.Hour {
				t.Errorf("expected 30 day default TTL, got %v", codec.TTL())
			}
		})
	})

	t.Run("Round Trip", func(t *testing.T) {
		codec, err := NewCodec("secret", time.Hour)
		if err != nil {
			t.Fatalf("failed to create codec: %v", err)
		}

		bundle := testBundle()
		raw, err := codec.Sign(bundle)
		if err != nil {
			t.Fatalf("failed to sign: %v", err)
		}

		decoded, err := codec.Verify(raw)
		if err != nil {
			t.Fatalf("failed to verify: %v", err)
		}

		if decoded.AccessToken != bundle.AccessToken {
			t.Errorf("access token mismatch: got %s", decoded.AccessToken)
		}
		if decoded.RefreshToken != bundle.RefreshToken {
			t.Errorf("refresh token mismatch: got %s", decoded.RefreshToken)
		}
		if decoded.ExpiresAt != bundle.ExpiresAt {
			t.Errorf("expiry mismatch: got %d", decoded.ExpiresAt)
		}
		if decoded.User != bundle.User {
			t.Errorf("identity mismatch: got %+v", decoded.User)
		}
	})

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		signer, _ := NewCodec("secret_a", time.Hour)
		verifier, _ := NewCodec("secret_b", time.Hour)

		raw, err := signer.Sign(testBundle())
		if err != nil {
			t.Fatalf("failed to sign: %v", err)
		}

		if _, err := verifier.Verify(raw); err == nil {
			t.Error("expected verification to fail with wrong secret")
		}
	})

	t.Run("Malformed Token Rejected", func(t *testing.T) {
		codec, _ := NewCodec("secret", time.Hour)

		for _, raw := range []string{"", "garbage", "a.b.c"} {
			if _, err := codec.Verify(raw); err == nil {
				t.Errorf("expected verification of %q to fail", raw)
			}
		}
	})

	t.Run("Tampered Token Rejected", func(t *testing.T) {
		codec, _ := NewCodec("secret", time.Hour)

		raw, err := codec.Sign(testBundle())
		if err != nil {
			t.Fatalf("failed to sign: %v", err)
		}

		parts := strings.Split(raw, ".")
		parts[1] = parts[1][:len(parts[1])-2] + "xx"
		if _, err := codec.Verify(strings.Join(parts, ".")); err == nil {
			t.Error("expected verification of tampered payload to fail")
		}
	})

	t.Run("Expired Token Rejected", func(t *testing.T) {
		codec, _ := NewCodec("secret", time.Hour)

		raw, err := codec.Sign(testBundle())
		if err != nil {
			t.Fatalf("failed to sign: %v", err)
		}

		defer func() { NowFunc = time.Now }()
		NowFunc = func() time.Time { return time.Now().Add(2 * time.Hour) }

		if _, err := codec.Verify(raw); err == nil {
			t.Error("expected verification past the validity window to fail")
		}
	})
}

func TestBundleStale(t *testing.T) {
	defer func() { NowFunc = time.Now }()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	NowFunc = func() time.Time { return now }

	cases := []struct {
		name      string
		expiresAt int64
		want      bool
	}{
		{"future expiry is fresh", now.Add(time.Hour).Unix(), false},
		{"past expiry is stale", now.Add(-time.Hour).Unix(), true},
		{"exact expiry instant is stale", now.Unix(), true},
		{"zero expiry is stale", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bundle := Bundle{ExpiresAt: tc.expiresAt}
			if got := bundle.Stale(); got != tc.want {
				t.Errorf("Stale() = %v, want %v", got, tc.want)
			}
		})
	}
}
