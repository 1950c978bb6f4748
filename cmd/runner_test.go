package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/aurabeat/internal/shared"
	mocks "github.com/desertthunder/aurabeat/internal/testing"
	"github.com/desertthunder/aurabeat/internal/vibe"
	"github.com/urfave/cli/v3"
)

func testRunner(buf *bytes.Buffer) *Runner {
	return NewRunner(RunnerOpts{
		Config: shared.DefaultConfig(),
		Logger: shared.NewLogger(buf),
		Output: buf,
	})
}

func testApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "aurabeat",
		Commands: r.register(),
	}
}

func TestNewRunner(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		r := NewRunner(RunnerOpts{})

		if r.config == nil {
			t.Error("expected a default config")
		}
		if r.logger == nil {
			t.Error("expected a default logger")
		}
		if r.output == nil {
			t.Error("expected a default output writer")
		}
	})

	t.Run("Registers All Commands", func(t *testing.T) {
		r := testRunner(&bytes.Buffer{})

		commands := r.register()
		want := []string{"setup", "auth", "serve", "vibe", "top", "now"}
		if len(commands) != len(want) {
			t.Fatalf("expected %d commands, got %d", len(want), len(commands))
		}
		for i, name := range want {
			if commands[i].Name != name {
				t.Errorf("expected command %s at position %d, got %s", name, i, commands[i].Name)
			}
		}
	})
}

func TestWriteHelpers(t *testing.T) {
	t.Run("writeJSON Compact", func(t *testing.T) {
		var buf bytes.Buffer
		r := testRunner(&buf)

		if err := r.writeJSON(map[string]int{"n": 1}, false); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := strings.TrimSpace(buf.String()); got != `{"n":1}` {
			t.Errorf("unexpected output %s", got)
		}
	})

	t.Run("writeJSON Pretty", func(t *testing.T) {
		var buf bytes.Buffer
		r := testRunner(&buf)

		if err := r.writeJSON(map[string]int{"n": 1}, true); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(buf.String(), "\n  ") {
			t.Errorf("expected indented output, got %s", buf.String())
		}
	})

	t.Run("Write Failure Surfaces", func(t *testing.T) {
		r := NewRunner(RunnerOpts{Output: &mocks.FWriter{}})

		if err := r.writeJSON(map[string]int{"n": 1}, false); err == nil {
			t.Error("expected write error to surface")
		}
		if err := r.writePlain("line"); err == nil {
			t.Error("expected write error to surface")
		}
	})
}

func TestCLIAccessToken(t *testing.T) {
	t.Run("No Saved Token", func(t *testing.T) {
		r := testRunner(&bytes.Buffer{})

		_, err := r.cliAccessToken(context.Background(), "config.toml")
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("Fresh Token Returned Without Refresh", func(t *testing.T) {
		r := testRunner(&bytes.Buffer{})
		r.config.Credentials.Spotify.AccessToken = "saved_access_token"
		r.config.Credentials.Spotify.ExpiresAt = time.Now().Add(time.Hour).Unix()

		token, err := r.cliAccessToken(context.Background(), "config.toml")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if token != "saved_access_token" {
			t.Errorf("expected the saved token, got %s", token)
		}
	})
}

func TestVibeCommand(t *testing.T) {
	t.Run("From Genres Flag", func(t *testing.T) {
		var buf bytes.Buffer
		app := testApp(testRunner(&buf))

		err := app.Run(context.Background(), []string{"aurabeat", "vibe", "--genres", "deep house", "--json"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var vector vibe.Vector
		if err := json.Unmarshal(buf.Bytes(), &vector); err != nil {
			t.Fatalf("expected JSON output, got %s", buf.String())
		}
		if vector.Danceability != 0.9 {
			t.Errorf("expected the house profile, got %+v", vector)
		}
	})

	t.Run("Unmapped Genres Are Neutral", func(t *testing.T) {
		var buf bytes.Buffer
		app := testApp(testRunner(&buf))

		err := app.Run(context.Background(), []string{"aurabeat", "vibe", "-g", "unchartedcore", "--json"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var vector vibe.Vector
		if err := json.Unmarshal(buf.Bytes(), &vector); err != nil {
			t.Fatalf("expected JSON output, got %s", buf.String())
		}
		if vector != vibe.Neutral() {
			t.Errorf("expected neutral vector, got %+v", vector)
		}
	})

	t.Run("Plain Output Renders Bars", func(t *testing.T) {
		var buf bytes.Buffer
		app := testApp(testRunner(&buf))

		err := app.Run(context.Background(), []string{"aurabeat", "vibe", "--genres", "ambient"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		out := buf.String()
		for _, axis := range []string{"Energy", "Danceability", "Valence", "Acousticness", "Instrumentalness"} {
			if !strings.Contains(out, axis) {
				t.Errorf("expected %s axis in output, got %s", axis, out)
			}
		}
	})

	t.Run("Requires Auth Without Genres", func(t *testing.T) {
		var buf bytes.Buffer
		app := testApp(testRunner(&buf))

		err := app.Run(context.Background(), []string{"aurabeat", "vibe"})
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})
}

func TestSetupCommand(t *testing.T) {
	t.Run("Creates Config File", func(t *testing.T) {
		path := t.TempDir() + "/config.toml"

		var buf bytes.Buffer
		app := testApp(testRunner(&buf))

		err := app.Run(context.Background(), []string{"aurabeat", "setup", "--config", path})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		mocks.AssertFileExists(t, path)
		if !strings.Contains(buf.String(), "Created config file") {
			t.Errorf("expected creation message, got %s", buf.String())
		}
	})

	t.Run("Existing Config Reported", func(t *testing.T) {
		path := t.TempDir() + "/config.toml"

		var buf bytes.Buffer
		app := testApp(testRunner(&buf))

		if err := app.Run(context.Background(), []string{"aurabeat", "setup", "--config", path}); err != nil {
			t.Fatalf("first setup failed: %v", err)
		}

		buf.Reset()
		if err := app.Run(context.Background(), []string{"aurabeat", "setup", "--config", path}); err != nil {
			t.Fatalf("second setup failed: %v", err)
		}
		if !strings.Contains(buf.String(), "already exists") {
			t.Errorf("expected already-exists message, got %s", buf.String())
		}
	})
}
