package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/aurabeat/internal/services"
	"github.com/desertthunder/aurabeat/internal/shared"
	"github.com/urfave/cli/v3"
)

func nowUnix() int64 { return time.Now().Unix() }

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	spotify *services.SpotifyService
	logger  *log.Logger
	output  io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Spotify *services.SpotifyService
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:  opts.Config,
		spotify: opts.Spotify,
		logger:  opts.Logger,
		output:  opts.Output,
	}
}

// register returns the full command set.
func (r *Runner) register() []*cli.Command {
	return []*cli.Command{
		setupCommand(r),
		authCommand(r),
		serveCommand(r),
		vibeCommand(r),
		topCommand(r),
		nowCommand(r),
	}
}

// loadConfig resolves the effective configuration for a command invocation,
// preferring the --config path when the file exists.
func (r *Runner) loadConfig(cmd *cli.Command) *shared.Config {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil {
		if config, err := shared.LoadConfig(configPath); err == nil {
			r.config = config
			return config
		}
		r.logger.Warnf("failed to load config at %s, using defaults", configPath)
	}

	if r.config == nil {
		r.config = shared.DefaultConfig()
	}
	return r.config
}

// ensureSpotify lazily constructs the Spotify client from configuration.
func (r *Runner) ensureSpotify() (*services.SpotifyService, error) {
	if r.spotify != nil {
		return r.spotify, nil
	}

	svc, err := services.NewSpotifyService(r.config.Credentials.Spotify.Map())
	if err != nil {
		return nil, fmt.Errorf("failed to create Spotify service: %w", err)
	}

	r.spotify = svc
	return svc, nil
}

// cliAccessToken returns a valid access token for terminal commands, using
// the tokens the auth command persisted and refreshing once when stale.
func (r *Runner) cliAccessToken(ctx context.Context, configPath string) (string, error) {
	creds := &r.config.Credentials.Spotify

	if creds.AccessToken == "" {
		return "", fmt.Errorf("%w: run `aurabeat auth` first", shared.ErrNotAuthenticated)
	}

	if creds.ExpiresAt > nowUnix() {
		return creds.AccessToken, nil
	}

	svc, err := r.ensureSpotify()
	if err != nil {
		return "", err
	}

	refreshed, err := svc.Refresh(ctx, creds.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrRefreshFailed, err)
	}

	creds.AccessToken = refreshed.AccessToken
	creds.ExpiresAt = nowUnix() + refreshed.ExpiresIn
	if refreshed.RefreshToken != "" {
		creds.RefreshToken = refreshed.RefreshToken
	}

	if err := shared.SaveConfig(configPath, r.config); err != nil {
		r.logger.Warn("failed to persist refreshed tokens", "error", err)
	}

	return creds.AccessToken, nil
}

// writePlain writes formatted text to the runner's output.
func (r *Runner) writePlain(format string, args ...any) error {
	_, err := fmt.Fprintf(r.output, format, args...)
	return err
}

// writePlainln writes a line of text to the runner's output.
func (r *Runner) writePlainln(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

// writeJSON writes a value as JSON to the runner's output.
func (r *Runner) writeJSON(v any, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
