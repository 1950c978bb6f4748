package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/aurabeat/internal/formatter"
	"github.com/desertthunder/aurabeat/internal/ui"
	"github.com/desertthunder/aurabeat/internal/vibe"
	"github.com/urfave/cli/v3"
)

const vibeArtistSample = 50

// Vibe computes and prints the listener's vibe profile.
//
// With --genres the profile is computed from the given tags directly,
// otherwise from the genres of the top artists for the selected time range.
func (r *Runner) Vibe(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	var vector vibe.Vector

	if genres := cmd.StringSlice("genres"); len(genres) > 0 {
		vector = vibe.FromGenres(genres)
	} else {
		accessToken, err := r.cliAccessToken(ctx, cmd.String("config"))
		if err != nil {
			return err
		}

		svc, err := r.ensureSpotify()
		if err != nil {
			return err
		}

		artists, err := svc.TopArtists(ctx, accessToken, cmd.String("range"), vibeArtistSample)
		if err != nil {
			return fmt.Errorf("failed to fetch top artists: %w", err)
		}

		vector = vibe.Compute(artists)
	}

	if cmd.Bool("json") {
		return r.writeJSON(vector, true)
	}

	return r.writePlainln(ui.RenderVibe(vector))
}

// Top lists the listener's top tracks and artists for a time range.
func (r *Runner) Top(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	accessToken, err := r.cliAccessToken(ctx, cmd.String("config"))
	if err != nil {
		return err
	}

	svc, err := r.ensureSpotify()
	if err != nil {
		return err
	}

	timeRange := cmd.String("range")
	limit := int(cmd.Int("limit"))

	tracks, err := svc.TopTracks(ctx, accessToken, timeRange, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch top tracks: %w", err)
	}

	artists, err := svc.TopArtists(ctx, accessToken, timeRange, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch top artists: %w", err)
	}

	if path := cmd.String("export"); path != "" {
		snapshot := &formatter.Snapshot{
			TimeRange: timeRange,
			Tracks:    tracks,
			Artists:   artists,
			Vibe:      vibe.Compute(artists),
		}
		if err := formatter.Write(snapshot, path); err != nil {
			return err
		}
		return r.writePlain("✓ Snapshot written to %s\n", path)
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"time_range": timeRange,
			"tracks":     tracks,
			"artists":    artists,
		}, true)
	}

	r.writePlain("Top tracks (%s):\n", timeRange)
	for i, track := range tracks {
		names := make([]string, 0, len(track.Artists))
		for _, artist := range track.Artists {
			names = append(names, artist.Name)
		}
		r.writePlain("  %2d. %s — %s\n", i+1, track.Name, strings.Join(names, ", "))
	}

	r.writePlain("\nTop artists (%s):\n", timeRange)
	for i, artist := range artists {
		line := fmt.Sprintf("  %2d. %s", i+1, artist.Name)
		if len(artist.Genres) > 0 {
			line += fmt.Sprintf(" (%s)", strings.Join(artist.Genres, ", "))
		}
		r.writePlain("%s\n", line)
	}

	return nil
}
