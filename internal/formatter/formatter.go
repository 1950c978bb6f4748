// package formatter exports listening snapshots to CSV, Markdown, and JSON files
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertthunder/aurabeat/internal/services"
	"github.com/desertthunder/aurabeat/internal/vibe"
)

// Snapshot bundles one time range's listening data for export.
type Snapshot struct {
	TimeRange string                   `json:"time_range"`
	Tracks    []services.SpotifyTrack  `json:"tracks"`
	Artists   []services.SpotifyArtist `json:"artists"`
	Vibe      vibe.Vector              `json:"vibe"`
}

// ToCSV renders the snapshot's tracks as CSV with columns: Rank, Title, Artists, Album, Duration.
func ToCSV(snapshot *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Rank", "Title", "Artists", "Album", "Duration"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, track := range snapshot.Tracks {
		record := []string{
			fmt.Sprintf("%d", i+1),
			track.Name,
			joinArtists(track.Artists),
			track.Album.Name,
			trackLength(track.DurationMS),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ToMarkdown renders the snapshot as a Markdown report with the vibe profile
// and both top lists.
func ToMarkdown(snapshot *Snapshot) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# Listening Snapshot (%s)\n\n", snapshot.TimeRange))

	buf.WriteString("## Vibe\n\n")
	buf.WriteString("| Axis | Value |\n|------|-------|\n")
	for _, axis := range []struct {
		label string
		value float64
	}{
		{"Energy", snapshot.Vibe.Energy},
		{"Danceability", snapshot.Vibe.Danceability},
		{"Valence", snapshot.Vibe.Valence},
		{"Acousticness", snapshot.Vibe.Acousticness},
		{"Instrumentalness", snapshot.Vibe.Instrumentalness},
	} {
		buf.WriteString(fmt.Sprintf("| %s | %.2f |\n", axis.label, axis.value))
	}

	buf.WriteString("\n## Top Tracks\n\n")
	for i, track := range snapshot.Tracks {
		albumPart := ""
		if track.Album.Name != "" {
			albumPart = fmt.Sprintf(" (%s)", track.Album.Name)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s]\n", i+1, joinArtists(track.Artists), track.Name, albumPart, trackLength(track.DurationMS)))
	}

	buf.WriteString("\n## Top Artists\n\n")
	for i, artist := range snapshot.Artists {
		genrePart := ""
		if len(artist.Genres) > 0 {
			genrePart = fmt.Sprintf(" (%s)", strings.Join(artist.Genres, ", "))
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s\n", i+1, artist.Name, genrePart))
	}

	return buf.Bytes()
}

// ToJSON renders the snapshot as indented JSON.
func ToJSON(snapshot *Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// Write exports the snapshot to the given path, picking the format from the
// file extension: .csv, .md, or .json (the default for anything else).
func Write(snapshot *Snapshot, path string) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		data, err = ToCSV(snapshot)
	case ".md":
		data = ToMarkdown(snapshot)
	default:
		data, err = ToJSON(snapshot)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	return nil
}

func joinArtists(artists []services.SpotifyArtist) string {
	names := make([]string, 0, len(artists))
	for _, artist := range artists {
		names = append(names, artist.Name)
	}
	return strings.Join(names, ", ")
}

// trackLength formats a millisecond duration as m:ss.
func trackLength(ms int) string {
	total := ms / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
