// package vibe derives a five-axis listening profile from artist genre tags.
//
// Substring matching against a curated keyword table stands in for the
// retired per-track audio-features endpoint. Output is deterministic for a
// given genre sequence.
package vibe

import (
	"strings"

	"github.com/desertthunder/aurabeat/internal/services"
)

// Vector is a point in five-dimensional feature space. Every axis lies in
// [0, 1].
type Vector struct {
	Energy           float64 `json:"energy"`
	Danceability     float64 `json:"danceability"`
	Valence          float64 `json:"valence"`
	Acousticness     float64 `json:"acousticness"`
	Instrumentalness float64 `json:"instrumentalness"`
}

// Neutral returns the fallback vector for users with no matchable genre data.
func Neutral() Vector {
	return Vector{
		Energy:           0.5,
		Danceability:     0.5,
		Valence:          0.5,
		Acousticness:     0.5,
		Instrumentalness: 0.5,
	}
}

// Compute flattens every artist's genre tags, in input order, and averages
// the reference vectors of matched keywords.
func Compute(artists []services.SpotifyArtist) Vector {
	var genres []string
	for _, artist := range artists {
		genres = append(genres, artist.Genres...)
	}
	return FromGenres(genres)
}

// FromGenres maps a genre tag sequence onto a [Vector].
//
// Each genre string contributes at most once: the first keyword in
// table-definition order whose text is a substring of the lowercased genre
// wins, so "k-pop" counts against the k-pop entry rather than both k-pop and
// pop. The result is the per-axis mean over matched genres, or [Neutral]
// when nothing matches.
func FromGenres(genres []string) Vector {
	if len(genres) == 0 {
		return Neutral()
	}

	var sum Vector
	matches := 0

	for _, genre := range genres {
		lower := strings.ToLower(genre)
		for _, entry := range genreTable {
			if strings.Contains(lower, entry.keyword) {
				sum.Energy += entry.vector.Energy
				sum.Danceability += entry.vector.Danceability
				sum.Valence += entry.vector.Valence
				sum.Acousticness += entry.vector.Acousticness
				sum.Instrumentalness += entry.vector.Instrumentalness
				matches++
				break
			}
		}
	}

	if matches == 0 {
		return Neutral()
	}

	n := float64(matches)
	return Vector{
		Energy:           sum.Energy / n,
		Danceability:     sum.Danceability / n,
		Valence:          sum.Valence / n,
		Acousticness:     sum.Acousticness / n,
		Instrumentalness: sum.Instrumentalness / n,
	}
}
