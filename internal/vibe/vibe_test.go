package vibe

import (
	"math"
	"testing"

	"github.com/desertthunder/aurabeat/internal/services"
)

const epsilon = 1e-9

func assertVector(t *testing.T, got, want Vector) {
	t.Helper()

	axes := []struct {
		name      string
		got, want float64
	}{
		{"energy", got.Energy, want.Energy},
		{"danceability", got.Danceability, want.Danceability},
		{"valence", got.Valence, want.Valence},
		{"acousticness", got.Acousticness, want.Acousticness},
		{"instrumentalness", got.Instrumentalness, want.Instrumentalness},
	}

	for _, axis := range axes {
		if math.Abs(axis.got-axis.want) > epsilon {
			t.Errorf("%s = %v, want %v", axis.name, axis.got, axis.want)
		}
	}
}

func tableVector(t *testing.T, keyword string) Vector {
	t.Helper()
	for _, entry := range genreTable {
		if entry.keyword == keyword {
			return entry.vector
		}
	}
	t.Fatalf("no table entry for %q", keyword)
	return Vector{}
}

func TestFromGenres(t *testing.T) {
	t.Run("Empty Input", func(t *testing.T) {
		assertVector(t, FromGenres(nil), Neutral())
		assertVector(t, FromGenres([]string{}), Neutral())
	})

	t.Run("No Matches", func(t *testing.T) {
		got := FromGenres([]string{"vaporcore", "witch chant", "zombcore"})
		assertVector(t, got, Neutral())
	})

	t.Run("Single Match", func(t *testing.T) {
		got := FromGenres([]string{"melodic techno"})
		assertVector(t, got, tableVector(t, "techno"))
	})

	t.Run("Case Insensitive", func(t *testing.T) {
		assertVector(t, FromGenres([]string{"Deep HOUSE"}), tableVector(t, "house"))
	})

	t.Run("Each Genre Counts Once", func(t *testing.T) {
		// "dance pop" contains both "dance" and "pop"; the earlier table
		// entry wins and the genre contributes a single vector.
		assertVector(t, FromGenres([]string{"dance pop"}), tableVector(t, "dance"))
	})

	t.Run("Scan Order Precedence", func(t *testing.T) {
		// "pop" precedes "k-pop" in the table, so a k-pop tag resolves to
		// the pop entry. Same for "reggaeton" resolving to "reggae".
		assertVector(t, FromGenres([]string{"k-pop"}), tableVector(t, "pop"))
		assertVector(t, FromGenres([]string{"reggaeton"}), tableVector(t, "reggae"))
	})

	t.Run("Mean Over Matches", func(t *testing.T) {
		house := tableVector(t, "house")
		jazz := tableVector(t, "jazz")
		want := Vector{
			Energy:           (2*house.Energy + jazz.Energy) / 3,
			Danceability:     (2*house.Danceability + jazz.Danceability) / 3,
			Valence:          (2*house.Valence + jazz.Valence) / 3,
			Acousticness:     (2*house.Acousticness + jazz.Acousticness) / 3,
			Instrumentalness: (2*house.Instrumentalness + jazz.Instrumentalness) / 3,
		}

		got := FromGenres([]string{"deep house", "french house", "modern jazz"})
		assertVector(t, got, want)
	})

	t.Run("Unmatched Genres Excluded From Mean", func(t *testing.T) {
		// The unmatched tag does not dilute the average.
		got := FromGenres([]string{"norwegian black metal", "obscure microgenre"})
		assertVector(t, got, tableVector(t, "metal"))
	})

	t.Run("Deterministic", func(t *testing.T) {
		genres := []string{"indie rock", "dream pop", "lofi beats", "ambient"}
		first := FromGenres(genres)
		for i := 0; i < 10; i++ {
			assertVector(t, FromGenres(genres), first)
		}
	})
}

func TestCompute(t *testing.T) {
	t.Run("Flattens Artist Genres In Order", func(t *testing.T) {
		artists := []services.SpotifyArtist{
			{Name: "A", Genres: []string{"deep house"}},
			{Name: "B", Genres: []string{"french house", "modern jazz"}},
		}

		want := FromGenres([]string{"deep house", "french house", "modern jazz"})
		assertVector(t, Compute(artists), want)
	})

	t.Run("No Artists", func(t *testing.T) {
		assertVector(t, Compute(nil), Neutral())
	})

	t.Run("Artists Without Genres", func(t *testing.T) {
		artists := []services.SpotifyArtist{{Name: "A"}, {Name: "B"}}
		assertVector(t, Compute(artists), Neutral())
	})
}

func TestGenreTable(t *testing.T) {
	t.Run("Axes In Range", func(t *testing.T) {
		for _, entry := range genreTable {
			for _, v := range []float64{
				entry.vector.Energy,
				entry.vector.Danceability,
				entry.vector.Valence,
				entry.vector.Acousticness,
				entry.vector.Instrumentalness,
			} {
				if v < 0 || v > 1 {
					t.Errorf("entry %q has axis value %v outside [0, 1]", entry.keyword, v)
				}
			}
		}
	})

	t.Run("Lowercase Keywords", func(t *testing.T) {
		for _, entry := range genreTable {
			for _, r := range entry.keyword {
				if r >= 'A' && r <= 'Z' {
					t.Errorf("keyword %q must be lowercase for substring matching", entry.keyword)
				}
			}
		}
	})
}
