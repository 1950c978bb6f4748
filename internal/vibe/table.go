package vibe

// tableEntry binds a lowercase keyword substring to its reference vector.
type tableEntry struct {
	keyword string
	vector  Vector
}

// genreTable is scanned in definition order, which doubles as the precedence
// rule when a genre could match several keywords. Read-only after init.
var genreTable = []tableEntry{
	{"electronic", Vector{Energy: 0.8, Danceability: 0.8, Valence: 0.6, Acousticness: 0.1, Instrumentalness: 0.4}},
	{"edm", Vector{Energy: 0.9, Danceability: 0.9, Valence: 0.7, Acousticness: 0.05, Instrumentalness: 0.5}},
	{"house", Vector{Energy: 0.8, Danceability: 0.9, Valence: 0.7, Acousticness: 0.1, Instrumentalness: 0.5}},
	{"techno", Vector{Energy: 0.85, Danceability: 0.8, Valence: 0.5, Acousticness: 0.05, Instrumentalness: 0.7}},
	{"trance", Vector{Energy: 0.8, Danceability: 0.7, Valence: 0.6, Acousticness: 0.05, Instrumentalness: 0.6}},
	{"drum and bass", Vector{Energy: 0.9, Danceability: 0.8, Valence: 0.5, Acousticness: 0.05, Instrumentalness: 0.5}},
	{"dubstep", Vector{Energy: 0.9, Danceability: 0.7, Valence: 0.4, Acousticness: 0.05, Instrumentalness: 0.4}},
	{"dance", Vector{Energy: 0.8, Danceability: 0.9, Valence: 0.7, Acousticness: 0.1, Instrumentalness: 0.3}},
	{"pop", Vector{Energy: 0.7, Danceability: 0.7, Valence: 0.7, Acousticness: 0.3, Instrumentalness: 0.1}},
	{"k-pop", Vector{Energy: 0.75, Danceability: 0.8, Valence: 0.7, Acousticness: 0.2, Instrumentalness: 0.1}},
	{"rock", Vector{Energy: 0.8, Danceability: 0.5, Valence: 0.5, Acousticness: 0.3, Instrumentalness: 0.2}},
	{"alt rock", Vector{Energy: 0.7, Danceability: 0.5, Valence: 0.45, Acousticness: 0.35, Instrumentalness: 0.25}},
	{"metal", Vector{Energy: 0.95, Danceability: 0.35, Valence: 0.3, Acousticness: 0.05, Instrumentalness: 0.3}},
	{"hip hop", Vector{Energy: 0.7, Danceability: 0.8, Valence: 0.6, Acousticness: 0.1, Instrumentalness: 0.1}},
	{"rap", Vector{Energy: 0.7, Danceability: 0.8, Valence: 0.5, Acousticness: 0.1, Instrumentalness: 0.05}},
	{"trap", Vector{Energy: 0.75, Danceability: 0.85, Valence: 0.45, Acousticness: 0.05, Instrumentalness: 0.1}},
	{"r&b", Vector{Energy: 0.5, Danceability: 0.7, Valence: 0.6, Acousticness: 0.3, Instrumentalness: 0.1}},
	{"soul", Vector{Energy: 0.5, Danceability: 0.6, Valence: 0.6, Acousticness: 0.5, Instrumentalness: 0.1}},
	{"funk", Vector{Energy: 0.7, Danceability: 0.8, Valence: 0.7, Acousticness: 0.3, Instrumentalness: 0.2}},
	{"jazz", Vector{Energy: 0.4, Danceability: 0.5, Valence: 0.5, Acousticness: 0.7, Instrumentalness: 0.5}},
	{"classical", Vector{Energy: 0.3, Danceability: 0.2, Valence: 0.4, Acousticness: 0.9, Instrumentalness: 0.9}},
	{"acoustic", Vector{Energy: 0.3, Danceability: 0.4, Valence: 0.5, Acousticness: 0.9, Instrumentalness: 0.2}},
	{"folk", Vector{Energy: 0.4, Danceability: 0.4, Valence: 0.5, Acousticness: 0.8, Instrumentalness: 0.2}},
	{"country", Vector{Energy: 0.55, Danceability: 0.55, Valence: 0.65, Acousticness: 0.55, Instrumentalness: 0.1}},
	{"indie", Vector{Energy: 0.55, Danceability: 0.5, Valence: 0.5, Acousticness: 0.5, Instrumentalness: 0.3}},
	{"ambient", Vector{Energy: 0.2, Danceability: 0.2, Valence: 0.4, Acousticness: 0.6, Instrumentalness: 0.85}},
	{"punk", Vector{Energy: 0.9, Danceability: 0.5, Valence: 0.5, Acousticness: 0.1, Instrumentalness: 0.1}},
	{"reggae", Vector{Energy: 0.5, Danceability: 0.7, Valence: 0.7, Acousticness: 0.4, Instrumentalness: 0.2}},
	{"reggaeton", Vector{Energy: 0.75, Danceability: 0.9, Valence: 0.7, Acousticness: 0.15, Instrumentalness: 0.1}},
	{"latin", Vector{Energy: 0.7, Danceability: 0.8, Valence: 0.7, Acousticness: 0.3, Instrumentalness: 0.1}},
	{"blues", Vector{Energy: 0.5, Danceability: 0.4, Valence: 0.4, Acousticness: 0.6, Instrumentalness: 0.2}},
	{"gospel", Vector{Energy: 0.6, Danceability: 0.5, Valence: 0.7, Acousticness: 0.5, Instrumentalness: 0.1}},
	{"lofi", Vector{Energy: 0.3, Danceability: 0.5, Valence: 0.5, Acousticness: 0.4, Instrumentalness: 0.7}},
	{"synthwave", Vector{Energy: 0.7, Danceability: 0.7, Valence: 0.6, Acousticness: 0.05, Instrumentalness: 0.6}},
	{"grunge", Vector{Energy: 0.8, Danceability: 0.4, Valence: 0.3, Acousticness: 0.2, Instrumentalness: 0.2}},
	{"emo", Vector{Energy: 0.7, Danceability: 0.45, Valence: 0.3, Acousticness: 0.25, Instrumentalness: 0.15}},
	{"ska", Vector{Energy: 0.8, Danceability: 0.8, Valence: 0.7, Acousticness: 0.2, Instrumentalness: 0.15}},
	{"disco", Vector{Energy: 0.8, Danceability: 0.9, Valence: 0.8, Acousticness: 0.15, Instrumentalness: 0.2}},
}
