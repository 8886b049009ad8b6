package config

// Keys of the built-in configuration schema. Documents may carry arbitrary
// additional keys; these are merely the ones spotisonic itself reads.
const (
	KeyPreviewLength        = "default_preview_length"
	KeyShuffle              = "default_shuffle"
	KeyScrobble             = "default_scrobble"
	KeyMinLikedForArtist    = "min_liked_for_artist"
	KeyMinBookmarkedArtist  = "min_bookmarked_for_artist"
	KeyMaxPlaysForNewArtist = "max_plays_for_new_artist"
)

const (
	defaultPreviewLength        = 30
	defaultShuffle              = true
	defaultScrobble             = true
	defaultMinLikedForArtist    = 1
	defaultMinBookmarkedArtist  = 1
	defaultMaxPlaysForNewArtist = 0
)

// Default returns a fresh copy of the built-in configuration. Numeric values
// are float64 to match how encoding/json decodes numbers, so defaults and
// loaded values compare interchangeably.
func Default() Config {
	return Config{
		KeyPreviewLength:        float64(defaultPreviewLength),
		KeyShuffle:              defaultShuffle,
		KeyScrobble:             defaultScrobble,
		KeyMinLikedForArtist:    float64(defaultMinLikedForArtist),
		KeyMinBookmarkedArtist:  float64(defaultMinBookmarkedArtist),
		KeyMaxPlaysForNewArtist: float64(defaultMaxPlaysForNewArtist),
	}
}
