package tmdb

import (
	"fmt"
	"net/url"
)

// CategoryQuery is the resolved provider request for a category key.
type CategoryQuery struct {
	Key      string
	Endpoint string
	Params   url.Values
	IsSeries bool
}

// TMDb genre identifiers for the genre-named categories.
const (
	genreAction = "28"
	genreComedy = "35"
	genreDrama  = "18"
)

// ResolveCategory translates a category key from the fixed key set into the
// TMDb endpoint and parameter set that serves it. Unknown keys are a client
// error and never reach the provider.
func ResolveCategory(key string) (CategoryQuery, error) {
	q := CategoryQuery{Key: key, Params: url.Values{}}

	switch key {
	case "trending":
		q.Endpoint = "/trending/all/week"
	case "action":
		q.Endpoint = "/discover/movie"
		q.Params.Set("with_genres", genreAction)
	case "comedy":
		q.Endpoint = "/discover/movie"
		q.Params.Set("with_genres", genreComedy)
	case "drama":
		q.Endpoint = "/discover/movie"
		q.Params.Set("with_genres", genreDrama)
	case "bollywood":
		q.Endpoint = "/discover/movie"
		q.Params.Set("with_original_language", "hi")
	case "hollywood":
		q.Endpoint = "/discover/movie"
		q.Params.Set("with_original_language", "en")
		q.Params.Set("region", "US")
	case "tamil":
		q.Endpoint = "/discover/movie"
		q.Params.Set("with_original_language", "ta")
	case "telugu":
		q.Endpoint = "/discover/movie"
		q.Params.Set("with_original_language", "te")
	case "webseries", "tvshows":
		q.Endpoint = "/discover/tv"
		q.IsSeries = true
	case "topimdb":
		q.Endpoint = "/movie/top_rated"
	case "classics":
		q.Endpoint = "/discover/movie"
		q.Params.Set("sort_by", "vote_average.desc")
		q.Params.Set("primary_release_year", "1990")
	default:
		return CategoryQuery{}, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
	}

	return q, nil
}

// CategoryKeys lists every recognized category key.
func CategoryKeys() []string {
	return []string{
		"trending", "action", "comedy", "drama",
		"bollywood", "hollywood", "tamil", "telugu",
		"webseries", "tvshows", "topimdb", "classics",
	}
}
