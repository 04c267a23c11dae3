package tmdb

import "encoding/json"

// ListResponse is the shape shared by /discover, /trending and /movie/top_rated.
type ListResponse struct {
	Page         int        `json:"page"`
	Results      []ListItem `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// ListItem is one entry of a category listing. Movies carry Title and
// ReleaseDate; TV series carry Name and FirstAirDate instead.
type ListItem struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Name         string   `json:"name"`
	Overview     string   `json:"overview"`
	PosterPath   string   `json:"poster_path"`
	BackdropPath string   `json:"backdrop_path"`
	ReleaseDate  string   `json:"release_date"`
	FirstAirDate string   `json:"first_air_date"`
	VoteAverage  *float64 `json:"vote_average"`
	GenreIDs     []int64  `json:"genre_ids"`
}

// Details is a /movie/{id} response with
// append_to_response=credits,videos,images,watch/providers.
type Details struct {
	ID                  int64               `json:"id"`
	Title               string              `json:"title"`
	Overview            string              `json:"overview"`
	PosterPath          string              `json:"poster_path"`
	ReleaseDate         string              `json:"release_date"`
	Runtime             int                 `json:"runtime"`
	VoteAverage         *float64            `json:"vote_average"`
	Budget              int64               `json:"budget"`
	Revenue             int64               `json:"revenue"`
	OriginalLanguage    string              `json:"original_language"`
	Status              string              `json:"status"`
	Tagline             string              `json:"tagline"`
	Genres              []Genre             `json:"genres"`
	GenreIDs            []int64             `json:"genre_ids"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
	ProductionCountries []ProductionCountry `json:"production_countries"`
	Credits             Credits             `json:"credits"`
	Videos              VideoList           `json:"videos"`
	Images              ImageList           `json:"images"`
	WatchProviders      WatchProviders      `json:"watch/providers"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductionCompany struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductionCountry struct {
	ISO31661 string `json:"iso_3166_1"`
	Name     string `json:"name"`
}

type CastMember struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

type CrewMember struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type VideoList struct {
	Results []Video `json:"results"`
}

type Image struct {
	FilePath string `json:"file_path"`
}

type ImageList struct {
	Backdrops []Image `json:"backdrops"`
	Posters   []Image `json:"posters"`
}

// WatchProviders is carried through opaque: the per-region shape is
// provider-defined and the backend never destructures it.
type WatchProviders struct {
	Results json.RawMessage `json:"results"`
}
