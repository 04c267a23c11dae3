package tmdb

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gosimple/slug"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/avash81/MovieVerse-backend/internal/movies"
)

const (
	maxCast        = 5
	maxScreenshots = 5
)

// currency renders grouped dollar amounts ("$1,234,567").
var currency = message.NewPrinter(language.English)

// FromListItem maps one category-listing entry to the internal Movie shape.
// Series items read name/first_air_date in place of title/release_date.
// Every optional field gets a deterministic default so equal-shape records
// come out regardless of payload completeness.
func FromListItem(item ListItem, isSeries bool, category string) movies.Movie {
	title := item.Title
	releaseDate := item.ReleaseDate
	if isSeries {
		title = item.Name
		releaseDate = item.FirstAirDate
	}

	m := movies.Movie{
		Source:              movies.SourceTMDB,
		ExternalID:          strconv.FormatInt(item.ID, 10),
		Title:               defaultString(title, NA),
		Poster:              imageOrPlaceholder(item.PosterPath, PlaceholderPosterList),
		Category:            category,
		GenreIDs:            item.GenreIDs,
		Genres:              []string{NA},
		Overview:            defaultString(item.Overview, "No overview available"),
		ImdbRating:          formatRating(item.VoteAverage),
		ReleaseDate:         defaultString(releaseDate, NA),
		Runtime:             NA,
		Director:            NA,
		Cast:                []string{NA},
		Budget:              NA,
		Revenue:             NA,
		ProductionCompanies: []string{NA},
		Language:            NA,
		Country:             NA,
		Status:              NA,
		Tagline:             NA,
		Trailer:             NA,
		WatchProviders:      json.RawMessage("{}"),
		ReactionCounts:      movies.ZeroReactionCounts(),
		Screenshots:         []string{},
	}
	if m.Title != NA {
		m.Slug = slug.Make(m.Title)
	}
	if m.GenreIDs == nil {
		m.GenreIDs = []int64{}
	}
	return m
}

// FromDetails maps a detail payload to the internal Movie shape, resolving
// director, cast, trailer and screenshots from the appended sub-objects.
func FromDetails(d *Details) movies.Movie {
	m := movies.Movie{
		Source:              movies.SourceTMDB,
		ExternalID:          strconv.FormatInt(d.ID, 10),
		Title:               defaultString(d.Title, NA),
		Poster:              imageOrPlaceholder(d.PosterPath, PlaceholderPosterDetail),
		GenreIDs:            d.GenreIDs,
		Genres:              genreNames(d.Genres),
		Overview:            defaultString(d.Overview, "No overview available"),
		ImdbRating:          formatRating(d.VoteAverage),
		ReleaseDate:         defaultString(d.ReleaseDate, NA),
		Runtime:             formatRuntime(d.Runtime),
		Director:            findDirector(d.Credits.Crew),
		Cast:                castNames(d.Credits.Cast),
		Budget:              formatDollars(d.Budget),
		Revenue:             formatDollars(d.Revenue),
		ProductionCompanies: companyNames(d.ProductionCompanies),
		Language:            defaultString(d.OriginalLanguage, NA),
		Country:             countryNames(d.ProductionCountries),
		Status:              defaultString(d.Status, NA),
		Tagline:             defaultString(d.Tagline, NA),
		Trailer:             findTrailer(d.Videos.Results),
		WatchProviders:      providerBlob(d.WatchProviders),
		ReactionCounts:      movies.ZeroReactionCounts(),
		Screenshots:         screenshotURLs(d.Images.Backdrops),
	}
	if m.Title != NA {
		m.Slug = slug.Make(m.Title)
	}
	if m.GenreIDs == nil {
		m.GenreIDs = []int64{}
	}
	return m
}

// Placeholder is the well-formed degradation record returned when a detail
// fetch fails: visibly incomplete, but the same shape as any other Movie.
func Placeholder(source, externalID string) movies.Movie {
	return movies.Movie{
		Source:              source,
		ExternalID:          externalID,
		Title:               "Movie Not Found",
		Poster:              PlaceholderPosterList,
		Genres:              []string{NA},
		GenreIDs:            []int64{},
		Overview:            "Movie details not available.",
		ImdbRating:          NA,
		ReleaseDate:         NA,
		Runtime:             NA,
		Director:            NA,
		Cast:                []string{NA},
		Budget:              NA,
		Revenue:             NA,
		ProductionCompanies: []string{NA},
		Language:            NA,
		Country:             NA,
		Status:              NA,
		Tagline:             NA,
		Trailer:             NA,
		WatchProviders:      json.RawMessage("{}"),
		ReactionCounts:      movies.ZeroReactionCounts(),
		Screenshots:         []string{},
	}
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func imageOrPlaceholder(path, placeholder string) string {
	if path == "" {
		return placeholder
	}
	return BuildPosterURL(path)
}

func formatRating(vote *float64) string {
	if vote == nil || *vote == 0 {
		return NA
	}
	return fmt.Sprintf("%.1f", *vote)
}

func formatRuntime(minutes int) string {
	if minutes <= 0 {
		return NA
	}
	return fmt.Sprintf("%d min", minutes)
}

func formatDollars(amount int64) string {
	if amount <= 0 {
		return NA
	}
	return currency.Sprintf("$%d", amount)
}

func findDirector(crew []CrewMember) string {
	for _, c := range crew {
		if c.Job == "Director" {
			return c.Name
		}
	}
	return NA
}

func castNames(cast []CastMember) []string {
	if len(cast) == 0 {
		return []string{NA}
	}
	n := len(cast)
	if n > maxCast {
		n = maxCast
	}
	names := make([]string, 0, n)
	for _, c := range cast[:n] {
		names = append(names, c.Name)
	}
	return names
}

func findTrailer(videos []Video) string {
	for _, v := range videos {
		if v.Type == "Trailer" && v.Site == "YouTube" && v.Key != "" {
			return YouTubeWatch + v.Key
		}
	}
	return NA
}

func genreNames(genres []Genre) []string {
	if len(genres) == 0 {
		return []string{NA}
	}
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}

func companyNames(companies []ProductionCompany) []string {
	if len(companies) == 0 {
		return []string{NA}
	}
	names := make([]string, 0, len(companies))
	for _, c := range companies {
		names = append(names, c.Name)
	}
	return names
}

func countryNames(countries []ProductionCountry) string {
	if len(countries) == 0 {
		return NA
	}
	out := ""
	for i, c := range countries {
		if i > 0 {
			out += ", "
		}
		out += c.Name
	}
	return out
}

func screenshotURLs(backdrops []Image) []string {
	n := len(backdrops)
	if n > maxScreenshots {
		n = maxScreenshots
	}
	urls := make([]string, 0, n)
	for _, img := range backdrops[:n] {
		urls = append(urls, BuildBackdropURL(img.FilePath))
	}
	return urls
}

func providerBlob(wp WatchProviders) json.RawMessage {
	if len(wp.Results) == 0 {
		return json.RawMessage("{}")
	}
	return wp.Results
}
