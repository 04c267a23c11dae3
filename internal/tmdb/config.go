package tmdb

import (
	"fmt"
	"os"
)

const (
	BaseURL      = "https://api.themoviedb.org/3"
	ImageBaseURL = "https://image.tmdb.org/t/p/"
	YouTubeWatch = "https://www.youtube.com/watch?v="
)

const (
	SizePosterW500   = "w500"
	SizeBackdropW500 = "w500"
)

// Placeholder images served when the provider has no artwork for an item.
const (
	PlaceholderPosterList   = "https://placehold.co/200x300?text=No+Poster"
	PlaceholderPosterDetail = "https://placehold.co/300x450?text=No+Poster"
)

// NA marks optional provider fields that came back empty.
const NA = "N/A"

type Config struct {
	APIKey string
}

func NewConfig() *Config {
	return &Config{
		APIKey: os.Getenv("TMDB_API_KEY"),
	}
}

func BuildImageURL(size, path string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s%s%s", ImageBaseURL, size, path)
}

func BuildPosterURL(path string) string {
	return BuildImageURL(SizePosterW500, path)
}

func BuildBackdropURL(path string) string {
	return BuildImageURL(SizeBackdropW500, path)
}
