// Package catalog implements the cache-aside layer between the persistent
// movie store and the TMDb provider: reads are served from the database when
// the stored data is sufficient, refreshed from upstream otherwise, and merged
// back without clobbering locally accumulated state.
package catalog

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/avash81/MovieVerse-backend/internal/movies"
	"github.com/avash81/MovieVerse-backend/internal/tmdb"
)

// categoryPageSize is both the sufficiency threshold for serving a category
// from the store and the slice of upstream results ingested on a miss. Fewer
// persisted rows than this counts as cold and triggers a full refresh, not a
// top-up.
const categoryPageSize = 20

// defaultThrottle is the fixed pause after every upstream call, softening
// TMDb rate limiting.
const defaultThrottle = 500 * time.Millisecond

type Service struct {
	db       *gorm.DB
	client   *tmdb.Client
	throttle time.Duration
}

func New(db *gorm.DB, client *tmdb.Client) *Service {
	return &Service{db: db, client: client, throttle: defaultThrottle}
}

// SetThrottle overrides the post-call pause. Tests set it to zero.
func (s *Service) SetThrottle(d time.Duration) {
	s.throttle = d
}

// MoviesByCategory serves a category listing, store-first. Provider errors
// propagate typed so the caller can surface rate limiting or a bad API key to
// the operator.
func (s *Service) MoviesByCategory(key string) ([]movies.Movie, error) {
	q, err := tmdb.ResolveCategory(key)
	if err != nil {
		return nil, err
	}

	var cached []movies.Movie
	if err := s.db.Where("category = ?", key).Find(&cached).Error; err != nil {
		return nil, fmt.Errorf("query category %q: %w", key, err)
	}
	if len(cached) >= categoryPageSize {
		log.Printf("serving %s movies from store: %d", key, len(cached))
		return cached, nil
	}

	items, err := s.client.FetchCategory(q, 1)
	if err != nil {
		s.pause()
		return nil, err
	}
	if len(items) > categoryPageSize {
		items = items[:categoryPageSize]
	}
	log.Printf("%s movies fetched from TMDb: %d", key, len(items))

	fresh := make([]movies.Movie, 0, len(items))
	for _, item := range items {
		m := tmdb.FromListItem(item, q.IsSeries, key)
		if err := s.upsertListing(&m); err != nil {
			return nil, fmt.Errorf("upsert %s/%s: %w", m.Source, m.ExternalID, err)
		}
		fresh = append(fresh, m)
	}

	s.pause()
	return fresh, nil
}

// MovieDetails serves a single movie by identity. A stored record with
// screenshots is treated as complete and returned unchanged. On a miss the
// provider is consulted; on provider failure a placeholder record is returned
// instead of an error, so item pages always render.
func (s *Service) MovieDetails(source, externalID string) (movies.Movie, error) {
	var cached movies.Movie
	found := true
	err := s.db.Where("source = ? AND external_id = ?", source, externalID).First(&cached).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return movies.Movie{}, fmt.Errorf("query movie %s/%s: %w", source, externalID, err)
		}
		found = false
	}

	if found && len(cached.Screenshots) > 0 {
		log.Printf("serving movie details from store: %s/%s", source, externalID)
		return cached, nil
	}

	details, err := s.client.FetchMovieDetails(externalID)
	if err != nil {
		s.pause()
		log.Printf("TMDb details fetch failed for %s/%s, returning placeholder: %v", source, externalID, err)
		return tmdb.Placeholder(source, externalID), nil
	}

	fresh := tmdb.FromDetails(details)
	if found {
		// Never reset locally accumulated state on a re-fetch.
		if cached.ReactionCounts != nil {
			fresh.ReactionCounts = cached.ReactionCounts
		}
		if cached.Category != "" {
			fresh.Category = cached.Category
		}
	}

	if err := s.upsertDetails(&fresh); err != nil {
		// Serving correct data outweighs cache durability: log and return
		// the freshly computed record anyway.
		log.Printf("failed to persist details for %s/%s: %v", source, externalID, err)
	}

	s.pause()
	return fresh, nil
}

// upsertListing writes one category-ingestion record. Conflicts resolve on
// the identity index; the category column is overwritten, so re-ingestion is
// idempotent and a movie appearing under a new listing moves buckets instead
// of forking a row.
func (s *Service) upsertListing(m *movies.Movie) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "source"}, {Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "slug", "poster", "category", "genre_ids", "overview",
			"imdb_rating", "release_date", "updated_at",
		}),
	}).Create(m).Error
}

// upsertDetails writes a full detail record by identity only, never by
// category.
func (s *Service) upsertDetails(m *movies.Movie) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "source"}, {Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "slug", "poster", "category", "genre_ids", "genres",
			"overview", "imdb_rating", "release_date", "runtime", "director",
			"cast", "budget", "revenue", "production_companies", "language",
			"country", "status", "tagline", "trailer", "watch_providers",
			"reaction_counts", "screenshots", "updated_at",
		}),
	}).Create(m).Error
}

func (s *Service) pause() {
	if s.throttle > 0 {
		time.Sleep(s.throttle)
	}
}
