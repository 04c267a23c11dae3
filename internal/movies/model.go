package movies

import (
	"encoding/json"
	"time"
)

// SourceTMDB is the only upstream provider currently ingested.
const SourceTMDB = "tmdb"

// ReactionKind is one of the fixed set of reactions a user can leave on a
// movie.
type ReactionKind string

const (
	ReactionExcellent ReactionKind = "excellent"
	ReactionLoved     ReactionKind = "loved"
	ReactionThanks    ReactionKind = "thanks"
	ReactionWow       ReactionKind = "wow"
	ReactionSad       ReactionKind = "sad"
)

// ReactionKinds lists every valid reaction kind.
func ReactionKinds() []ReactionKind {
	return []ReactionKind{ReactionExcellent, ReactionLoved, ReactionThanks, ReactionWow, ReactionSad}
}

func (k ReactionKind) Valid() bool {
	switch k {
	case ReactionExcellent, ReactionLoved, ReactionThanks, ReactionWow, ReactionSad:
		return true
	}
	return false
}

// ReactionCounts maps each reaction kind to its tally. It must always equal
// the replay of the movie's user_reactions rows.
type ReactionCounts map[ReactionKind]int

// ZeroReactionCounts returns a counts map with every kind present at zero.
func ZeroReactionCounts() ReactionCounts {
	counts := make(ReactionCounts, len(ReactionKinds()))
	for _, k := range ReactionKinds() {
		counts[k] = 0
	}
	return counts
}

// Movie is one catalog record. The durable identity is (Source, ExternalID);
// Category is the listing bucket the record was last ingested under and is
// never part of identity.
type Movie struct {
	ID                  uint            `gorm:"primaryKey" json:"-"`
	Source              string          `gorm:"size:32;not null;uniqueIndex:idx_movies_identity" json:"source"`
	ExternalID          string          `gorm:"size:64;not null;uniqueIndex:idx_movies_identity" json:"externalId"`
	Title               string          `json:"title"`
	Slug                string          `gorm:"index" json:"slug,omitempty"`
	Poster              string          `json:"poster"`
	Category            string          `gorm:"size:32;index" json:"category"`
	GenreIDs            []int64         `gorm:"serializer:json" json:"genre_ids"`
	Genres              []string        `gorm:"serializer:json" json:"genres"`
	Overview            string          `json:"overview"`
	ImdbRating          string          `gorm:"size:8" json:"imdbRating"`
	ReleaseDate         string          `gorm:"size:16" json:"releaseDate"`
	Runtime             string          `gorm:"size:16" json:"runtime"`
	Director            string          `json:"director"`
	Cast                []string        `gorm:"serializer:json" json:"cast"`
	Budget              string          `gorm:"size:32" json:"budget"`
	Revenue             string          `gorm:"size:32" json:"revenue"`
	ProductionCompanies []string        `gorm:"serializer:json" json:"productionCompanies"`
	Language            string          `gorm:"size:16" json:"language"`
	Country             string          `json:"country"`
	Status              string          `gorm:"size:32" json:"status"`
	Tagline             string          `json:"tagline"`
	Trailer             string          `json:"trailer"`
	WatchProviders      json.RawMessage `gorm:"serializer:json" json:"watchProviders"`
	DirectLink          *string         `json:"directLink"`
	ReactionCounts      ReactionCounts  `gorm:"serializer:json" json:"reactionCounts"`
	Screenshots         []string        `gorm:"serializer:json" json:"screenshots"`
	UserReactions       []UserReaction  `gorm:"foreignKey:MovieID" json:"userReactions,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"-"`
}

// UserReaction records one user's reaction to one movie. The unique
// (movie_id, user_id) index enforces at most one reaction per user per movie
// at the database level.
type UserReaction struct {
	ID        uint         `gorm:"primaryKey" json:"-"`
	MovieID   uint         `gorm:"not null;uniqueIndex:idx_reactions_movie_user" json:"-"`
	UserID    string       `gorm:"size:64;not null;uniqueIndex:idx_reactions_movie_user" json:"userId"`
	Reaction  ReactionKind `gorm:"size:16;not null" json:"reaction"`
	CreatedAt time.Time    `json:"createdAt"`
}
