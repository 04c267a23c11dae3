package movies

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrMovieNotFound     = errors.New("movies: movie not found")
	ErrInvalidReaction   = errors.New("movies: invalid reaction type")
	ErrMissingUserID     = errors.New("movies: user id is required")
	ErrDuplicateReaction = errors.New("movies: user has already reacted to this movie")
)

// ReactionStore enforces one-reaction-per-user-per-movie and keeps the
// per-kind counters on the movie record in lockstep with the user_reactions
// rows.
type ReactionStore struct {
	db *gorm.DB
}

func NewReactionStore(db *gorm.DB) *ReactionStore {
	return &ReactionStore{db: db}
}

// Submit appends a (user, reaction) pair and bumps the matching counter in a
// single transaction. A user gets exactly one reaction per movie, permanently;
// there is no update-in-place.
func (s *ReactionStore) Submit(source, externalID, userID string, kind ReactionKind) (ReactionCounts, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReaction, kind)
	}
	if userID == "" {
		return nil, ErrMissingUserID
	}

	var counts ReactionCounts
	err := s.db.Transaction(func(tx *gorm.DB) error {
		q := tx.Where("source = ? AND external_id = ?", source, externalID)
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var movie Movie
		if err := q.First(&movie).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMovieNotFound
			}
			return fmt.Errorf("load movie: %w", err)
		}

		reaction := UserReaction{MovieID: movie.ID, UserID: userID, Reaction: kind}
		if err := tx.Create(&reaction).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateReaction
			}
			return fmt.Errorf("append reaction: %w", err)
		}

		// Recount from the rows rather than incrementing blindly so the
		// stored map always equals the replay of user_reactions.
		fresh, err := replayCounts(tx, movie.ID)
		if err != nil {
			return err
		}
		if err := tx.Model(&movie).Update("reaction_counts", fresh).Error; err != nil {
			return fmt.Errorf("update counts: %w", err)
		}

		counts = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// Counts returns the stored reaction tallies for a movie identity.
func (s *ReactionStore) Counts(source, externalID string) (ReactionCounts, error) {
	var movie Movie
	err := s.db.Where("source = ? AND external_id = ?", source, externalID).First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("load movie: %w", err)
	}
	if movie.ReactionCounts == nil {
		return ZeroReactionCounts(), nil
	}
	return movie.ReactionCounts, nil
}

func replayCounts(tx *gorm.DB, movieID uint) (ReactionCounts, error) {
	type row struct {
		Reaction ReactionKind
		N        int
	}
	var rows []row
	err := tx.Model(&UserReaction{}).
		Select("reaction, count(*) as n").
		Where("movie_id = ?", movieID).
		Group("reaction").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("replay counts: %w", err)
	}

	counts := ZeroReactionCounts()
	for _, r := range rows {
		counts[r.Reaction] = r.N
	}
	return counts, nil
}
