package reviews

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTextTooShort   = errors.New("reviews: text must be at least 3 characters long")
	ErrMissingAuthor  = errors.New("reviews: name and email are required")
	ErrInvalidEmail   = errors.New("reviews: invalid email format")
	ErrReviewNotFound = errors.New("reviews: review not found")
	ErrMovieMismatch  = errors.New("reviews: review does not match the specified movie")
)

// emailRegex accepts a single @ with a dotted domain.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minTextLen = 3

// Store persists reviews and their reply threads.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Submit creates a review for a movie identity. Reviews are immutable once
// created; there is no edit or delete path.
func (s *Store) Submit(source, externalID, text, name, email string) (*Review, error) {
	text, err := validateSubmission(text, name, email)
	if err != nil {
		return nil, err
	}

	review := &Review{
		ID:         uuid.NewString(),
		Source:     source,
		ExternalID: externalID,
		Text:       text,
		Name:       name,
		Email:      email,
		Replies:    []Reply{},
	}
	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// Reply appends a reply to an existing review after verifying the review
// belongs to the movie identity named in the request. The check guards
// against cross-movie reply injection via a guessed review id.
func (s *Store) Reply(reviewID, source, externalID, text, name, email string) (*Review, error) {
	text, err := validateSubmission(text, name, email)
	if err != nil {
		return nil, err
	}

	var review Review
	if err := s.db.First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("load review: %w", err)
	}
	if review.Source != source || review.ExternalID != externalID {
		return nil, ErrMovieMismatch
	}

	reply := Reply{
		ID:       uuid.NewString(),
		ReviewID: review.ID,
		Text:     text,
		Name:     name,
		Email:    email,
	}
	if err := s.db.Create(&reply).Error; err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}

	return s.byID(reviewID)
}

// ListByMovie returns every review for a movie identity, newest first, with
// replies nested in insertion order.
func (s *Store) ListByMovie(source, externalID string) ([]Review, error) {
	reviews := []Review{}
	err := s.db.
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at ASC")
		}).
		Where("source = ? AND external_id = ?", source, externalID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *Store) byID(id string) (*Review, error) {
	var review Review
	err := s.db.
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at ASC")
		}).
		First(&review, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("load review: %w", err)
	}
	return &review, nil
}

func validateSubmission(text, name, email string) (string, error) {
	text = strings.TrimSpace(text)
	if len(text) < minTextLen {
		return "", ErrTextTooShort
	}
	if name == "" || email == "" {
		return "", ErrMissingAuthor
	}
	if !emailRegex.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return text, nil
}
