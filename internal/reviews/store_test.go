package reviews

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Review{}, &Reply{}))
	return db
}

func TestSubmitReview(t *testing.T) {
	store := NewStore(openTestDB(t))

	review, err := store.Submit("tmdb", "603", "  Great movie!  ", "Neo", "neo@matrix.io")
	require.NoError(t, err)

	assert.NotEmpty(t, review.ID)
	assert.Equal(t, "Great movie!", review.Text, "text is stored trimmed")
	assert.Equal(t, "tmdb", review.Source)
	assert.Equal(t, "603", review.ExternalID)
	assert.Empty(t, review.Replies)
}

func TestSubmitReviewValidation(t *testing.T) {
	store := NewStore(openTestDB(t))

	tests := []struct {
		name    string
		text    string
		author  string
		email   string
		wantErr error
	}{
		{"too short", "ok", "Neo", "neo@matrix.io", ErrTextTooShort},
		{"whitespace only", "   a   ", "Neo", "neo@matrix.io", ErrTextTooShort},
		{"missing name", "Great movie!", "", "neo@matrix.io", ErrMissingAuthor},
		{"missing email", "Great movie!", "Neo", "", ErrMissingAuthor},
		{"no at sign", "Great movie!", "Neo", "neo.matrix.io", ErrInvalidEmail},
		{"two at signs", "Great movie!", "Neo", "neo@@matrix.io", ErrInvalidEmail},
		{"no domain dot", "Great movie!", "Neo", "neo@matrix", ErrInvalidEmail},
		{"whitespace in email", "Great movie!", "Neo", "neo @matrix.io", ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Submit("tmdb", "603", tt.text, tt.author, tt.email)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReplyRoundTrip(t *testing.T) {
	store := NewStore(openTestDB(t))

	review, err := store.Submit("tmdb", "603", "Great movie!", "Neo", "neo@matrix.io")
	require.NoError(t, err)

	_, err = store.Reply(review.ID, "tmdb", "603", "Agreed.", "Trinity", "trinity@matrix.io")
	require.NoError(t, err)
	updated, err := store.Reply(review.ID, "tmdb", "603", "Same here.", "Morpheus", "morpheus@matrix.io")
	require.NoError(t, err)

	require.Len(t, updated.Replies, 2)
	assert.Equal(t, "Agreed.", updated.Replies[0].Text, "replies keep submission order")
	assert.Equal(t, "Same here.", updated.Replies[1].Text)

	listed, err := store.ListByMovie("tmdb", "603")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Len(t, listed[0].Replies, 2)
}

func TestReplyUnknownReview(t *testing.T) {
	store := NewStore(openTestDB(t))

	_, err := store.Reply("no-such-id", "tmdb", "603", "Agreed.", "Trinity", "trinity@matrix.io")
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReplyMovieMismatch(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db)

	review, err := store.Submit("tmdb", "603", "Great movie!", "Neo", "neo@matrix.io")
	require.NoError(t, err)

	// A guessed review id must not let a reply cross movies.
	_, err = store.Reply(review.ID, "tmdb", "604", "Injected.", "Smith", "smith@matrix.io")
	assert.ErrorIs(t, err, ErrMovieMismatch)

	var replies int64
	require.NoError(t, db.Model(&Reply{}).Count(&replies).Error)
	assert.Zero(t, replies, "a rejected reply appends nothing")
}

func TestListByMovieNewestFirst(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db)

	older := Review{ID: "r-old", Source: "tmdb", ExternalID: "603", Text: "First!", Name: "Neo", Email: "neo@matrix.io", CreatedAt: time.Now().Add(-time.Hour)}
	newer := Review{ID: "r-new", Source: "tmdb", ExternalID: "603", Text: "Late take.", Name: "Trinity", Email: "trinity@matrix.io", CreatedAt: time.Now()}
	other := Review{ID: "r-other", Source: "tmdb", ExternalID: "604", Text: "Wrong movie.", Name: "Smith", Email: "smith@matrix.io", CreatedAt: time.Now()}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)
	require.NoError(t, db.Create(&other).Error)

	listed, err := store.ListByMovie("tmdb", "603")
	require.NoError(t, err)

	require.Len(t, listed, 2)
	assert.Equal(t, "r-new", listed[0].ID)
	assert.Equal(t, "r-old", listed[1].ID)
}

func TestListByMovieEmpty(t *testing.T) {
	store := NewStore(openTestDB(t))

	listed, err := store.ListByMovie("tmdb", "603")
	require.NoError(t, err)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
}
