package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avash81/MovieVerse-backend/internal/catalog"
	"github.com/avash81/MovieVerse-backend/internal/movies"
	"github.com/avash81/MovieVerse-backend/internal/tmdb"
)

// Controller serves the public movie endpoints: category listings, item
// details, reactions and notices.
type Controller struct {
	catalog   *catalog.Service
	reactions *movies.ReactionStore
}

func NewController(catalog *catalog.Service, reactions *movies.ReactionStore) *Controller {
	return &Controller{catalog: catalog, reactions: reactions}
}

// CategoryHandler serves GET /api/movies/categories/:categoryId.
func (ct *Controller) CategoryHandler(c *gin.Context) {
	key := c.Param("categoryId")

	list, err := ct.catalog.MoviesByCategory(key)
	if err != nil {
		switch {
		case errors.Is(err, tmdb.ErrUnknownCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		case errors.Is(err, tmdb.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "TMDb rate limit exceeded, please try again later"})
		case errors.Is(err, tmdb.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid TMDb API key"})
		case errors.Is(err, tmdb.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no movies found for category %s", key)})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch movies, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, list)
}

// DetailsHandler serves GET /api/movies/details/:source/:externalId. Detail
// lookups never hard-fail toward the client: provider trouble degrades to a
// placeholder record inside the catalog service.
func (ct *Controller) DetailsHandler(c *gin.Context) {
	source := c.Param("source")
	externalID := c.Param("externalId")

	if source != movies.SourceTMDB {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source"})
		return
	}

	movie, err := ct.catalog.MovieDetails(source, externalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch movie details, please try again"})
		return
	}

	c.JSON(http.StatusOK, movie)
}

type reactionDTO struct {
	Reaction string `json:"reaction" binding:"required"`
	UserID   string `json:"userId"`
}

// SubmitReactionHandler serves POST /api/movies/reactions/:source/:externalId.
func (ct *Controller) SubmitReactionHandler(c *gin.Context) {
	source := c.Param("source")
	externalID := c.Param("externalId")

	var body reactionDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	counts, err := ct.reactions.Submit(source, externalID, body.UserID, movies.ReactionKind(body.Reaction))
	if err != nil {
		switch {
		case errors.Is(err, movies.ErrInvalidReaction):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reaction type"})
		case errors.Is(err, movies.ErrMissingUserID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "user id is required"})
		case errors.Is(err, movies.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		case errors.Is(err, movies.ErrDuplicateReaction):
			c.JSON(http.StatusConflict, gin.H{"error": "user has already submitted a reaction for this movie"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit reaction, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"reactionCounts": counts})
}

// ListReactionsHandler serves GET /api/movies/reactions/:source/:externalId.
func (ct *Controller) ListReactionsHandler(c *gin.Context) {
	source := c.Param("source")
	externalID := c.Param("externalId")

	counts, err := ct.reactions.Counts(source, externalID)
	if err != nil {
		if errors.Is(err, movies.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reactionCounts": counts})
}

// NoticesHandler serves GET /api/movies/notices, a static announcement feed.
func (ct *Controller) NoticesHandler(c *gin.Context) {
	notices := []gin.H{
		{"text": "New movies added to Trending and Top IMDb!"},
		{"text": "Check out our latest Bollywood releases!"},
		{"text": "Web Series section updated with new episodes!"},
		{"text": "Login to submit reviews and join the community!"},
	}
	c.JSON(http.StatusOK, notices)
}
