package reviews

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	store *Store
}

func NewController(store *Store) *Controller {
	return &Controller{store: store}
}

type submissionDTO struct {
	Text  string `json:"text"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (ct *Controller) SubmitHandler(c *gin.Context) {
	source := c.Param("source")
	externalID := c.Param("externalId")

	var body submissionDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := ct.store.Submit(source, externalID, body.Text, body.Name, body.Email)
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (ct *Controller) ReplyHandler(c *gin.Context) {
	source := c.Param("source")
	externalID := c.Param("externalId")
	reviewID := c.Param("reviewId")

	var body submissionDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := ct.store.Reply(reviewID, source, externalID, body.Text, body.Name, body.Email)
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (ct *Controller) ListHandler(c *gin.Context) {
	source := c.Param("source")
	externalID := c.Param("externalId")

	reviews, err := ct.store.ListByMovie(source, externalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error fetching reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrTextTooShort), errors.Is(err, ErrMissingAuthor), errors.Is(err, ErrInvalidEmail):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrReviewNotFound):
		return http.StatusNotFound, "review not found"
	case errors.Is(err, ErrMovieMismatch):
		return http.StatusBadRequest, "review does not match the specified movie"
	default:
		return http.StatusInternalServerError, "server error"
	}
}
