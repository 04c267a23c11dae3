package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avash81/MovieVerse-backend/internal/catalog"
	"github.com/avash81/MovieVerse-backend/internal/movies"
	"github.com/avash81/MovieVerse-backend/internal/tmdb"
)

func newTestRouter(t *testing.T, upstream http.HandlerFunc) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&movies.Movie{}, &movies.UserReaction{}))

	client := tmdb.NewClientWithBaseURL(&tmdb.Config{APIKey: "test-key"}, srv.URL)
	svc := catalog.New(db, client)
	svc.SetThrottle(0)

	ctl := NewController(svc, movies.NewReactionStore(db))

	r := gin.New()
	r.GET("/api/movies/categories/:categoryId", ctl.CategoryHandler)
	r.GET("/api/movies/details/:source/:externalId", ctl.DetailsHandler)
	r.POST("/api/movies/reactions/:source/:externalId", ctl.SubmitReactionHandler)
	r.GET("/api/movies/reactions/:source/:externalId", ctl.ListReactionsHandler)
	return r, db
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCategoryStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		upstream   int
		path       string
		wantStatus int
	}{
		{"invalid category", http.StatusOK, "/api/movies/categories/horror", http.StatusBadRequest},
		{"rate limited", http.StatusTooManyRequests, "/api/movies/categories/action", http.StatusTooManyRequests},
		{"bad api key", http.StatusUnauthorized, "/api/movies/categories/action", http.StatusUnauthorized},
		{"not found", http.StatusNotFound, "/api/movies/categories/action", http.StatusNotFound},
		{"upstream down", http.StatusBadGateway, "/api/movies/categories/action", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(tt.upstream)
			})
			w := do(r, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestDetailsAlwaysRenders(t *testing.T) {
	r, _ := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	w := do(r, http.MethodGet, "/api/movies/details/tmdb/99999", "")
	require.Equal(t, http.StatusOK, w.Code)

	var m movies.Movie
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, "Movie Not Found", m.Title)
}

func TestDetailsRejectsUnknownSource(t *testing.T) {
	r, _ := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {})

	w := do(r, http.MethodGet, "/api/movies/details/imdb/603", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReactionEndpointStatuses(t *testing.T) {
	r, db := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {})

	seed := movies.Movie{Source: "tmdb", ExternalID: "603", Title: "The Matrix", ReactionCounts: movies.ZeroReactionCounts()}
	require.NoError(t, db.Create(&seed).Error)

	// Unknown movie.
	w := do(r, http.MethodPost, "/api/movies/reactions/tmdb/999", `{"reaction":"loved","userId":"u1"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Invalid kind.
	w = do(r, http.MethodPost, "/api/movies/reactions/tmdb/603", `{"reaction":"meh","userId":"u1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing user.
	w = do(r, http.MethodPost, "/api/movies/reactions/tmdb/603", `{"reaction":"loved"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// First reaction succeeds.
	w = do(r, http.MethodPost, "/api/movies/reactions/tmdb/603", `{"reaction":"loved","userId":"u1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ReactionCounts movies.ReactionCounts `json:"reactionCounts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ReactionCounts[movies.ReactionLoved])

	// Second reaction from the same user conflicts.
	w = do(r, http.MethodPost, "/api/movies/reactions/tmdb/603", `{"reaction":"wow","userId":"u1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Counts read back.
	w = do(r, http.MethodGet, "/api/movies/reactions/tmdb/603", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ReactionCounts[movies.ReactionLoved])
	assert.Equal(t, 0, resp.ReactionCounts[movies.ReactionWow])
}
