package watchlist

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
)

func newTestRouter(t *testing.T, uid uint) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Item{}))

	ctl := NewController(db)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uid)
	})
	r.GET("/api/watchlist", ctl.ListHandler)
	r.POST("/api/watchlist", ctl.AddHandler)
	r.DELETE("/api/watchlist/:externalId", ctl.RemoveHandler)
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

func TestAddAndListWatchlist(t *testing.T) {
	r, _ := newTestRouter(t, 1)

	w := do(r, http.MethodPost, "/api/watchlist", `{"source":"tmdb","externalId":"603","title":"The Matrix","poster":"p.jpg"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var items []Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "603", items[0].ExternalID)

	w = do(r, http.MethodGet, "/api/watchlist", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)
}

func TestAddWatchlistDuplicateRejected(t *testing.T) {
	r, db := newTestRouter(t, 1)

	body := `{"source":"tmdb","externalId":"603","title":"The Matrix"}`
	w := do(r, http.MethodPost, "/api/watchlist", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/watchlist", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var n int64
	require.NoError(t, db.Model(&Item{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestAddWatchlistMissingFields(t *testing.T) {
	r, _ := newTestRouter(t, 1)

	w := do(r, http.MethodPost, "/api/watchlist", `{"source":"tmdb"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveFromWatchlist(t *testing.T) {
	r, db := newTestRouter(t, 1)

	w := do(r, http.MethodPost, "/api/watchlist", `{"source":"tmdb","externalId":"603","title":"The Matrix"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Source is required on removal.
	w = do(r, http.MethodDelete, "/api/watchlist/603", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodDelete, "/api/watchlist/603?source=tmdb", "")
	require.Equal(t, http.StatusOK, w.Code)

	var n int64
	require.NoError(t, db.Model(&Item{}).Count(&n).Error)
	assert.Zero(t, n)

	// Removing again is a miss.
	w = do(r, http.MethodDelete, "/api/watchlist/603?source=tmdb", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWatchlistIsPerUser(t *testing.T) {
	r1, db := newTestRouter(t, 1)

	w := do(r1, http.MethodPost, "/api/watchlist", `{"source":"tmdb","externalId":"603","title":"The Matrix"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Another user sharing the same store sees an empty list and may add the
	// same movie.
	ctl := NewController(db)
	r2 := gin.New()
	r2.Use(func(c *gin.Context) { c.Set("user_id", uint(2)) })
	r2.GET("/api/watchlist", ctl.ListHandler)
	r2.POST("/api/watchlist", ctl.AddHandler)

	w = do(r2, http.MethodGet, "/api/watchlist", "")
	require.Equal(t, http.StatusOK, w.Code)
	var items []Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Empty(t, items)

	w = do(r2, http.MethodPost, "/api/watchlist", `{"source":"tmdb","externalId":"603","title":"The Matrix"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
