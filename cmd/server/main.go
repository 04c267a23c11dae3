package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/avash81/MovieVerse-backend/internal/api"
	"github.com/avash81/MovieVerse-backend/internal/auth"
	"github.com/avash81/MovieVerse-backend/internal/catalog"
	"github.com/avash81/MovieVerse-backend/internal/database"
	"github.com/avash81/MovieVerse-backend/internal/movies"
	"github.com/avash81/MovieVerse-backend/internal/reviews"
	"github.com/avash81/MovieVerse-backend/internal/tmdb"
	"github.com/avash81/MovieVerse-backend/internal/users"
	"github.com/avash81/MovieVerse-backend/internal/watchlist"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	if m := os.Getenv("GIN_MODE"); m != "" {
		gin.SetMode(m)
	}

	if os.Getenv("TMDB_API_KEY") == "" {
		log.Println("warning: TMDB_API_KEY is not set, provider calls will fail")
	}

	if err := database.Connect(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// run migrations to create tables
	if err := database.Migrate(
		&movies.Movie{},
		&movies.UserReaction{},
		&reviews.Review{},
		&reviews.Reply{},
		&users.User{},
		&watchlist.Item{},
	); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	tmdbClient := tmdb.NewClient(tmdb.NewConfig())
	catalogSvc := catalog.New(database.DB, tmdbClient)
	reactionStore := movies.NewReactionStore(database.DB)
	reviewStore := reviews.NewStore(database.DB)

	moviesCtl := api.NewController(catalogSvc, reactionStore)
	reviewsCtl := reviews.NewController(reviewStore)
	watchlistCtl := watchlist.NewController(database.DB)

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "MovieVerse Backend is running!"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Movie catalog routes
	movieRoutes := r.Group("/api/movies")
	{
		movieRoutes.GET("/categories/:categoryId", moviesCtl.CategoryHandler)
		movieRoutes.GET("/details/:source/:externalId", moviesCtl.DetailsHandler)
		movieRoutes.POST("/reactions/:source/:externalId", moviesCtl.SubmitReactionHandler)
		movieRoutes.GET("/reactions/:source/:externalId", moviesCtl.ListReactionsHandler)
		movieRoutes.GET("/notices", moviesCtl.NoticesHandler)
	}

	// Review routes
	reviewRoutes := r.Group("/api/reviews")
	{
		reviewRoutes.POST("/:source/:externalId", reviewsCtl.SubmitHandler)
		reviewRoutes.POST("/:source/:externalId/reply/:reviewId", reviewsCtl.ReplyHandler)
		reviewRoutes.GET("/:source/:externalId", reviewsCtl.ListHandler)
	}

	// Auth routes
	r.POST("/api/auth/register", auth.RegisterHandler)
	r.POST("/api/auth/login", auth.LoginHandler)
	r.GET("/api/auth/me", auth.RequireAuth(), auth.MeHandler)

	// Watchlist routes (auth required)
	watchlistRoutes := r.Group("/api/watchlist", auth.RequireAuth())
	{
		watchlistRoutes.GET("", watchlistCtl.ListHandler)
		watchlistRoutes.POST("", watchlistCtl.AddHandler)
		watchlistRoutes.DELETE("/:externalId", watchlistCtl.RemoveHandler)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
