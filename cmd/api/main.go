package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/germanygsg/medrec/internal/config"
	dbpkg "github.com/germanygsg/medrec/internal/db"
	"github.com/germanygsg/medrec/internal/logger"
	"github.com/germanygsg/medrec/internal/ratelimit"
	"github.com/germanygsg/medrec/internal/routes"
)

func main() {

	cfg := config.Load()
	logger.Setup(cfg)

	db := dbpkg.NewDB(cfg)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limiter := newRateLimitStore(cfg)

	routes.RegisterRoutes(r, db, cfg, limiter)

	log.Info().Str("addr", cfg.Addr()).Msg("server listening")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// newRateLimitStore picks the shared Redis store when a Redis URL is
// configured, else a per-process in-memory store.
func newRateLimitStore(cfg *config.Config) ratelimit.Store {
	if cfg.RedisURL != "" {
		store, err := ratelimit.NewRedisStoreFromURL(
			cfg.RedisURL,
			cfg.RateLimit.Window,
			cfg.RateLimit.MaxRequests,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		return store
	}
	return ratelimit.NewMemoryStore(cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)
}
