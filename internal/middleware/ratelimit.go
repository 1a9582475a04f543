package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/germanygsg/medrec/internal/httperr"
	"github.com/germanygsg/medrec/internal/ratelimit"
)

// RateLimitMiddleware applies the injected store per client address.
// Limiting is best effort: a store failure lets the request through.
func RateLimitMiddleware(store ratelimit.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ratelimit.ClientIP(c.Request)

		allowed, err := store.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warn().Err(err).Str("client", key).Msg("rate limit store unavailable")
			c.Next()
			return
		}

		if !allowed {
			httperr.TooManyRequests(c, "too_many_requests", "Too many requests. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
