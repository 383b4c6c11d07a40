package middleware

import (
	"net/http"
	"time"

	"anoa.com/kosthub/internal/ratelimit"
	"anoa.com/kosthub/pkg/apperror"
	"anoa.com/kosthub/pkg/response"
	"github.com/gin-gonic/gin"
)

type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
}

func NewRateLimitMiddleware(limiter ratelimit.Limiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit throttles a sensitive mutating action per principal. Penolakan
// dijawab retry-later, bukan error yang perlu di-log.
func (m *RateLimitMiddleware) Limit(action string, max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		if p == nil {
			response.Denied(c, apperror.ErrNotAuthenticated, "")
			return
		}

		if !m.limiter.Allow(c.Request.Context(), p.ID.String(), action, max, window) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "terlalu banyak percobaan, coba lagi nanti",
			})
			return
		}

		c.Next()
	}
}
