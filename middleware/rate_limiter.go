package middleware

import (
	"net/http"
	"sync"

	"github.com/adeeb-debug/baitussalambookingapp/config"
	"github.com/adeeb-debug/baitussalambookingapp/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type limiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newLimiterStore() *limiterStore {
	return &limiterStore{limiters: make(map[string]*rate.Limiter)}
}

func (s *limiterStore) get(key string, r rate.Limit, burst int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	lim, ok := s.limiters[key]
	if !ok {
		lim = rate.NewLimiter(r, burst)
		s.limiters[key] = lim
	}
	return lim
}

// RateLimitMiddleware limits each client IP to the configured number of
// requests per minute.
func RateLimitMiddleware() gin.HandlerFunc {
	logger := utils.GetLogger().Named("rate-limiter")
	store := newLimiterStore()

	perMin := config.AppConfig.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = 60
	}
	limit := rate.Limit(float64(perMin) / 60.0)
	burst := perMin

	return func(c *gin.Context) {
		ip := getClientIP(c)
		if !store.get(ip, limit, burst).Allow() {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
