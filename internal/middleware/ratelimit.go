package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/BruksfildServices01/food-ordering/internal/httperr"
)

// RateLimit throttles per client IP. formatted uses the limiter syntax,
// e.g. "10-M" for ten requests a minute.
func RateLimit(formatted string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("rate limit %q: %w", formatted, err)
	}

	instance := limiter.New(memory.NewStore(), rate)

	limiterMiddleware := stdlib.NewMiddleware(instance,
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {}),
	)

	return func(c *gin.Context) {
		passed := false
		limiterMiddleware.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Next()
		})).ServeHTTP(c.Writer, c.Request)

		if !passed {
			httperr.Abort(c, http.StatusTooManyRequests, "rate_limited", "Too many requests, try again later")
		}
	}, nil
}
