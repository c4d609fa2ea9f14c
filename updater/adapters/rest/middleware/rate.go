package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimiter holds requests until the limiter admits them. A request whose
// context ends first, or any request when rps is not positive, is rejected.
type RateLimiter struct {
	limiter *rate.Limiter
}

func NewRateLimiter(rps int) *RateLimiter {
	if rps <= 0 {
		return &RateLimiter{limiter: rate.NewLimiter(0, 0)}
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := rl.limiter.Wait(r.Context()); err != nil {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
