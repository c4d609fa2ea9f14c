package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// ConcurrencyLimiter caps how many requests a handler serves at once.
// Requests over the cap are rejected right away with 503 and Retry-After.
type ConcurrencyLimiter struct {
	log        *slog.Logger
	slots      chan struct{}
	retryAfter time.Duration
}

func NewConcurrencyLimiter(log *slog.Logger, concurrency int, retryAfter time.Duration) *ConcurrencyLimiter {
	return &ConcurrencyLimiter{
		log:        log,
		slots:      make(chan struct{}, max(concurrency, 1)),
		retryAfter: max(retryAfter, time.Second),
	}
}

func (cl *ConcurrencyLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case cl.slots <- struct{}{}:
		default:
			cl.log.Warn("too many concurrent requests", "method", r.Method, "path", r.URL.Path, "limit", cap(cl.slots))
			w.Header().Set("Retry-After", strconv.Itoa(int(cl.retryAfter/time.Second)))
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		defer func() { <-cl.slots }()
		next.ServeHTTP(w, r)
	})
}
