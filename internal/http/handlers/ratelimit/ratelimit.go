package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	e "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/errors"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/logging"
	ratelimiter "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/rate_limiter"
	"github.com/Shouganaii/tdd-clean-go-api/internal/http/handlers/response"
)

// WithRateLimiting limits requests per client IP. The limiter decides
// whether to fail open or closed when it cannot be reached.
func WithRateLimiting(
	log logging.Logger,
	rateLimiter ratelimiter.RateLimiter,
	rateLimit ratelimiter.Limit,
	keyPrefix string,
) func(http.Handler) http.Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if rateLimiter == nil {
		panic(e.NewNilArgumentError("rateLimiter"))
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			key := fmt.Sprintf("%s::%s", keyPrefix, clientIP(r))
			rate := rateLimiter.CheckLimit(r.Context(), key, rateLimit)
			if !rate.IsAllowed {
				log.Warning(r.Context(), "Rate limit exceeded.", logging.Entry("key", key))
				response.RenderRateLimitExceeded(rw)
				return
			}
			next.ServeHTTP(rw, r)
		})
	}
}

// clientIP takes the first hop of X-Forwarded-For when present, otherwise
// the remote address host.
func clientIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
