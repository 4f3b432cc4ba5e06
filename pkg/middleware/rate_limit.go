package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/airesearchhub/site/pkg/endpoint"
	"github.com/airesearchhub/site/pkg/limiter"
	"github.com/airesearchhub/site/pkg/portal"
)

// RateLimitMiddleware throttles clients by IP over a one minute window.
// X-Forwarded-For is honoured only for requests arriving from trustedProxies.
type RateLimitMiddleware struct {
	limiter        *limiter.MemoryLimiter
	trustedProxies []string
}

func MakeRateLimitMiddleware(perMinute int, trustedProxies ...string) RateLimitMiddleware {
	return RateLimitMiddleware{
		limiter:        limiter.NewMemoryLimiter(time.Minute, perMinute),
		trustedProxies: trustedProxies,
	}
}

func (m RateLimitMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		if m.limiter == nil {
			return next(w, r)
		}

		key := portal.ParseClientIP(r, m.trustedProxies...)

		if m.limiter.Allow(key) {
			return next(w, r)
		}

		retryAfter := int(math.Ceil(m.limiter.RetryAfter(key).Seconds()))
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

		slog.Warn("rate limited", "client_ip", key, "request_id", RequestIDFrom(r.Context()))

		return endpoint.TooManyRequests("slow down", retryAfter)
	}
}
