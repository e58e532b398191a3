package middleware

import (
	"net"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/storefront/internal/metrics"
)

const (
	GeneralLimiterName = "general"
	AuthLimiterName    = "auth"
	ApiLimiterName     = "api"
)

// 超過限制時回給client的訊息
var rateLimitMessages = map[string]string{
	GeneralLimiterName: "Too many requests from this IP, please try again later.",
	AuthLimiterName:    "Too many authentication attempts, please try again later.",
	ApiLimiterName:     "Too many API requests from this IP, please try again later.",
}

// clientIP RealIP 之後 RemoteAddr 可能不含port
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// NewRateLimitMiddleware 依client ip限流, 超過時回傳429
func NewRateLimitMiddleware(name string, limiter ratelimit.KeyedLimiter, m *metrics.Metrics) func(http.Handler) http.Handler {
	if limiter == nil {
		panic("rate limit middleware initialization failed: limiter cannot be nil")
	}
	message, ok := rateLimitMessages[name]
	if !ok {
		message = rateLimitMessages[GeneralLimiterName]
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(r.Context(), name+":"+clientIP(r)) {
				m.RateLimited(name)
				api.ErrorJSON(w, http.StatusTooManyRequests, message)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
