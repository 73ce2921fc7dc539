package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gatera900/bite-backend/api/responses"
	pkgerrors "github.com/gatera900/bite-backend/pkg/errors"
	"github.com/gatera900/bite-backend/pkg/logger"
)

type rateLimiterStore interface {
	RateLimitKey(scope, id string) string
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// AIRateLimitPolicy throttles the model-backed endpoints per client IP.
// Every completion costs real money; the rest of the API is unmetered.
type AIRateLimitPolicy struct {
	Window time.Duration
	Limit  int
}

func (p AIRateLimitPolicy) enabled() bool {
	return p.Window > 0 && p.Limit > 0
}

// AIRateLimit is a no-op when the policy is disabled or Redis is not
// configured; the API degrades to unthrottled rather than unavailable.
func AIRateLimit(policy AIRateLimitPolicy, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip := clientIP(r)
			key := store.RateLimitKey("ai", ip)
			count, err := store.IncrWithTTL(ctx, key, policy.Window)
			if err != nil {
				// A Redis outage must not take the AI features down.
				if logg != nil {
					logg.Error(ctx, "ai.rate_limit.store_error", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(policy.Limit) {
				if logg != nil {
					logCtx := logg.WithFields(ctx, map[string]any{
						"ip":             ip,
						"attempts":       count,
						"limit":          policy.Limit,
						"window_seconds": int(policy.Window.Seconds()),
					})
					logg.Warn(logCtx, "ai.rate_limit.blocked")
				}
				responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
