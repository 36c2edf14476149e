package http

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"

	"loan-advisor/logger"
)

func RateLimitMiddleware(
	limiter *RateLimiter,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		client := clientKey(r)

		if ok, retryAfter := limiter.Allow(client); !ok {
			logger.Warn(r.Context(), "rate limit exceeded", slog.String("client", client))
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the caller by remote IP, or by the raw remote address
// when it carries no port.
func clientKey(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
