package middleware

import (
	"net/http"
	"strings"

	"github.com/Gobusters/ectolinq"
)

var (
	corsAllowedHeaders = strings.Join([]string{
		"Content-Type", "Authorization",
		"X-Actor-User", "X-Actor-Company", "X-Actor-Site", "X-Actor-Role",
	}, ", ")
	corsExposedHeaders = "Content-Disposition, X-Report-Id, X-Report-Failed-Sections"
)

// CORSMiddleware lets browser portals on allowedOrigins fetch reports.
// A "*" entry allows any origin; preflights from other origins are refused.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	wildcard := ectolinq.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			allowed := origin != "" && (wildcard || ectolinq.Contains(allowedOrigins, origin))

			if allowed {
				if wildcard {
					w.Header().Set("Access-Control-Allow-Origin", "*")
				} else {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Add("Vary", "Origin")
				}
				w.Header().Set("Access-Control-Expose-Headers", corsExposedHeaders)
			}

			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			w.Header().Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
