// internal/app/system/limits/limits.go
package limits

import "net/http"

// Request body size limits.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxFormSize caps a lead form POST. The longest form (quote) with a
	// full message stays well under it.
	MaxFormSize = 64 << 10 // 64 KB
)

// Body caps request bodies at n bytes. Reads past the cap fail, so form
// parsing reports an error instead of buffering the excess.
func Body(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}
