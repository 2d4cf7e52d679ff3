package controller

import (
	"net/http"
	"slices"
)

// WithCORS returns a middleware that allows credentialed cross-origin requests
// from allowedOrigins and short-circuits OPTIONS preflight requests with 204
// No Content. A "*" entry allows any origin; the request origin is echoed
// back since browsers reject a wildcard together with credentials.
func WithCORS(allowedOrigins []string, next http.Handler) http.Handler {
	anyOrigin := slices.Contains(allowedOrigins, "*")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Origin")
		origin := r.Header.Get("Origin")
		if origin != "" && (anyOrigin || slices.Contains(allowedOrigins, origin)) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control")
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		}

		// handle preflight requests quickly
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
