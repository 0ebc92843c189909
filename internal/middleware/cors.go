package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSOptions: политика cross-origin. AllowAll включает разрешительный вариант.
type CORSOptions struct {
	AllowedOrigins []string
	AllowAll       bool
}

// WithCORS строит CORS middleware. Preflight OPTIONS отвечается самим middleware.
// В режиме AllowAll origin отражается обратно, т.к. "*" несовместим с credentials.
func WithCORS(opts CORSOptions) func(http.Handler) http.Handler {
	o := cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if opts.AllowAll {
		o.AllowedOrigins = nil
		o.AllowOriginFunc = func(_ *http.Request, _ string) bool { return true }
	}
	return cors.Handler(o)
}
