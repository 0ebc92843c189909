package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/render"
)

// WithRecover превращает панику в хендлере в 500 с JSON-телом.
func WithRecover(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			sugar.Errorw("panic in handler",
				"panic", rec,
				"method", r.Method,
				"uri", r.RequestURI,
				"request_id", RequestIDFromContext(r.Context()),
				"stack", string(debug.Stack()),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "internal error"})
		}()
		h.ServeHTTP(w, r)
	})
}
