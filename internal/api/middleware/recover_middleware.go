package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/rs/zerolog"
)

// 需放在 LoggerMiddleware 內層, 才能拿到帶request id的logger
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				zerolog.Ctx(r.Context()).Error().
					Interface("panic", err).
					Bytes("stack", debug.Stack()).
					Str("method", r.Method).
					Str("url", r.URL.String()).
					Msg("panic recovered")

				api.ErrorJSON(w, http.StatusInternalServerError, apperr.ErrStrMap[apperr.InternalErrorCode])
			}
		}()

		next.ServeHTTP(w, r)
	})
}
