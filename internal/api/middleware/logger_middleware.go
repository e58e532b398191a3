package middleware

import (
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/metrics"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type StatusRecoder struct {
	http.ResponseWriter
	status int
}

func (w *StatusRecoder) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *StatusRecoder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func (w *StatusRecoder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func getUserID(r *http.Request) uuid.UUID {
	if payload := util.GetTokenPayloadFromContext(r.Context()); payload != nil {
		return payload.UserID
	}
	return uuid.Nil
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// 記錄request 請求
// request logger 放進context, handler 以 zerolog.Ctx 取用
func LoggerMiddleware(logger *zerolog.Logger, m *metrics.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestId := util.GetRequestIDFromContext(r.Context())
			reqLogger := logger.With().Str("request_id", requestId).Logger()

			recoder := &StatusRecoder{
				ResponseWriter: w,
			}
			next.ServeHTTP(recoder, r.WithContext(reqLogger.WithContext(r.Context())))

			latency := time.Since(start)
			m.ObserveHTTP(r.Method, routePattern(r), recoder.Status(), latency)

			evt := reqLogger.Info()
			if recoder.Status() >= http.StatusInternalServerError {
				evt = reqLogger.Error()
			}
			evt.Str("user_id", getUserID(r).String()).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Str("remote_addr", r.RemoteAddr).
				Int("status", recoder.Status()).
				Dur("latency", latency).
				Msg("request completed")
		})
	}
}
