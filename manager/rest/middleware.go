package rest

import (
	"bytes"
	"net/http"
	"runtime/debug"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/registra/api/manager/domain"
	"github.com/registra/api/manager/metrics"
	"github.com/registra/api/pkg/logger"
	"github.com/rs/xid"
)

// GetAuthMiddleware requires a valid bearer token. With roles given, the
// account must also hold one of them.
func (h *Handler) GetAuthMiddleware(roles ...domain.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			tokenString := r.Header.Get("Authorization")
			if tokenString == "" {
				h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Missing Authorization header", nil)
				return
			}

			// parse bearer token
			const bearerPrefix = "Bearer "
			if len(tokenString) <= len(bearerPrefix) || !strings.EqualFold(tokenString[:len(bearerPrefix)], bearerPrefix) {
				h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Invalid Authorization header format", nil)
				return
			}
			tokenString = tokenString[len(bearerPrefix):]

			actor, err := h.Svc.VerifyJWTToken(ctx, tokenString)
			if err != nil {
				h.HandleError(ctx, w, err)
				return
			}
			if len(roles) > 0 && !slices.Contains(roles, actor.Role) {
				h.ErrorResponse(ctx, w, http.StatusForbidden, "Forbidden", nil)
				return
			}

			log := logger.Logger(ctx).With().Str("actor_id", actor.ID.Hex()).Str("actor_role", string(actor.Role)).Logger()
			ctx = log.WithContext(ctx)
			ctx = h.SetActorInContext(ctx, actor)
			r = r.WithContext(ctx)
			next.ServeHTTP(w, r)
		})
	}
}

func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = xid.New().String()
		}
		w.Header().Set("X-Request-ID", reqID)
		start := time.Now()
		log := logger.Logger(ctx).With().
			Str("method", r.Method).Str("req_id", reqID).
			Str("url", r.URL.String()).Logger()

		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("panic", err).Msgf("Recovered from panic, stack trace: %s", string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		ctx = log.WithContext(ctx)
		r = r.WithContext(ctx)
		responseWriter := NewResponseWriter(w)
		next.ServeHTTP(responseWriter, r)
		cost := time.Since(start)
		metrics.HTTPRequestDuration.
			WithLabelValues(r.Method, strconv.Itoa(responseWriter.statusCode)).
			Observe(cost.Seconds())
		log = log.With().
			Int("cost_msec", int(cost.Milliseconds())).
			Logger()
		if responseWriter.statusCode >= 500 {
			log.Error().
				Int("status_code", responseWriter.statusCode).
				Str("response_body", responseWriter.responseBody.String()).
				Msg("Request completed with server error")
		} else if responseWriter.statusCode >= 400 {
			log.Warn().
				Int("status_code", responseWriter.statusCode).
				Str("response_body", responseWriter.responseBody.String()).
				Msg("Request completed with client error")
		} else {
			log.Info().
				Int("status_code", responseWriter.statusCode).
				Msg("Request completed successfully")
		}
	})
}

type responseWriter struct {
	http.ResponseWriter
	responseBody bytes.Buffer
	statusCode   int
}

func NewResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode >= 400 {
		rw.responseBody.Write(b)
	}
	return rw.ResponseWriter.Write(b)
}
