package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/minhquach8/hotel-booking/config"
	"github.com/minhquach8/hotel-booking/infras/otel"
	"github.com/minhquach8/hotel-booking/shared/cache"
	"github.com/minhquach8/hotel-booking/shared/constant"

	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	CORS() func(http.Handler) http.Handler
	RequestLogger() func(http.Handler) http.Handler
	Tracing() func(http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// CORS restricts cross-origin access to the origins named in configuration.
// When disabled it is a pass-through.
func (a *appMiddleware) CORS() func(http.Handler) http.Handler {
	if !a.config.App.CORS.Enable {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   a.config.App.CORS.AllowedOrigins,
		AllowedMethods:   a.config.App.CORS.AllowedMethods,
		AllowedHeaders:   a.config.App.CORS.AllowedHeaders,
		AllowCredentials: a.config.App.CORS.AllowCredentials,
		MaxAge:           a.config.App.CORS.MaxAgeSeconds,
	})
}

// RequestLogger tags every request with an X-Request-ID and writes a single
// structured line once the response is done.
func (a *appMiddleware) RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(constant.RequestHeaderRequestID)
			if requestID == constant.Empty {
				requestID = uuid.NewString()
			}

			w.Header().Set(constant.RequestHeaderRequestID, requestID)

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(recorder, r)

			log.Info().
				Str("requestID", requestID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("source", a.getClientIP(r)).
				Int("status", recorder.status).
				Dur("elapsed", time.Since(start)).
				Msg("request completed")
		})
	}
}

func (a *appMiddleware) Tracing() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

			ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
			defer scope.End()

			scope.SetAttributes(map[string]any{
				"app.name":        a.config.App.Name,
				"http.path":       r.URL.Path,
				"http.method":     r.Method,
				"http.user_agent": a.getUA(r),
				"http.host":       r.Host,
				"http.source":     a.getClientIP(r),
			})

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r.WithContext(ctx))

			scope.SetAttributes(map[string]any{
				"http.status_code": recorder.status,
			})
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}
