package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/shared/cache"
	"lodge/shared/constant"
)

const otelHTTPScopeName = "http"

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	CORS(next http.Handler) http.Handler
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

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": r.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
		})

		next.ServeHTTP(w, r.WithContext(ctx))

		if rctx := chi.RouteContext(ctx); rctx != nil {
			scope.SetAttribute("http.route", rctx.RoutePattern())
		}
	})
}

func (a *appMiddleware) CORS(next http.Handler) http.Handler {
	if !a.config.App.CORS.Enable {
		return next
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   a.config.App.CORS.AllowedOrigins,
		AllowedMethods:   a.config.App.CORS.AllowedMethods,
		AllowedHeaders:   a.config.App.CORS.AllowedHeaders,
		AllowCredentials: a.config.App.CORS.AllowCredentials,
		MaxAge:           a.config.App.CORS.MaxAgeSeconds,
	})(next)
}
