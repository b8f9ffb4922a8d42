package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/metrics"
	"github.com/guttosm/meal-planner/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var errRouteNotFound = errors.New("route not found")

// RouterConfig holds router configuration options. A zero RateLimit or
// MutationRateLimit disables that limiter.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	MutationRateLimit int
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		MutationRateLimit: 30,
	}
}

// NewRouter builds the gin engine. The returned function stops the rate
// limiters' sweepers and must be called on shutdown.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) (*gin.Engine, func()) {
	router := gin.New()

	router.Use(
		cors.New(corsConfig(cfg.CORSOrigins)),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	var limiters []*middleware.RateLimiter
	if cfg.RateLimit > 0 {
		global := middleware.NewRateLimiter("global", cfg.RateLimit, cfg.RateWindow)
		limiters = append(limiters, global)
		router.Use(global.Middleware())
	}

	if healthHandler == nil {
		healthHandler = NewHealthHandler()
	}
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	registerSwagger(router, cfg.SwaggerUser, cfg.SwaggerPass)

	api := router.Group("/api")
	if cfg.MutationRateLimit > 0 {
		writes := middleware.NewRateLimiter("write", cfg.MutationRateLimit, cfg.RateWindow)
		limiters = append(limiters, writes)
		api.Use(writes.WritesOnly())
	}
	if handler != nil {
		NewPlanRoutes(handler).RegisterRoutes(api)
	}

	router.NoRoute(func(c *gin.Context) {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyRouteNotFound, errRouteNotFound)
	})

	return router, func() {
		for _, l := range limiters {
			l.Stop()
		}
	}
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Accept-Encoding", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// registerSwagger serves the API docs, behind basic auth when both
// credentials are set.
func registerSwagger(router *gin.Engine, user, pass string) {
	docs := ginSwagger.WrapHandler(swaggerFiles.Handler)
	if user == "" || pass == "" {
		router.GET("/swagger/*any", docs)
		return
	}
	router.Group("/swagger", gin.BasicAuth(gin.Accounts{user: pass})).GET("/*any", docs)
}
