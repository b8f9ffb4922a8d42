package app

import (
	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, cfg config.Config) *RouterComponents {
	handler := http.NewHandler(services.Planner, http.WithPricesFile(cfg.Catalog.PricesFile))

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("catalog", services.Planner)
	if services.ReloadBreaker != nil {
		healthHandler.RegisterOptional(services.ReloadBreaker.Name(), services.ReloadBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		MutationRateLimit: cfg.Server.MutationRateLimit,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
