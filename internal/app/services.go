package app

import (
	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/circuitbreaker"
	"github.com/guttosm/meal-planner/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Planner       *service.MealPlannerService
	ReloadBreaker *circuitbreaker.CircuitBreaker
}

// InitializeServices builds the meal planner and loads the catalog files.
func InitializeServices(cfg config.Config) (*ServiceComponents, error) {
	breakerCfg := circuitbreaker.DefaultConfig()
	if cfg.Catalog.ReloadFailureThreshold > 0 {
		breakerCfg.FailureThreshold = cfg.Catalog.ReloadFailureThreshold
	}
	if cfg.Catalog.ReloadCooldown > 0 {
		breakerCfg.Timeout = cfg.Catalog.ReloadCooldown
	}
	breaker := circuitbreaker.New(breakerCfg)

	opts := []service.Option{service.WithReloadBreaker(breaker)}
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithReportCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	planner := service.NewMealPlannerService(opts...)

	if _, err := planner.LoadCatalog(cfg.Catalog.RecipesFile, cfg.Catalog.PricesFile); err != nil {
		planner.Stop()
		return nil, err
	}

	return &ServiceComponents{
		Planner:       planner,
		ReloadBreaker: breaker,
	}, nil
}
