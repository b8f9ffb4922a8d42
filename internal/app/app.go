// Package app provides application initialization and dependency injection.
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/http"
	"github.com/guttosm/meal-planner/internal/service"
)

// Application is the wired HTTP router together with the components that
// need releasing on shutdown.
type Application struct {
	Router  *gin.Engine
	Planner *service.MealPlannerService
	closers []func()
}

// Close stops background goroutines owned by the application.
func (a *Application) Close() {
	for _, c := range a.closers {
		c()
	}
}

// InitializeApp creates and wires all application dependencies.
// It fails when the recipe catalog cannot be loaded.
func InitializeApp(cfg config.Config) (*Application, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	serviceComponents, err := InitializeServices(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize services: %w", err)
	}

	routerComponents := InitializeRouter(serviceComponents, cfg)
	router, stopRouter := http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)

	return &Application{
		Router:  router,
		Planner: serviceComponents.Planner,
		closers: []func(){stopRouter, serviceComponents.Planner.Stop},
	}, nil
}
