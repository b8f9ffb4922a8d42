package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// PlanRoutes registers the catalog, plan and shopping list endpoints.
type PlanRoutes struct {
	handler *Handler
}

// NewPlanRoutes creates a new PlanRoutes instance.
func NewPlanRoutes(handler *Handler) *PlanRoutes {
	return &PlanRoutes{handler: handler}
}

// RegisterRoutes registers the meal planner routes under rg.
func (r *PlanRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recipes", r.handler.ListRecipes)
	rg.GET("/recipes/:name", r.handler.GetRecipe)

	plan := rg.Group("/plan")
	plan.GET("", r.handler.GetPlan)
	plan.DELETE("", r.handler.ClearPlan)
	plan.POST("/:day/:slot", r.handler.AssignRecipe)
	plan.DELETE("/:day/:slot/:recipe", r.handler.UnassignRecipe)

	rg.GET("/shopping-list", r.handler.GetShoppingList)
	rg.POST("/catalog/prices/reload", r.handler.ReloadPrices)
}

var _ RouteGroup = (*PlanRoutes)(nil)
