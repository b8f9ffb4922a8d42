// Package repository provides the recipe catalog, the price registry and the
// text loaders that fill them.
package repository

import "github.com/guttosm/meal-planner/internal/domain/model"

// RecipeRepositoryInterface defines the operations on the recipe catalog.
type RecipeRepositoryInterface interface {
	List() []*model.Recipe
	FindByName(name string) (*model.Recipe, bool)
	Replace(recipes []*model.Recipe)
	Reprice(prices model.PriceLookup) (map[*model.Recipe]*model.Recipe, int)
	Len() int
}

var (
	_ RecipeRepositoryInterface = (*InMemoryRecipeRepository)(nil)
	_ model.PriceLookup         = (*PriceRegistry)(nil)
)
