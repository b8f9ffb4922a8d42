package dto

import (
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

// Money renders an amount with two decimal places.
func Money(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(moneyPlaces)
}

// Quantity renders a quantity without trailing zeros.
func Quantity(q float64) string {
	return decimal.NewFromFloat(q).String()
}

// IngredientResponse is one ingredient line.
//
// @Description Ingredient with quantity and cost
type IngredientResponse struct {
	Name      string  `json:"name" example:"pomodoro"`
	Quantity  float64 `json:"quantity" example:"400"`
	Unit      string  `json:"unit" example:"g"`
	UnitPrice string  `json:"unit_price" example:"0.30"`
	Cost      string  `json:"cost" example:"120.00"`
} // @name IngredientResponse

// RecipeResponse is a catalog recipe with its ingredients and cost.
//
// @Description Recipe with ingredients and total cost
type RecipeResponse struct {
	Name        string               `json:"name" example:"Pasta al Pomodoro"`
	Ingredients []IngredientResponse `json:"ingredients"`
	TotalCost   string               `json:"total_cost" example:"168.00"`
} // @name RecipeResponse

// CategoryResponse is one category of the shopping list.
//
// @Description Shopping list items of one category
type CategoryResponse struct {
	Category string               `json:"category" example:"Vegetables"`
	Items    []IngredientResponse `json:"items"`
	Subtotal string               `json:"subtotal" example:"120.00"`
} // @name CategoryResponse

// ShoppingListResponse is the categorized shopping list with its grand total.
//
// @Description Categorized shopping list with grand total
type ShoppingListResponse struct {
	Categories  []CategoryResponse `json:"categories"`
	ItemCount   int                `json:"item_count" example:"2"`
	Total       string             `json:"total" example:"168.00"`
	PlanVersion uint64             `json:"plan_version" example:"3"`
} // @name ShoppingListResponse

// PriceReloadResponse reports how many ingredients were re-priced.
//
// @Description Result of a price list reload
type PriceReloadResponse struct {
	Repriced int `json:"repriced" example:"12"`
} // @name PriceReloadResponse

// NewIngredientResponse converts a domain ingredient.
func NewIngredientResponse(i model.Ingredient) IngredientResponse {
	return IngredientResponse{
		Name:      i.Name,
		Quantity:  i.Quantity,
		Unit:      i.Unit,
		UnitPrice: Money(i.UnitPrice),
		Cost:      Money(i.TotalCost()),
	}
}

// NewRecipeResponse converts a domain recipe.
func NewRecipeResponse(r *model.Recipe) RecipeResponse {
	ings := r.Ingredients()
	out := RecipeResponse{
		Name:        r.Name(),
		Ingredients: make([]IngredientResponse, 0, len(ings)),
		TotalCost:   Money(r.TotalCost()),
	}
	for _, i := range ings {
		out.Ingredients = append(out.Ingredients, NewIngredientResponse(i))
	}
	return out
}

// NewRecipeListResponse converts a slice of recipes, keeping their order.
func NewRecipeListResponse(recipes []*model.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, NewRecipeResponse(r))
	}
	return out
}

// NewShoppingListResponse converts a shopping report.
func NewShoppingListResponse(report model.ShoppingReport) ShoppingListResponse {
	out := ShoppingListResponse{
		Categories:  make([]CategoryResponse, 0, len(report.Groups)),
		ItemCount:   report.ItemCount,
		Total:       Money(report.Total),
		PlanVersion: report.PlanVersion,
	}
	for _, g := range report.Groups {
		cat := CategoryResponse{
			Category: g.Category,
			Items:    make([]IngredientResponse, 0, len(g.Items)),
			Subtotal: Money(g.Subtotal),
		}
		for _, i := range g.Items {
			cat.Items = append(cat.Items, NewIngredientResponse(i))
		}
		out.Categories = append(out.Categories, cat)
	}
	return out
}
