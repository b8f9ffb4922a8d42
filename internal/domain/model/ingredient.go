// Package model defines the core domain entities for the meal planner.
package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidQuantity is returned when an ingredient quantity is not a positive finite number.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrInvalidPrice is returned when a unit price is negative.
	ErrInvalidPrice = errors.New("unit price must not be negative")
)

// Ingredient is an immutable line of a recipe: how much of what, and what one unit costs.
//
// @Description Ingredient with quantity, unit and unit price
// @Example {"name": "pomodoro", "quantity": 400, "unit": "g", "unit_price": 0.3}
type Ingredient struct {
	// Name is the ingredient name as written in the recipe catalog
	Name string `json:"name" example:"pomodoro"`
	// Quantity is the amount required, always positive
	Quantity float64 `json:"quantity" example:"400"`
	// Unit is the unit of measure of Quantity
	Unit string `json:"unit" example:"g"`
	// UnitPrice is the price of one unit; zero means unpriced
	UnitPrice float64 `json:"unit_price" example:"0.3"`
}

// NewIngredient creates an unpriced ingredient after validating the quantity.
func NewIngredient(name string, quantity float64, unit string) (Ingredient, error) {
	if !(quantity > 0) || math.IsInf(quantity, 1) {
		return Ingredient{}, fmt.Errorf("ingredient %q: %w", name, ErrInvalidQuantity)
	}
	return Ingredient{Name: name, Quantity: quantity, Unit: unit}, nil
}

// Key returns the aggregation key. Same name with a different unit is a different line.
func (i Ingredient) Key() string {
	return i.Name + "_" + i.Unit
}

// TotalCost returns quantity * unit price.
func (i Ingredient) TotalCost() float64 {
	return i.Quantity * i.UnitPrice
}

// WithQuantity returns a copy of the ingredient with a different quantity.
func (i Ingredient) WithQuantity(quantity float64) Ingredient {
	i.Quantity = quantity
	return i
}

// WithUnitPrice returns a copy of the ingredient with a different unit price.
func (i Ingredient) WithUnitPrice(price float64) Ingredient {
	i.UnitPrice = price
	return i
}

// String renders the ingredient the way it appears on a shopping list.
func (i Ingredient) String() string {
	return fmt.Sprintf("%s: %.2f %s", i.Name, i.Quantity, i.Unit)
}
