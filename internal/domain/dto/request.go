// Package dto holds the request and response bodies of the HTTP API and the
// conversions from domain values, including money formatting.
package dto

import "strings"

// AssignRecipeRequest represents the JSON request body for adding a recipe to a meal.
//
// The Recipe field is the catalog name of the recipe, matched ignoring case.
//
// @Description Request to add a recipe to a day and meal slot
// @Example {"recipe": "Pasta al Pomodoro"}
type AssignRecipeRequest struct {
	// Recipe is the name of a recipe in the catalog.
	Recipe string `json:"recipe" example:"Pasta al Pomodoro"`
} // @name AssignRecipeRequest

// ValidationError reports a request field with an unacceptable value.
type ValidationError struct {
	Field   string
	Message string
}

// ErrInvalidRecipe is returned when the recipe name is blank.
var ErrInvalidRecipe = &ValidationError{Field: "recipe", Message: "is required"}

// Validate trims the recipe name and rejects a blank one.
func (r *AssignRecipeRequest) Validate() error {
	r.Recipe = strings.TrimSpace(r.Recipe)
	if r.Recipe == "" {
		return ErrInvalidRecipe
	}
	return nil
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Details returns the error as a field → message map for ErrorResponse.Details.
func (e *ValidationError) Details() map[string]string {
	return map[string]string{e.Field: e.Message}
}
