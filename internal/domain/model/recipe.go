package model

import "strings"

// PriceLookup resolves the unit price of an ingredient by name.
// The boolean is false when the name has no registered price.
type PriceLookup interface {
	Lookup(name string) (float64, bool)
}

// Recipe is a named, ordered collection of ingredients.
// Recipes are shared by pointer between every plan slot that selects them and
// are never modified once published; re-pricing produces a new Recipe.
type Recipe struct {
	name        string
	ingredients []Ingredient
}

// NewRecipe creates a recipe with the given ingredients in order.
func NewRecipe(name string, ingredients ...Ingredient) *Recipe {
	r := &Recipe{name: name}
	if len(ingredients) > 0 {
		r.ingredients = make([]Ingredient, len(ingredients))
		copy(r.ingredients, ingredients)
	}
	return r
}

// Name returns the recipe name.
func (r *Recipe) Name() string {
	return r.name
}

// Ingredients returns a copy of the ingredient list in catalog order.
func (r *Recipe) Ingredients() []Ingredient {
	out := make([]Ingredient, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}

// Len returns the number of ingredients.
func (r *Recipe) Len() int {
	return len(r.ingredients)
}

// AddIngredient appends an ingredient. Only the catalog loader calls this.
func (r *Recipe) AddIngredient(i Ingredient) {
	r.ingredients = append(r.ingredients, i)
}

// TotalCost returns the sum of quantity * unit price over all ingredients.
func (r *Recipe) TotalCost() float64 {
	var total float64
	for _, i := range r.ingredients {
		total += i.TotalCost()
	}
	return total
}

// WithPrices returns a copy of the recipe in which every ingredient whose
// name has a price in the lookup is re-priced, along with the number of
// re-priced ingredients. When nothing changes the receiver itself is returned.
// The receiver is never modified.
func (r *Recipe) WithPrices(prices PriceLookup) (*Recipe, int) {
	if prices == nil || len(r.ingredients) == 0 {
		return r, 0
	}

	updated := make([]Ingredient, len(r.ingredients))
	count := 0
	for idx, i := range r.ingredients {
		if price, ok := prices.Lookup(i.Name); ok {
			i = i.WithUnitPrice(price)
			count++
		}
		updated[idx] = i
	}
	if count == 0 {
		return r, 0
	}
	return &Recipe{name: r.name, ingredients: updated}, count
}

// MatchesName reports whether name equals the recipe name ignoring case.
func (r *Recipe) MatchesName(name string) bool {
	return strings.EqualFold(r.name, name)
}

// String returns the recipe name.
func (r *Recipe) String() string {
	return r.name
}
