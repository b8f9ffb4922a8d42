package repository

import (
	"sync"

	"github.com/guttosm/meal-planner/internal/domain/model"
)

// InMemoryRecipeRepository holds the recipe catalog in load order.
type InMemoryRecipeRepository struct {
	mu      sync.RWMutex
	recipes []*model.Recipe
}

// NewInMemoryRecipeRepository creates a repository holding recipes.
func NewInMemoryRecipeRepository(recipes ...*model.Recipe) *InMemoryRecipeRepository {
	repo := &InMemoryRecipeRepository{}
	repo.Replace(recipes)
	return repo
}

// List returns the recipes in load order. The slice is a copy; the recipes are shared.
func (r *InMemoryRecipeRepository) List() []*model.Recipe {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Recipe, len(r.recipes))
	copy(out, r.recipes)
	return out
}

// FindByName returns the first recipe whose name matches ignoring case.
func (r *InMemoryRecipeRepository) FindByName(name string) (*model.Recipe, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.recipes {
		if rec.MatchesName(name) {
			return rec, true
		}
	}
	return nil, false
}

// Replace swaps the whole catalog.
func (r *InMemoryRecipeRepository) Replace(recipes []*model.Recipe) {
	next := make([]*model.Recipe, len(recipes))
	copy(next, recipes)

	r.mu.Lock()
	r.recipes = next
	r.mu.Unlock()
}

// Reprice swaps every recipe that has a price in prices for a re-priced copy.
// It returns the replacements keyed by the recipe they supersede and the
// number of ingredients changed. Published recipes are left untouched.
func (r *InMemoryRecipeRepository) Reprice(prices model.PriceLookup) (map[*model.Recipe]*model.Recipe, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := make(map[*model.Recipe]*model.Recipe)
	next := make([]*model.Recipe, len(r.recipes))
	n := 0
	for idx, rec := range r.recipes {
		priced, changed := rec.WithPrices(prices)
		if changed > 0 {
			replaced[rec] = priced
			n += changed
		}
		next[idx] = priced
	}
	r.recipes = next
	return replaced, n
}

// Len returns the number of recipes.
func (r *InMemoryRecipeRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.recipes)
}
