package service

import "github.com/guttosm/meal-planner/internal/domain/model"

// Aggregator flattens a weekly plan into a shopping list.
type Aggregator struct{}

// NewAggregator creates an Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Generate walks the plan Monday to Sunday, breakfast to dinner, and merges
// every ingredient by name and unit. Quantities are summed; when two entries
// carry different unit prices the one merged last wins.
func (a *Aggregator) Generate(plan *model.WeeklyPlan) model.ShoppingList {
	list := model.NewShoppingList()
	if plan == nil {
		return list
	}

	plan.Each(func(_ model.Day, _ model.MealSlot, recipe *model.Recipe) {
		for _, ing := range recipe.Ingredients() {
			a.merge(list, ing)
		}
	})
	return list
}

func (a *Aggregator) merge(list model.ShoppingList, ing model.Ingredient) {
	key := ing.Key()
	existing, ok := list.Items[key]
	if !ok {
		list.Items[key] = ing
		return
	}
	list.Items[key] = ing.WithQuantity(existing.Quantity + ing.Quantity)
}

// CalculateTotal returns the sum of quantity * unit price over the list.
func (a *Aggregator) CalculateTotal(list model.ShoppingList) float64 {
	var total float64
	for _, ing := range list.Items {
		total += ing.TotalCost()
	}
	return total
}
