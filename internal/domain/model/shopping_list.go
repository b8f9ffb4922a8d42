package model

import "sort"

// ShoppingList holds merged ingredients keyed by Ingredient.Key.
type ShoppingList struct {
	Items map[string]Ingredient
}

// NewShoppingList creates an empty shopping list.
func NewShoppingList() ShoppingList {
	return ShoppingList{Items: make(map[string]Ingredient)}
}

// Len returns the number of distinct lines.
func (l ShoppingList) Len() int {
	return len(l.Items)
}

// Get returns the merged ingredient stored under key.
func (l ShoppingList) Get(key string) (Ingredient, bool) {
	i, ok := l.Items[key]
	return i, ok
}

// Entries returns the merged ingredients sorted by name, then unit.
func (l ShoppingList) Entries() []Ingredient {
	out := make([]Ingredient, 0, len(l.Items))
	for _, i := range l.Items {
		out = append(out, i)
	}
	sortIngredients(out)
	return out
}

func sortIngredients(items []Ingredient) {
	sort.Slice(items, func(a, b int) bool {
		if items[a].Name != items[b].Name {
			return items[a].Name < items[b].Name
		}
		return items[a].Unit < items[b].Unit
	})
}

// CategoryGroup is one category section of a shopping report.
//
// @Description Shopping list items of one category
type CategoryGroup struct {
	Category string       `json:"category" example:"Vegetables"`
	Items    []Ingredient `json:"items"`
	Subtotal float64      `json:"subtotal" example:"120"`
}

// ShoppingReport is the categorized, costed view of a shopping list.
//
// @Description Categorized shopping list with grand total
type ShoppingReport struct {
	Groups      []CategoryGroup `json:"groups"`
	Total       float64         `json:"total" example:"168"`
	ItemCount   int             `json:"item_count" example:"2"`
	PlanVersion uint64          `json:"plan_version" example:"4"`
}

// EmptyReport returns a report with no groups.
func EmptyReport(version uint64) ShoppingReport {
	return ShoppingReport{Groups: []CategoryGroup{}, PlanVersion: version}
}

// Clone returns a copy of the report that shares no slices with r.
func (r ShoppingReport) Clone() ShoppingReport {
	if r.Groups == nil {
		return r
	}
	groups := make([]CategoryGroup, len(r.Groups))
	for idx, g := range r.Groups {
		if g.Items != nil {
			g.Items = append([]Ingredient(nil), g.Items...)
		}
		groups[idx] = g
	}
	r.Groups = groups
	return r
}
