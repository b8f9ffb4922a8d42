package service

import (
	"sort"
	"strings"

	"github.com/guttosm/meal-planner/internal/domain/model"
)

// Category labels used on the shopping report.
const (
	CategoryVegetables = "Vegetables"
	CategoryBakery     = "Bakery"
	CategoryMeat       = "Meat"
	CategoryFish       = "Fish"
	CategoryDairy      = "Dairy"
	CategoryFruit      = "Fruit"
	CategoryCondiments = "Condiments"
	CategoryOther      = "Other"
)

type categoryRule struct {
	category string
	keywords []string
}

// defaultRules are checked in order; the first rule with a matching keyword wins.
var defaultRules = []categoryRule{
	{CategoryVegetables, []string{"pomodoro", "carota", "cipolla", "insalata", "zucchina", "patata"}},
	{CategoryBakery, []string{"pane", "pasta", "pizza"}},
	{CategoryMeat, []string{"carne", "pollo", "manzo", "maiale"}},
	{CategoryFish, []string{"pesce", "tonno", "salmone"}},
	{CategoryDairy, []string{"latte", "formaggio", "yogurt", "burro"}},
	{CategoryFruit, []string{"mela", "banana", "arancia", "pera"}},
	{CategoryCondiments, []string{"olio", "sale", "pepe", "zucchero"}},
}

// Classifier assigns shopping list items to display categories by keyword.
type Classifier struct {
	rules []categoryRule
}

// NewClassifier creates a Classifier with the default keyword table.
func NewClassifier() *Classifier {
	return &Classifier{rules: defaultRules}
}

// Classify returns the category of an ingredient name. Matching is a
// case-insensitive substring test, so "passata di pomodoro" is a vegetable.
func (c *Classifier) Classify(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range c.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

// Group buckets the list by category. Groups are sorted by label and items by
// name, then unit.
func (c *Classifier) Group(list model.ShoppingList) []model.CategoryGroup {
	byCategory := make(map[string]*model.CategoryGroup)
	for _, ing := range list.Entries() {
		cat := c.Classify(ing.Name)
		g, ok := byCategory[cat]
		if !ok {
			g = &model.CategoryGroup{Category: cat}
			byCategory[cat] = g
		}
		g.Items = append(g.Items, ing)
		g.Subtotal += ing.TotalCost()
	}

	groups := make([]model.CategoryGroup, 0, len(byCategory))
	for _, g := range byCategory {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Category < groups[j].Category
	})
	return groups
}
