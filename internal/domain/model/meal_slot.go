package model

import (
	"fmt"
	"strings"
)

// MealSlot identifies one of the meals of a day.
type MealSlot string

const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Dinner    MealSlot = "dinner"
)

// slotCapacities is the maximum number of recipes each slot can hold.
var slotCapacities = map[MealSlot]int{
	Breakfast: 2,
	Lunch:     3,
	Dinner:    3,
}

// slotAliases maps accepted spellings to slots, Italian ones included.
var slotAliases = map[string]MealSlot{
	"breakfast": Breakfast,
	"colazione": Breakfast,
	"lunch":     Lunch,
	"pranzo":    Lunch,
	"dinner":    Dinner,
	"cena":      Dinner,
}

// MealSlots returns every slot in display order.
func MealSlots() []MealSlot {
	return []MealSlot{Breakfast, Lunch, Dinner}
}

// MaxRecipes returns how many recipes the slot holds per day, or 0 for an unknown slot.
func (s MealSlot) MaxRecipes() int {
	return slotCapacities[s]
}

// Valid reports whether s is one of the known slots.
func (s MealSlot) Valid() bool {
	_, ok := slotCapacities[s]
	return ok
}

// Label returns the capitalized slot name.
func (s MealSlot) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// ParseMealSlot parses a slot name, ignoring case and surrounding spaces.
func ParseMealSlot(s string) (MealSlot, error) {
	if slot, ok := slotAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return slot, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMealSlot, s)
}
