package model

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotFull is returned when a slot already holds its maximum number of recipes.
	ErrSlotFull = errors.New("meal slot is full")
	// ErrRecipeNotInSlot is returned when removing a recipe the slot does not hold.
	ErrRecipeNotInSlot = errors.New("recipe not assigned to meal slot")
	// ErrUnknownDay is returned for a day outside the planning week.
	ErrUnknownDay = errors.New("unknown day")
	// ErrUnknownMealSlot is returned for a slot other than breakfast, lunch or dinner.
	ErrUnknownMealSlot = errors.New("unknown meal slot")
)

// WeeklyPlan maps each day and meal slot to the recipes assigned to it.
// Recipes are held by reference. WeeklyPlan is not safe for concurrent use;
// the planner service serializes access to it.
type WeeklyPlan struct {
	slots map[Day]map[MealSlot][]*Recipe
}

// NewWeeklyPlan creates an empty plan for the seven days of the week.
func NewWeeklyPlan() *WeeklyPlan {
	p := &WeeklyPlan{slots: make(map[Day]map[MealSlot][]*Recipe, len(week))}
	for _, d := range week {
		p.slots[d] = make(map[MealSlot][]*Recipe, len(slotCapacities))
	}
	return p
}

func validate(day Day, slot MealSlot) error {
	if !day.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}
	if !slot.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMealSlot, slot)
	}
	return nil
}

// Assign appends recipe to the slot. It returns ErrSlotFull without changing
// the plan when the slot is already at capacity.
func (p *WeeklyPlan) Assign(day Day, slot MealSlot, recipe *Recipe) error {
	if err := validate(day, slot); err != nil {
		return err
	}
	current := p.slots[day][slot]
	if len(current) >= slot.MaxRecipes() {
		return fmt.Errorf("%s %s holds %d recipes: %w", day, slot, len(current), ErrSlotFull)
	}
	p.slots[day][slot] = append(current, recipe)
	return nil
}

// Unassign removes the first occurrence of recipe from the slot.
// It returns ErrRecipeNotInSlot and leaves the slot unchanged when absent.
func (p *WeeklyPlan) Unassign(day Day, slot MealSlot, recipe *Recipe) error {
	if err := validate(day, slot); err != nil {
		return err
	}
	current := p.slots[day][slot]
	for idx, r := range current {
		if r == recipe {
			updated := make([]*Recipe, 0, len(current)-1)
			updated = append(updated, current[:idx]...)
			updated = append(updated, current[idx+1:]...)
			p.slots[day][slot] = updated
			return nil
		}
	}
	return fmt.Errorf("%s %s: %w", day, slot, ErrRecipeNotInSlot)
}

// Recipes returns a copy of the recipes assigned to the slot.
func (p *WeeklyPlan) Recipes(day Day, slot MealSlot) []*Recipe {
	current := p.slots[day][slot]
	out := make([]*Recipe, len(current))
	copy(out, current)
	return out
}

// Each calls fn for every assigned recipe, walking days Monday to Sunday,
// slots breakfast to dinner, and recipes in assignment order.
func (p *WeeklyPlan) Each(fn func(day Day, slot MealSlot, recipe *Recipe)) {
	for _, d := range week {
		for _, s := range MealSlots() {
			for _, r := range p.slots[d][s] {
				fn(d, s, r)
			}
		}
	}
}

// Count returns the total number of assignments in the plan.
func (p *WeeklyPlan) Count() int {
	n := 0
	p.Each(func(Day, MealSlot, *Recipe) { n++ })
	return n
}

// Clear removes every assignment.
func (p *WeeklyPlan) Clear() {
	for _, d := range week {
		p.slots[d] = make(map[MealSlot][]*Recipe, len(slotCapacities))
	}
}

// Remap points every assignment of a recipe in replaced at its replacement,
// keeping slot order. Slots without a replaced recipe are left as they are.
func (p *WeeklyPlan) Remap(replaced map[*Recipe]*Recipe) {
	if len(replaced) == 0 {
		return
	}
	for _, d := range week {
		for s, current := range p.slots[d] {
			var updated []*Recipe
			for idx, r := range current {
				next, ok := replaced[r]
				if !ok {
					continue
				}
				if updated == nil {
					updated = make([]*Recipe, len(current))
					copy(updated, current)
				}
				updated[idx] = next
			}
			if updated != nil {
				p.slots[d][s] = updated
			}
		}
	}
}

// MealPlanEntry is the display form of one slot of one day.
type MealPlanEntry struct {
	Slot     MealSlot `json:"slot" example:"lunch"`
	Capacity int      `json:"capacity" example:"3"`
	Recipes  []string `json:"recipes"`
}

// DayPlan is the display form of one day of the plan.
type DayPlan struct {
	Day   Day             `json:"day" example:"Monday"`
	Meals []MealPlanEntry `json:"meals"`
}

// Snapshot returns the plan as day/slot/recipe-name rows in week order.
func (p *WeeklyPlan) Snapshot() []DayPlan {
	days := make([]DayPlan, 0, len(week))
	for _, d := range week {
		dp := DayPlan{Day: d, Meals: make([]MealPlanEntry, 0, len(slotCapacities))}
		for _, s := range MealSlots() {
			names := make([]string, 0, len(p.slots[d][s]))
			for _, r := range p.slots[d][s] {
				names = append(names, r.Name())
			}
			dp.Meals = append(dp.Meals, MealPlanEntry{Slot: s, Capacity: s.MaxRecipes(), Recipes: names})
		}
		days = append(days, dp)
	}
	return days
}
