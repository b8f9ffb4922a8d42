package cli

import (
	"fmt"
	"strings"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Assignment is one day:slot:recipe flag value.
type Assignment struct {
	Day    model.Day
	Slot   model.MealSlot
	Recipe string
}

// ParseAssignment parses "day:slot:recipe". The recipe name may itself
// contain colons.
func ParseAssignment(s string) (Assignment, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 || strings.TrimSpace(parts[2]) == "" {
		return Assignment{}, fmt.Errorf("invalid assignment %q, want day:slot:recipe", s)
	}
	day, err := model.ParseDay(parts[0])
	if err != nil {
		return Assignment{}, err
	}
	slot, err := model.ParseMealSlot(parts[1])
	if err != nil {
		return Assignment{}, err
	}
	return Assignment{Day: day, Slot: slot, Recipe: strings.TrimSpace(parts[2])}, nil
}

func newShoppingListCommand(v *viper.Viper) *cobra.Command {
	var assignments []string

	cmd := &cobra.Command{
		Use:     "shopping-list",
		Aliases: []string{"list"},
		Short:   "Plan recipes and print the categorized shopping list",
		Example: `  planctl shopping-list --assign monday:lunch:"Pasta al Pomodoro" --assign tuesday:dinner:Insalata`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(assignments) == 0 {
				assignments = v.GetStringSlice("assign")
			}

			planned := make([]Assignment, 0, len(assignments))
			for _, raw := range assignments {
				a, err := ParseAssignment(raw)
				if err != nil {
					return err
				}
				planned = append(planned, a)
			}

			planner, err := loadPlanner(v)
			if err != nil {
				return err
			}
			defer planner.Stop()

			for _, a := range planned {
				if err := planner.AssignRecipe(a.Day, a.Slot, a.Recipe); err != nil {
					return fmt.Errorf("%s %s: %w", a.Day, a.Slot, err)
				}
			}

			report := planner.GenerateShoppingList()
			if v.GetBool("json") {
				return writeJSON(cmd.OutOrStdout(), dto.NewShoppingListResponse(report))
			}
			return printShoppingList(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringArrayVarP(&assignments, "assign", "a", nil, "Assignment day:slot:recipe (repeatable)")
	return cmd
}
