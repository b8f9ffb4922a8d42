package cli

import (
	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRecipesCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "recipes",
		Short: "List the recipes of the catalog with their cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, err := loadPlanner(v)
			if err != nil {
				return err
			}
			defer planner.Stop()

			recipes := planner.ListAllRecipes()
			if v.GetBool("json") {
				return writeJSON(cmd.OutOrStdout(), dto.NewRecipeListResponse(recipes))
			}
			return printRecipes(cmd.OutOrStdout(), recipes)
		},
	}
}
