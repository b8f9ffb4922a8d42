// Package cli implements planctl, a command-line front end for the meal
// planner that loads the catalog files, builds a plan from flags and prints
// recipes or the shopping list.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guttosm/meal-planner/internal/logger"
	"github.com/guttosm/meal-planner/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "PLANCTL"

// Execute runs the root command with os.Args and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand builds the planctl command tree. Every flag can also be set
// in the config file or through a PLANCTL_ environment variable, e.g.
// PLANCTL_RECIPES for --recipes.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "planctl",
		Short:         "Inspect the recipe catalog and build shopping lists",
		Long:          `planctl loads a recipe catalog and a price list, assigns recipes to the meals of the week and prints the aggregated, categorized shopping list with its total cost.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			logger.InitWithWriter(cmd.ErrOrStderr(), v.GetString("log-level"), true)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.planctl.yaml)")
	root.PersistentFlags().String("recipes", "data/recipes.txt", "Recipe catalog file")
	root.PersistentFlags().String("prices", "data/prices.txt", "Price list file (empty to skip prices)")
	root.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error, disabled)")
	root.PersistentFlags().Bool("json", false, "Print JSON instead of text")
	_ = v.BindPFlags(root.PersistentFlags())

	root.AddCommand(newRecipesCommand(v), newShoppingListCommand(v))
	return root
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".planctl")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// loadPlanner builds a planner from the configured catalog files.
func loadPlanner(v *viper.Viper) (*service.MealPlannerService, error) {
	planner := service.NewMealPlannerService()
	if _, err := planner.LoadCatalog(v.GetString("recipes"), v.GetString("prices")); err != nil {
		return nil, err
	}
	return planner, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := newJSONEncoder(w)
	return enc.Encode(v)
}
