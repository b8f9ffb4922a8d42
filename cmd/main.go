// Package main is the entry point for the meal-planner API server.
//
// @title           Meal Planner API
// @version         1.0.0
// @description     Weekly meal planning and shopping list aggregation.
//
//	Recipes come from a text catalog, are assigned to breakfast, lunch and dinner across the week,
//	and the planned ingredients are merged into a categorized, priced shopping list.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/meal-planner
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Recipes
// @tag.description Recipe catalog
//
// @tag.name        Plan
// @tag.description Weekly plan editing
//
// @tag.name        Shopping list
// @tag.description Aggregated, categorized shopping list
//
// @tag.name        Catalog
// @tag.description Catalog maintenance
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"os"

	_ "github.com/guttosm/meal-planner/docs" // swagger docs

	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		if err := config.LoadDotEnv(); err != nil {
			log.Fatal().Err(err).Msg("Invalid .env file")
		}
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).
			Str("recipes_file", cfg.Catalog.RecipesFile).
			Str("prices_file", cfg.Catalog.PricesFile).
			Msg("Cannot start without a recipe catalog")
	}

	server := app.NewServer(application.Router, cfg.Server.Port, app.WithShutdownTimeout(cfg.Server.ShutdownTimeout))
	server.OnShutdown(application.Close)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
