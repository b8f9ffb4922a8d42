// Command planctl prints the recipe catalog and shopping lists from the
// command line.
package main

import "github.com/guttosm/meal-planner/internal/cli"

func main() {
	cli.Execute()
}
