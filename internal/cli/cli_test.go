package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cliRecipes = `Pasta al Pomodoro
- pomodoro, 400, g
- pasta, 320, g

Insalata
- insalata, 1, pz
- pomodoro, 100, g
- sale, notanumber, g
`
	cliPrices = `pomodoro, 0.30
pasta, 0.15
insalata, 1.20
`
)

func writeCatalog(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	rp := filepath.Join(dir, "recipes.txt")
	pp := filepath.Join(dir, "prices.txt")
	require.NoError(t, os.WriteFile(rp, []byte(cliRecipes), 0o600))
	require.NoError(t, os.WriteFile(pp, []byte(cliPrices), 0o600))
	return rp, pp
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Assignment
		wantErr bool
	}{
		{
			name:  "valid assignment",
			input: "monday:lunch:Pasta al Pomodoro",
			want:  Assignment{Day: model.Monday, Slot: model.Lunch, Recipe: "Pasta al Pomodoro"},
		},
		{
			name:  "recipe name with colon",
			input: "friday:dinner:Pizza: Margherita",
			want:  Assignment{Day: model.Friday, Slot: model.Dinner, Recipe: "Pizza: Margherita"},
		},
		{name: "missing recipe", input: "monday:lunch", wantErr: true},
		{name: "blank recipe", input: "monday:lunch:  ", wantErr: true},
		{name: "unknown day", input: "someday:lunch:Toast", wantErr: true},
		{name: "unknown slot", input: "monday:brunch:Toast", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAssignment(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecipesCommand(t *testing.T) {
	rp, pp := writeCatalog(t)

	t.Run("prints a table", func(t *testing.T) {
		out, stderr, err := run(t, "recipes", "--recipes", rp, "--prices", pp)
		require.NoError(t, err)

		assert.Contains(t, out, "RECIPE")
		assert.Contains(t, out, "Pasta al Pomodoro")
		assert.Contains(t, out, "168.00")
		assert.Contains(t, out, "Insalata")
		assert.Contains(t, stderr, "Skipping malformed catalog line")
	})

	t.Run("prints json", func(t *testing.T) {
		out, _, err := run(t, "recipes", "--recipes", rp, "--prices", pp, "--json", "--log-level", "disabled")
		require.NoError(t, err)

		var recipes []dto.RecipeResponse
		require.NoError(t, json.Unmarshal([]byte(out), &recipes))
		assert.Len(t, recipes, 2)
	})

	t.Run("missing catalog", func(t *testing.T) {
		_, _, err := run(t, "recipes", "--recipes", filepath.Join(t.TempDir(), "none.txt"), "--prices", "")
		assert.Error(t, err)
	})
}

func TestShoppingListCommand(t *testing.T) {
	rp, pp := writeCatalog(t)
	base := []string{"shopping-list", "--recipes", rp, "--prices", pp, "--log-level", "disabled"}

	t.Run("groups and totals", func(t *testing.T) {
		args := append(append([]string{}, base...),
			"--assign", "monday:lunch:Pasta al Pomodoro",
			"-a", "tuesday:dinner:insalata")
		out, _, err := run(t, args...)
		require.NoError(t, err)

		assert.Contains(t, out, "Bakery")
		assert.Contains(t, out, "Vegetables")
		assert.Contains(t, out, "500 g")
		assert.Contains(t, out, "199.20")
		assert.Less(t, bytes.Index([]byte(out), []byte("Bakery")), bytes.Index([]byte(out), []byte("Vegetables")))
	})

	t.Run("json output", func(t *testing.T) {
		args := append(append([]string{}, base...), "--json", "--assign", "monday:lunch:Pasta al Pomodoro")
		out, _, err := run(t, args...)
		require.NoError(t, err)

		var list dto.ShoppingListResponse
		require.NoError(t, json.Unmarshal([]byte(out), &list))
		assert.Equal(t, "168.00", list.Total)
	})

	t.Run("empty plan", func(t *testing.T) {
		out, _, err := run(t, base...)
		require.NoError(t, err)
		assert.Contains(t, out, "Nothing planned.")
	})

	t.Run("unknown recipe", func(t *testing.T) {
		args := append(append([]string{}, base...), "--assign", "monday:lunch:Risotto")
		_, _, err := run(t, args...)
		assert.Error(t, err)
	})

	t.Run("full slot", func(t *testing.T) {
		args := append(append([]string{}, base...),
			"-a", "monday:breakfast:Insalata",
			"-a", "monday:breakfast:Insalata",
			"-a", "monday:breakfast:Pasta al Pomodoro")
		_, _, err := run(t, args...)
		assert.Error(t, err)
	})

	t.Run("invalid assignment", func(t *testing.T) {
		args := append(append([]string{}, base...), "--assign", "monday")
		_, _, err := run(t, args...)
		assert.ErrorContains(t, err, "day:slot:recipe")
	})
}

func TestRootCommand_ConfigFile(t *testing.T) {
	rp, pp := writeCatalog(t)
	cfg := filepath.Join(t.TempDir(), "planctl.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("recipes: "+rp+"\nprices: "+pp+"\nlog-level: disabled\n"), 0o600))

	out, _, err := run(t, "recipes", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Pasta al Pomodoro")

	_, _, err = run(t, "recipes", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRootCommand_Environment(t *testing.T) {
	rp, pp := writeCatalog(t)
	t.Setenv("PLANCTL_RECIPES", rp)
	t.Setenv("PLANCTL_PRICES", pp)
	t.Setenv("PLANCTL_LOG_LEVEL", "disabled")

	out, _, err := run(t, "recipes")
	require.NoError(t, err)
	assert.Contains(t, out, "Insalata")
}
