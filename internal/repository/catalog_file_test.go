package repository

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pastaRecipes = "Pasta al Pomodoro\n- pomodoro, 400, g\n- pasta, 320, g\n"
const pastaPrices = "pomodoro, 0.30\npasta, 0.15\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRecipesAndPrices(t *testing.T) {
	reg := NewPriceRegistry()
	_, err := LoadPrices(writeFile(t, "prices.txt", pastaPrices), reg)
	require.NoError(t, err)

	recipes, report, err := LoadRecipes(writeFile(t, "recipes.txt", pastaRecipes), reg)
	require.NoError(t, err)

	require.Len(t, recipes, 1)
	r := recipes[0]
	assert.Equal(t, "Pasta al Pomodoro", r.Name())
	ings := r.Ingredients()
	require.Len(t, ings, 2)
	assert.Equal(t, 0.30, ings[0].UnitPrice)
	assert.Equal(t, 0.15, ings[1].UnitPrice)
	assert.InDelta(t, 168.0, r.TotalCost(), 1e-9)
	assert.Equal(t, 1, report.Recipes)
	assert.Equal(t, 2, report.Ingredients)
	assert.Empty(t, report.Warnings)
}

func TestParseRecipes(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantRecipes  []string
		wantCounts   []int
		wantWarnings int
	}{
		{
			name:        "single recipe",
			input:       pastaRecipes,
			wantRecipes: []string{"Pasta al Pomodoro"},
			wantCounts:  []int{2},
		},
		{
			name:         "non numeric quantity skipped",
			input:        "Pasta al Pomodoro\n- pomodoro, 400, g\n- sale, notanumber, g\n- pasta, 320, g\n",
			wantRecipes:  []string{"Pasta al Pomodoro"},
			wantCounts:   []int{2},
			wantWarnings: 1,
		},
		{
			name:         "non finite quantity skipped",
			input:        "Insalata\n- sale, NaN, g\n- olio, Inf, ml\n- aceto, -Inf, ml\n- insalata, 1, pz\n",
			wantRecipes:  []string{"Insalata"},
			wantCounts:   []int{1},
			wantWarnings: 3,
		},
		{
			name:         "too few fields skipped",
			input:        "Insalata\n- insalata, 1\n- olio, 10, ml\n",
			wantRecipes:  []string{"Insalata"},
			wantCounts:   []int{1},
			wantWarnings: 1,
		},
		{
			name:         "non positive quantity skipped",
			input:        "Insalata\n- insalata, 0, pz\n- olio, -1, ml\n- sale, 2, g\n",
			wantRecipes:  []string{"Insalata"},
			wantCounts:   []int{1},
			wantWarnings: 2,
		},
		{
			name:         "ingredient before header ignored",
			input:        "- pane, 2, fette\nToast\n- pane, 2, fette\n",
			wantRecipes:  []string{"Toast"},
			wantCounts:   []int{1},
			wantWarnings: 1,
		},
		{
			name:        "blank lines and surrounding spaces",
			input:       "\n  Toast  \n\n  -   pane ,  2 , fette  \n\n",
			wantRecipes: []string{"Toast"},
			wantCounts:  []int{1},
		},
		{
			name:        "duplicate names are both kept",
			input:       "Toast\n- pane, 2, fette\nToast\n- burro, 10, g\n- pane, 1, fette\n",
			wantRecipes: []string{"Toast", "Toast"},
			wantCounts:  []int{1, 2},
		},
		{
			name:        "recipe without ingredients",
			input:       "Acqua\nToast\n- pane, 2, fette\n",
			wantRecipes: []string{"Acqua", "Toast"},
			wantCounts:  []int{0, 1},
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes, report, err := ParseRecipes(strings.NewReader(tt.input), nil)
			require.NoError(t, err)

			require.Len(t, recipes, len(tt.wantRecipes))
			for i, r := range recipes {
				assert.Equal(t, tt.wantRecipes[i], r.Name())
				assert.Equal(t, tt.wantCounts[i], r.Len())
			}
			assert.Len(t, report.Warnings, tt.wantWarnings)
		})
	}
}

func TestParseRecipes_WarningDetails(t *testing.T) {
	_, report, err := ParseRecipes(strings.NewReader("Pasta\n- sale, notanumber, g\n"), nil)
	require.NoError(t, err)

	require.Len(t, report.Warnings, 1)
	w := report.Warnings[0]
	assert.Equal(t, 2, w.Line)
	assert.ErrorIs(t, w.Err, ErrInvalidNumber)
	assert.Contains(t, w.String(), "notanumber")
}

func TestParseRecipes_NonFiniteQuantityWarning(t *testing.T) {
	_, report, err := ParseRecipes(strings.NewReader("Pasta\n- sale, NaN, g\n"), nil)
	require.NoError(t, err)

	require.Len(t, report.Warnings, 1)
	assert.ErrorIs(t, report.Warnings[0].Err, ErrInvalidNumber)
}

func TestParseRecipes_OverlongLine(t *testing.T) {
	long := strings.Repeat("x", maxLineLength+6000)
	tests := []struct {
		name        string
		input       string
		wantRecipes []string
		wantCounts  []int
	}{
		{
			name:        "overlong header drops its ingredients",
			input:       "R\n- pane, 1, pz\n" + long + "\n- burro, 10, g\nS\n- olio, 1, ml\n",
			wantRecipes: []string{"R", "S"},
			wantCounts:  []int{1, 1},
		},
		{
			name:        "overlong ingredient skipped",
			input:       "R\n- " + long + ", 1, g\n- pane, 1, pz\n",
			wantRecipes: []string{"R"},
			wantCounts:  []int{1},
		},
		{
			name:        "overlong last line without newline",
			input:       "R\n- pane, 1, pz\n" + long,
			wantRecipes: []string{"R"},
			wantCounts:  []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes, report, err := ParseRecipes(strings.NewReader(tt.input), nil)
			require.NoError(t, err)

			require.Len(t, recipes, len(tt.wantRecipes))
			for i, r := range recipes {
				assert.Equal(t, tt.wantRecipes[i], r.Name())
				assert.Equal(t, tt.wantCounts[i], r.Len())
			}
			require.NotEmpty(t, report.Warnings)
			assert.ErrorIs(t, report.Warnings[0].Err, ErrLineTooLong)
			assert.Less(t, len(report.Warnings[0].Text), 64)
		})
	}
}

func TestParsePrices_OverlongLine(t *testing.T) {
	input := "pane, 0.20\n" + strings.Repeat("y", 3*maxLineLength) + "\nolio, 0.01\n"

	reg := NewPriceRegistry()
	report, err := ParsePrices(strings.NewReader(input), reg)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Lines)
	assert.Equal(t, 2, report.Prices)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, 2, report.Warnings[0].Line)
	assert.ErrorIs(t, report.Warnings[0].Err, ErrLineTooLong)
}

func TestParseRecipes_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 5, 25} {
		var b strings.Builder
		b.WriteString("Minestrone\n")
		for i := 0; i < n; i++ {
			b.WriteString("- verdura, 100, g\n")
		}

		recipes, _, err := ParseRecipes(strings.NewReader(b.String()), nil)
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, n, recipes[0].Len())
	}
}

func TestParsePrices(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		want         map[string]float64
		wantWarnings int
	}{
		{
			name:  "valid lines",
			input: pastaPrices,
			want:  map[string]float64{"pomodoro": 0.30, "pasta": 0.15},
		},
		{
			name:  "extra fields ignored",
			input: "olio, 0.01, per ml, extra\n",
			want:  map[string]float64{"olio": 0.01},
		},
		{
			name:         "malformed lines skipped",
			input:        "olio\nsale, cheap\nzucchero, -2\npepe, 0.05\n",
			want:         map[string]float64{"pepe": 0.05},
			wantWarnings: 3,
		},
		{
			name:         "non finite prices skipped",
			input:        "pane, NaN\nolio, +Inf\nsale, -Inf\npepe, 0.05\n",
			want:         map[string]float64{"pepe": 0.05},
			wantWarnings: 3,
		},
		{
			name:  "duplicate name keeps last",
			input: "pasta, 0.10\n\npasta, 0.15\n",
			want:  map[string]float64{"pasta": 0.15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewPriceRegistry()
			report, err := ParsePrices(strings.NewReader(tt.input), reg)
			require.NoError(t, err)

			assert.Len(t, report.Warnings, tt.wantWarnings)
			assert.Equal(t, len(tt.want), reg.Len())
			for name, price := range tt.want {
				got, ok := reg.Lookup(name)
				assert.True(t, ok, name)
				assert.Equal(t, price, got, name)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")

	_, _, err := LoadRecipes(missing, nil)
	var fileErr *FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, missing, fileErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), missing)

	_, err = LoadPrices(missing, NewPriceRegistry())
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, missing, fileErr.Path)
}

func TestParseRecipes_PricesAppliedAtParseTime(t *testing.T) {
	reg := NewPriceRegistry()
	reg.Register("pomodoro", 0.30)

	recipes, _, err := ParseRecipes(strings.NewReader(pastaRecipes), reg)
	require.NoError(t, err)

	ings := recipes[0].Ingredients()
	assert.Equal(t, 0.30, ings[0].UnitPrice)
	assert.Zero(t, ings[1].UnitPrice, "unknown price stays zero")
}
