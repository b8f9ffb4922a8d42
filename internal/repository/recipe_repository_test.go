package repository

import (
	"testing"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRecipeRepository_FindByName(t *testing.T) {
	first := model.NewRecipe("Toast")
	second := model.NewRecipe("toast")
	repo := NewInMemoryRecipeRepository(first, model.NewRecipe("Risotto"), second)

	tests := []struct {
		name   string
		query  string
		want   *model.Recipe
		wantOK bool
	}{
		{name: "exact", query: "Toast", want: first, wantOK: true},
		{name: "case insensitive returns first", query: "TOAST", want: first, wantOK: true},
		{name: "missing", query: "Lasagna"},
		{name: "prefix is not a match", query: "Toa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := repo.FindByName(tt.query)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Same(t, tt.want, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestInMemoryRecipeRepository_ListAndReplace(t *testing.T) {
	repo := NewInMemoryRecipeRepository(model.NewRecipe("A"), model.NewRecipe("B"))

	list := repo.List()
	require.Len(t, list, 2)
	list[0] = model.NewRecipe("Z")
	assert.Equal(t, "A", repo.List()[0].Name())

	repo.Replace([]*model.Recipe{model.NewRecipe("C")})
	assert.Equal(t, 1, repo.Len())
	_, ok := repo.FindByName("A")
	assert.False(t, ok)
}

func TestInMemoryRecipeRepository_Reprice(t *testing.T) {
	pasta := model.NewRecipe("Pasta al Pomodoro",
		model.Ingredient{Name: "pomodoro", Quantity: 400, Unit: "g"},
		model.Ingredient{Name: "pasta", Quantity: 320, Unit: "g"},
	)
	toast := model.NewRecipe("Toast", model.Ingredient{Name: "pane", Quantity: 2, Unit: "fette"})
	repo := NewInMemoryRecipeRepository(pasta, toast)
	reg := NewPriceRegistry()
	reg.Register("pomodoro", 0.30)
	reg.Register("pasta", 0.15)

	replaced, n := repo.Reprice(reg)

	assert.Equal(t, 2, n)
	require.Len(t, replaced, 1)
	assert.Zero(t, pasta.TotalCost(), "published recipe is not modified")

	priced, ok := repo.FindByName("pasta al pomodoro")
	require.True(t, ok)
	assert.Same(t, replaced[pasta], priced)
	assert.InDelta(t, 168.0, priced.TotalCost(), 1e-9)

	same, ok := repo.FindByName("toast")
	require.True(t, ok)
	assert.Same(t, toast, same, "unpriced recipe is kept as is")
}
