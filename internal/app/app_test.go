package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
	}{
		{
			name:   "creates router with default config",
			mutate: func(*config.Config) {},
		},
		{
			name: "creates router with cache disabled",
			mutate: func(cfg *config.Config) {
				cfg.Cache.Size = 0
			},
		},
		{
			name: "creates router without rate limits",
			mutate: func(cfg *config.Config) {
				cfg.Server.RateLimit = 0
				cfg.Server.MutationRateLimit = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(&cfg)

			application, err := InitializeApp(cfg)
			require.NoError(t, err)
			defer application.Close()

			w := httptest.NewRecorder()
			application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
			assert.Equal(t, http.StatusOK, w.Code)

			w = httptest.NewRecorder()
			application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes/toast", nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"total_cost":"0.50"`)
		})
	}
}

func TestInitializeApp_MissingCatalog(t *testing.T) {
	cfg := testConfig(t)
	cfg.Catalog.RecipesFile = filepath.Join(t.TempDir(), "missing.txt")

	application, err := InitializeApp(cfg)

	assert.Nil(t, application)
	require.Error(t, err)
	var fileErr *repository.FileError
	assert.ErrorAs(t, err, &fileErr)
	assert.Equal(t, cfg.Catalog.RecipesFile, fileErr.Path)
}
