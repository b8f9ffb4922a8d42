package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordPlanMutation(t *testing.T) {
	before := testutil.ToFloat64(PlanMutationsTotal.WithLabelValues("assign", "slot_full"))

	RecordPlanMutation("assign", "slot_full", 4)

	assert.Equal(t, before+1, testutil.ToFloat64(PlanMutationsTotal.WithLabelValues("assign", "slot_full")))
	assert.Equal(t, 4.0, testutil.ToFloat64(PlannedRecipes))
}

func TestRecordShoppingList(t *testing.T) {
	before := testutil.ToFloat64(ShoppingListsTotal.WithLabelValues("cache"))

	RecordShoppingList(100*time.Microsecond, "generated")
	RecordShoppingList(0, "cache")

	assert.Equal(t, before+1, testutil.ToFloat64(ShoppingListsTotal.WithLabelValues("cache")))
}

func TestRecordCatalogLoad(t *testing.T) {
	before := testutil.ToFloat64(CatalogParseWarningsTotal.WithLabelValues("recipes"))

	RecordCatalogLoad("recipes", "success", 2)
	RecordCatalogLoad("recipes", "error", 0)
	SetCatalogRecipes(12)

	assert.Equal(t, before+2, testutil.ToFloat64(CatalogParseWarningsTotal.WithLabelValues("recipes")))
	assert.Equal(t, 12.0, testutil.ToFloat64(CatalogRecipes))
}

func TestRecordCacheOperation(t *testing.T) {
	before := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit"))

	RecordCacheOperation("get", "hit")
	RecordCacheOperation("get", "miss")

	assert.Equal(t, before+1, testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit")))
}

func TestUpdateCacheMetrics(t *testing.T) {
	UpdateCacheMetrics(50, 100)
	UpdateCacheMetrics(75, 100)

	assert.Equal(t, 75.0, testutil.ToFloat64(CacheSize))
	assert.Equal(t, 100.0, testutil.ToFloat64(CacheCapacity))
}

func TestSetCircuitState(t *testing.T) {
	SetCircuitState("price-reload", 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(CircuitState.WithLabelValues("price-reload")))

	SetCircuitState("price-reload", 0)
	assert.Equal(t, 0.0, testutil.ToFloat64(CircuitState.WithLabelValues("price-reload")))
}
