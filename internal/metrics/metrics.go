// Package metrics provides Prometheus metrics collection for the meal planner.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mealplanner"

var (
	// PlanMutationsTotal tracks plan assignments and removals by outcome.
	PlanMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "plan_mutations_total",
		Help:      "Total number of meal plan mutations",
	}, []string{"operation", "outcome"})

	// PlannedRecipes tracks the number of recipe assignments in the plan.
	PlannedRecipes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "plan_assigned_recipes",
		Help:      "Number of recipes assigned across the weekly plan",
	})

	// ShoppingListDuration tracks how long aggregation takes when a list is
	// not served from the cache.
	ShoppingListDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "shopping_list_generation_duration_seconds",
		Help:      "Shopping list generation duration in seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})

	// ShoppingListsTotal tracks shopping lists served by source.
	ShoppingListsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shopping_lists_total",
		Help:      "Total number of shopping lists served",
	}, []string{"source"})

	// CatalogLoadsTotal tracks catalog and price loads by kind and status.
	CatalogLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_loads_total",
		Help:      "Total number of catalog file loads",
	}, []string{"kind", "status"})

	// CatalogParseWarningsTotal tracks skipped catalog lines.
	CatalogParseWarningsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_parse_warnings_total",
		Help:      "Total number of malformed catalog lines skipped",
	}, []string{"kind"})

	// CatalogRecipes tracks the number of recipes in the catalog.
	CatalogRecipes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_recipes",
		Help:      "Number of recipes in the loaded catalog",
	})

	CacheOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "report_cache",
		Name:      "operations_total",
		Help:      "Total number of shopping report cache operations",
	}, []string{"operation", "result"})

	CacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "report_cache",
		Name:      "size",
		Help:      "Reports currently cached",
	})

	CacheCapacity = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "report_cache",
		Name:      "capacity",
		Help:      "Maximum number of cached reports",
	})

	// CircuitState tracks circuit breaker state by name.
	CircuitState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "circuit_breaker_state",
		Help:      "Circuit breaker state (0 closed, 1 open, 2 half-open)",
	}, []string{"name"})
)

// RecordPlanMutation records an assign or unassign outcome and the resulting plan size.
func RecordPlanMutation(operation, outcome string, planned int) {
	PlanMutationsTotal.WithLabelValues(operation, outcome).Inc()
	PlannedRecipes.Set(float64(planned))
}

// RecordShoppingList records a shopping list served from source ("generated" or "cache").
func RecordShoppingList(duration time.Duration, source string) {
	if source == "generated" {
		ShoppingListDuration.Observe(duration.Seconds())
	}
	ShoppingListsTotal.WithLabelValues(source).Inc()
}

// RecordCatalogLoad records a recipe or price file load.
func RecordCatalogLoad(kind, status string, warnings int) {
	CatalogLoadsTotal.WithLabelValues(kind, status).Inc()
	if warnings > 0 {
		CatalogParseWarningsTotal.WithLabelValues(kind).Add(float64(warnings))
	}
}

func SetCatalogRecipes(n int) {
	CatalogRecipes.Set(float64(n))
}

func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// SetCircuitState records the state of a named circuit breaker.
func SetCircuitState(name string, state int) {
	CircuitState.WithLabelValues(name).Set(float64(state))
}
