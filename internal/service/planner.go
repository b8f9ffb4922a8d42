// Package service contains the business logic of the meal planner.
package service

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/guttosm/meal-planner/internal/circuitbreaker"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/logger"
	"github.com/guttosm/meal-planner/internal/metrics"
	"github.com/guttosm/meal-planner/internal/repository"
	"github.com/guttosm/meal-planner/internal/service/cache"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrRecipeNotFound is returned when a recipe name is not in the catalog.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrCatalogNotLoaded is reported by Check before the first successful LoadCatalog.
	ErrCatalogNotLoaded = errors.New("recipe catalog not loaded")
	// ErrNoPriceFile is returned by ReloadPrices when no price file is known.
	ErrNoPriceFile = errors.New("no price file configured")
)

// MealPlanner is the set of operations offered to user-facing surfaces.
type MealPlanner interface {
	LoadCatalog(recipePath, pricePath string) ([]*model.Recipe, error)
	// ReloadPrices re-reads pricePath, or the last loaded price file when empty.
	ReloadPrices(ctx context.Context, pricePath string) (int, error)
	ListAllRecipes() []*model.Recipe
	FindRecipe(name string) (*model.Recipe, bool)
	AssignRecipe(day model.Day, slot model.MealSlot, name string) error
	UnassignRecipe(day model.Day, slot model.MealSlot, name string) error
	Plan() []model.DayPlan
	ClearPlan()
	GenerateShoppingList() model.ShoppingReport
	Check() error
}

// Option configures a MealPlannerService.
type Option func(*MealPlannerService)

// MealPlannerService owns the catalog, the price registry and the weekly plan.
// A single RWMutex serializes mutations; shopping lists are generated under
// the read lock so they never observe a half-applied change.
type MealPlannerService struct {
	mu         sync.RWMutex
	recipes    repository.RecipeRepositoryInterface
	prices     *repository.PriceRegistry
	plan       *model.WeeklyPlan
	aggregator *Aggregator
	classifier *Classifier
	cache      cache.Cache
	flight     singleflight.Group
	version    uint64
	// epoch changes whenever recipes or prices change, so cached reports of
	// an identical plan are not reused across catalogs.
	epoch      uint64
	loaded     bool
	pricePath  string
	breaker    *circuitbreaker.CircuitBreaker
}

// NewMealPlannerService creates a planner with an empty catalog and plan.
func NewMealPlannerService(opts ...Option) *MealPlannerService {
	s := &MealPlannerService{
		recipes:    repository.NewInMemoryRecipeRepository(),
		prices:     repository.NewPriceRegistry(),
		plan:       model.NewWeeklyPlan(),
		aggregator: NewAggregator(),
		classifier: NewClassifier(),
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithReportCache caches generated shopping reports by plan contents, so
// undoing a change serves the earlier report again.
func WithReportCache(capacity int, ttl time.Duration) Option {
	return func(s *MealPlannerService) {
		if capacity > 0 && ttl > 0 {
			s.cache = newReportCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *MealPlannerService) {
		s.cache = c
	}
}

// WithRecipeRepository replaces the in-memory catalog.
func WithRecipeRepository(repo repository.RecipeRepositoryInterface) Option {
	return func(s *MealPlannerService) {
		if repo != nil {
			s.recipes = repo
			s.loaded = repo.Len() > 0
		}
	}
}

// WithPriceRegistry sets the registry used for pricing.
func WithPriceRegistry(reg *repository.PriceRegistry) Option {
	return func(s *MealPlannerService) {
		if reg != nil {
			s.prices = reg
		}
	}
}

// WithReloadBreaker guards ReloadPrices with cb. While the circuit is open,
// reloads fail with circuitbreaker.ErrCircuitOpen without touching the file.
func WithReloadBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(s *MealPlannerService) {
		s.breaker = cb
	}
}

// LoadCatalog reads prices, then recipes, and replaces the catalog. The plan
// is reset since it may reference recipes that no longer exist. On error
// nothing changes.
func (s *MealPlannerService) LoadCatalog(recipePath, pricePath string) ([]*model.Recipe, error) {
	log := logger.Component("planner")

	registry := repository.NewPriceRegistry()
	if pricePath != "" {
		report, err := repository.LoadPrices(pricePath, registry)
		if err != nil {
			metrics.RecordCatalogLoad("prices", "error", 0)
			return nil, fmt.Errorf("load prices: %w", err)
		}
		metrics.RecordCatalogLoad("prices", "success", len(report.Warnings))
	}

	recipes, report, err := repository.LoadRecipes(recipePath, registry)
	if err != nil {
		metrics.RecordCatalogLoad("recipes", "error", 0)
		return nil, fmt.Errorf("load recipes: %w", err)
	}
	metrics.RecordCatalogLoad("recipes", "success", len(report.Warnings))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.prices.Reset()
	registry.CopyTo(s.prices)
	s.recipes.Replace(recipes)
	s.plan.Clear()
	s.pricePath = pricePath
	s.loaded = true
	s.epoch++
	s.bumpLocked()

	metrics.SetCatalogRecipes(len(recipes))
	metrics.PlannedRecipes.Set(0)
	log.Info().
		Str("recipes_file", recipePath).
		Str("prices_file", pricePath).
		Int("recipes", len(recipes)).
		Int("ingredients", report.Ingredients).
		Int("prices", s.prices.Len()).
		Int("warnings", len(report.Warnings)).
		Msg("Catalog loaded")

	return s.recipes.List(), nil
}

// ReloadPrices re-reads a price file and re-prices the recipes currently in
// the catalog. Prices absent from the file are kept. It returns the number of
// ingredient lines priced from the file.
func (s *MealPlannerService) ReloadPrices(ctx context.Context, pricePath string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pricePath == "" {
		pricePath = s.pricePath
	}
	if pricePath == "" {
		return 0, ErrNoPriceFile
	}

	// Parse into a scratch registry so a failed read leaves prices untouched.
	scratch := repository.NewPriceRegistry()
	var report repository.ParseReport
	load := func() error {
		var err error
		report, err = repository.LoadPrices(pricePath, scratch)
		return err
	}

	var err error
	if s.breaker != nil {
		err = s.breaker.Execute(ctx, load)
	} else {
		err = load()
	}
	log := logger.FromContext(ctx, "planner")
	if err != nil {
		metrics.RecordCatalogLoad("prices", "error", 0)
		log.Warn().Err(err).Str("prices_file", pricePath).Msg("Price reload failed")
		return 0, fmt.Errorf("reload prices: %w", err)
	}
	metrics.RecordCatalogLoad("prices", "success", len(report.Warnings))

	scratch.CopyTo(s.prices)
	replaced, n := s.recipes.Reprice(scratch)
	s.plan.Remap(replaced)
	s.pricePath = pricePath
	s.epoch++
	s.bumpLocked()

	log.Info().
		Str("prices_file", pricePath).
		Int("prices", report.Prices).
		Int("repriced", n).
		Msg("Prices reloaded")
	return n, nil
}

// ListAllRecipes returns the catalog in load order.
func (s *MealPlannerService) ListAllRecipes() []*model.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recipes.List()
}

// FindRecipe returns the first recipe with the given name, ignoring case.
func (s *MealPlannerService) FindRecipe(name string) (*model.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recipes.FindByName(name)
}

// AssignRecipe adds the named recipe to a slot. It returns ErrRecipeNotFound
// for an unknown name, model.ErrSlotFull when the slot is at capacity and
// ErrCatalogNotLoaded before any catalog is loaded.
func (s *MealPlannerService) AssignRecipe(day model.Day, slot model.MealSlot, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.recordMutationLocked("assign", "not_loaded", day, slot, name)
		return ErrCatalogNotLoaded
	}

	recipe, ok := s.recipes.FindByName(name)
	if !ok {
		s.recordMutationLocked("assign", "not_found", day, slot, name)
		return fmt.Errorf("%q: %w", name, ErrRecipeNotFound)
	}

	if err := s.plan.Assign(day, slot, recipe); err != nil {
		s.recordMutationLocked("assign", outcomeOf(err), day, slot, name)
		return err
	}

	s.bumpLocked()
	s.recordMutationLocked("assign", "success", day, slot, name)
	return nil
}

// UnassignRecipe removes the first recipe with the given name from a slot.
// It returns model.ErrRecipeNotInSlot when the slot does not hold it, and
// ErrRecipeNotFound when the catalog has no such recipe either.
func (s *MealPlannerService) UnassignRecipe(day model.Day, slot model.MealSlot, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target *model.Recipe
	for _, r := range s.plan.Recipes(day, slot) {
		if r.MatchesName(name) {
			target = r
			break
		}
	}

	if target == nil {
		recipe, ok := s.recipes.FindByName(name)
		if !ok {
			s.recordMutationLocked("unassign", "not_found", day, slot, name)
			return fmt.Errorf("%q: %w", name, ErrRecipeNotFound)
		}
		target = recipe
	}

	if err := s.plan.Unassign(day, slot, target); err != nil {
		s.recordMutationLocked("unassign", outcomeOf(err), day, slot, name)
		return err
	}

	s.bumpLocked()
	s.recordMutationLocked("unassign", "success", day, slot, name)
	return nil
}

// Plan returns the current plan grid.
func (s *MealPlannerService) Plan() []model.DayPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plan.Snapshot()
}

// ClearPlan removes every assignment.
func (s *MealPlannerService) ClearPlan() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.plan.Clear()
	s.bumpLocked()
	metrics.RecordPlanMutation("clear", "success", 0)
	log := logger.Component("planner")
	log.Info().Msg("Plan cleared")
}

// GenerateShoppingList aggregates the plan into a categorized report. It does
// not modify the plan; repeated calls with no mutation in between return the
// same report. Concurrent calls for the same plan share one aggregation.
func (s *MealPlannerService) GenerateShoppingList() model.ShoppingReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cache == nil {
		return s.buildReportLocked()
	}

	// Cached reports are shared, so callers get their own copy.
	key := planFingerprint(s.plan, s.epoch)
	if report, ok := s.cache.Get(key); ok {
		metrics.RecordShoppingList(0, "cache")
		report = report.Clone()
		report.PlanVersion = s.version
		return report
	}

	v, _, _ := s.flight.Do(strconv.FormatUint(key, 16), func() (interface{}, error) {
		report := s.buildReportLocked()
		s.cache.Set(key, report)
		return report, nil
	})
	report := v.(model.ShoppingReport).Clone()
	report.PlanVersion = s.version
	return report
}

func (s *MealPlannerService) buildReportLocked() model.ShoppingReport {
	start := time.Now()
	list := s.aggregator.Generate(s.plan)
	if list.Len() == 0 {
		metrics.RecordShoppingList(time.Since(start), "generated")
		return model.EmptyReport(s.version)
	}
	report := model.ShoppingReport{
		Groups:      s.classifier.Group(list),
		Total:       s.aggregator.CalculateTotal(list),
		ItemCount:   list.Len(),
		PlanVersion: s.version,
	}
	metrics.RecordShoppingList(time.Since(start), "generated")
	return report
}

// planFingerprint hashes the assignments of p together with the catalog
// epoch. Recipe names are compared case-insensitively when assigning, so the
// canonical catalog name is hashed.
func planFingerprint(p *model.WeeklyPlan, epoch uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], epoch)
	_, _ = d.Write(buf[:])
	p.Each(func(day model.Day, slot model.MealSlot, r *model.Recipe) {
		_, _ = d.WriteString(string(day))
		_, _ = d.WriteString("/")
		_, _ = d.WriteString(string(slot))
		_, _ = d.WriteString("/")
		_, _ = d.WriteString(r.Name())
		_, _ = d.WriteString("\n")
	})
	return d.Sum64()
}

// Check reports whether a catalog has been loaded.
func (s *MealPlannerService) Check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return ErrCatalogNotLoaded
	}
	return nil
}

// Stop releases the report cache.
func (s *MealPlannerService) Stop() {
	if s.cache == nil {
		return
	}
	s.cache.Stop()
	if r, ok := s.cache.(cache.StatsReporter); ok {
		st := r.Stats()
		log := logger.Component("planner")
		log.Debug().
			Int64("hits", st.Hits).
			Int64("misses", st.Misses).
			Int64("evictions", st.Evictions).
			Float64("hit_ratio", st.HitRatio()).
			Msg("Report cache stopped")
	}
}

func (s *MealPlannerService) bumpLocked() {
	s.version++
}

func (s *MealPlannerService) recordMutationLocked(op, outcome string, day model.Day, slot model.MealSlot, name string) {
	planned := s.plan.Count()
	metrics.RecordPlanMutation(op, outcome, planned)

	log := logger.Component("planner")
	event := log.Debug()
	if outcome != "success" {
		event = log.Info()
	}
	event.
		Str("operation", op).
		Str("outcome", outcome).
		Str("day", string(day)).
		Str("slot", string(slot)).
		Str("recipe", name).
		Int("planned", planned).
		Msg("Plan mutation")
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, model.ErrSlotFull):
		return "slot_full"
	case errors.Is(err, model.ErrRecipeNotInSlot):
		return "not_in_slot"
	case errors.Is(err, model.ErrUnknownDay), errors.Is(err, model.ErrUnknownMealSlot):
		return "invalid"
	default:
		return "error"
	}
}

var _ MealPlanner = (*MealPlannerService)(nil)
