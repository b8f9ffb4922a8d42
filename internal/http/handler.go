package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/meal-planner/internal/circuitbreaker"
	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/service"
)

// Handler provides HTTP handlers for the recipe catalog and the weekly plan.
type Handler struct {
	planner    service.MealPlanner
	pricesFile string
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithPricesFile sets the price file re-read by ReloadPrices. When empty the
// planner falls back to the file it last loaded.
func WithPricesFile(path string) HandlerOption {
	return func(h *Handler) {
		h.pricesFile = path
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(planner service.MealPlanner, opts ...HandlerOption) *Handler {
	h := &Handler{planner: planner}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ListRecipes handles GET /api/recipes.
//
// @Summary      List recipes
// @Description  Returns every recipe of the catalog in file order, with ingredients priced from the price list.
// @Tags         Recipes
// @Produce      json
// @Param        Accept-Language header string false "Response language (en, it, pt)"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.RecipeResponse}
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /api/recipes [get]
func (h *Handler) ListRecipes(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewRecipeListResponse(h.planner.ListAllRecipes()))
}

// GetRecipe handles GET /api/recipes/:name.
//
// @Summary      Get a recipe
// @Description  Looks a recipe up by name, ignoring case.
// @Tags         Recipes
// @Produce      json
// @Param        name path string true "Recipe name"
// @Success      200 {object} dto.SuccessResponse{data=dto.RecipeResponse}
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Router       /api/recipes/{name} [get]
func (h *Handler) GetRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	recipe, ok := h.planner.FindRecipe(c.Param("name"))
	if !ok {
		builder.Error(http.StatusNotFound, i18n.ErrKeyRecipeNotFound, nil)
		return
	}
	builder.SuccessOK(dto.NewRecipeResponse(recipe))
}

// GetPlan handles GET /api/plan.
//
// @Summary      Get the weekly plan
// @Description  Returns the seven days from Monday, each with breakfast, lunch and dinner, their capacity and the planned recipe names.
// @Tags         Plan
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.DayPlan}
// @Router       /api/plan [get]
func (h *Handler) GetPlan(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.planner.Plan())
}

// AssignRecipe handles POST /api/plan/:day/:slot.
//
// @Summary      Add a recipe to a meal
// @Description  Adds a catalog recipe to a day and meal slot. Breakfast holds up to 2 recipes, lunch and dinner up to 3. The same recipe may be added more than once.
// @Tags         Plan
// @Accept       json
// @Produce      json
// @Param        day path string true "Day of the week" example(monday)
// @Param        slot path string true "Meal slot" Enums(breakfast, lunch, dinner)
// @Param        request body dto.AssignRecipeRequest true "Recipe to add"
// @Success      201 {object} dto.SuccessResponse{data=[]model.DayPlan}
// @Failure      400 {object} dto.ErrorResponse "Unknown day or slot, or invalid body"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Failure      409 {object} dto.ErrorResponse "Meal slot is full"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      503 {object} dto.ErrorResponse "Recipe catalog not loaded"
// @Router       /api/plan/{day}/{slot} [post]
func (h *Handler) AssignRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	day, slot, ok := parseDaySlot(c, builder)
	if !ok {
		return
	}

	req, err := BindJSON[dto.AssignRecipeRequest](c)
	if err != nil {
		var verr *dto.ValidationError
		if errors.As(err, &verr) {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyValidationRecipe, verr.Details(), err)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.planner.AssignRecipe(day, slot, req.Recipe); err != nil {
		h.planError(builder, err)
		return
	}

	builder.SuccessWithMessage(http.StatusCreated, i18n.SuccessKeyRecipeAssigned, h.planner.Plan())
}

// UnassignRecipe handles DELETE /api/plan/:day/:slot/:recipe.
//
// @Summary      Remove a recipe from a meal
// @Description  Removes one occurrence of the recipe from the day and meal slot.
// @Tags         Plan
// @Produce      json
// @Param        day path string true "Day of the week" example(monday)
// @Param        slot path string true "Meal slot" Enums(breakfast, lunch, dinner)
// @Param        recipe path string true "Recipe name"
// @Success      200 {object} dto.SuccessResponse{data=[]model.DayPlan}
// @Failure      400 {object} dto.ErrorResponse "Unknown day or slot"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found or not planned for this meal"
// @Router       /api/plan/{day}/{slot}/{recipe} [delete]
func (h *Handler) UnassignRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	day, slot, ok := parseDaySlot(c, builder)
	if !ok {
		return
	}

	if err := h.planner.UnassignRecipe(day, slot, c.Param("recipe")); err != nil {
		h.planError(builder, err)
		return
	}

	builder.SuccessWithMessage(http.StatusOK, i18n.SuccessKeyRecipeUnassigned, h.planner.Plan())
}

// ClearPlan handles DELETE /api/plan.
//
// @Summary      Clear the plan
// @Tags         Plan
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.DayPlan}
// @Router       /api/plan [delete]
func (h *Handler) ClearPlan(c *gin.Context) {
	h.planner.ClearPlan()
	NewResponseBuilder(c).SuccessWithMessage(http.StatusOK, i18n.SuccessKeyPlanCleared, h.planner.Plan())
}

// GetShoppingList handles GET /api/shopping-list.
//
// @Summary      Generate the shopping list
// @Description  Aggregates the ingredients of every planned recipe by name and unit, groups them by category and returns the grand total. Reading the list never changes the plan.
// @Tags         Shopping list
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ShoppingListResponse}
// @Router       /api/shopping-list [get]
func (h *Handler) GetShoppingList(c *gin.Context) {
	report := h.planner.GenerateShoppingList()
	NewResponseBuilder(c).SuccessOK(dto.NewShoppingListResponse(report))
}

// ReloadPrices handles POST /api/catalog/prices/reload.
//
// @Summary      Reload the price list
// @Description  Re-reads the configured price file and re-prices the catalog. Prices missing from the file keep their previous value.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.PriceReloadResponse}
// @Failure      503 {object} dto.ErrorResponse "Price file unreadable or reloads suspended"
// @Header       503 {integer} Retry-After "Seconds until reloads resume, while suspended"
// @Router       /api/catalog/prices/reload [post]
func (h *Handler) ReloadPrices(c *gin.Context) {
	builder := NewResponseBuilder(c)

	n, err := h.planner.ReloadPrices(c.Request.Context(), h.pricesFile)
	if err != nil {
		if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
			var openErr *circuitbreaker.OpenError
			if errors.As(err, &openErr) && openErr.RetryAfter > 0 {
				c.Header("Retry-After", strconv.Itoa(int(math.Ceil(openErr.RetryAfter.Seconds()))))
			}
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyPriceReloadSuspended, err)
			return
		}
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyPriceReloadFailed, err)
		return
	}

	builder.SuccessWithMessage(http.StatusOK, i18n.SuccessKeyPricesReloaded, dto.PriceReloadResponse{Repriced: n})
}

// parseDaySlot reads the :day and :slot path parameters and writes a 400
// response when either is unknown.
func parseDaySlot(c *gin.Context, builder *ResponseBuilder) (model.Day, model.MealSlot, bool) {
	day, err := model.ParseDay(c.Param("day"))
	if err != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidDay, map[string]string{"day": c.Param("day")}, err)
		return "", "", false
	}
	slot, err := model.ParseMealSlot(c.Param("slot"))
	if err != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidSlot, map[string]string{"slot": c.Param("slot")}, err)
		return "", "", false
	}
	return day, slot, true
}

func (h *Handler) planError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, model.ErrSlotFull):
		builder.ErrorWithCode(http.StatusConflict, dto.ErrCodeSlotFull, i18n.ErrKeySlotFull, err)
	case errors.Is(err, model.ErrRecipeNotInSlot):
		builder.Error(http.StatusNotFound, i18n.ErrKeyRecipeNotInSlot, err)
	case errors.Is(err, service.ErrCatalogNotLoaded):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogNotLoaded, err)
	case errors.Is(err, service.ErrRecipeNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyRecipeNotFound, err)
	case errors.Is(err, model.ErrUnknownDay):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidDay, err)
	case errors.Is(err, model.ErrUnknownMealSlot):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidSlot, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
