package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyRecipeNotFound indicates the recipe name is not in the catalog.
	ErrKeyRecipeNotFound = "error.recipe_not_found"
	// ErrKeySlotFull indicates the meal slot already holds its maximum number of recipes.
	ErrKeySlotFull = "error.slot_full"
	// ErrKeyRecipeNotInSlot indicates the recipe is not assigned to the meal slot.
	ErrKeyRecipeNotInSlot = "error.recipe_not_in_slot"
	// ErrKeyInvalidDay indicates an unknown day of the week.
	ErrKeyInvalidDay = "error.invalid_day"
	// ErrKeyInvalidSlot indicates an unknown meal slot.
	ErrKeyInvalidSlot = "error.invalid_slot"
	// ErrKeyValidationRecipe indicates a missing recipe name in the request body.
	ErrKeyValidationRecipe = "error.validation.recipe"
	// ErrKeyPriceReloadFailed indicates the price file could not be read.
	ErrKeyPriceReloadFailed = "error.price_reload_failed"
	// ErrKeyPriceReloadSuspended indicates reloads are paused after repeated failures.
	ErrKeyPriceReloadSuspended = "error.price_reload_suspended"
	// ErrKeyCatalogNotLoaded indicates no recipe catalog is available yet.
	ErrKeyCatalogNotLoaded = "error.catalog_not_loaded"
	// ErrKeyRouteNotFound indicates no route matches the request.
	ErrKeyRouteNotFound = "error.route_not_found"
)

// Success message translation keys.
const (
	SuccessKeyRecipeAssigned   = "success.recipe_assigned"
	SuccessKeyRecipeUnassigned = "success.recipe_unassigned"
	SuccessKeyPlanCleared      = "success.plan_cleared"
	SuccessKeyPricesReloaded   = "success.prices_reloaded"
)
