package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// HealthChecker defines the interface for health check operations.
type HealthChecker interface {
	Check() error
}

// Readiness statuses.
const (
	StatusOK          = "ok"
	StatusDegraded    = "degraded"
	StatusUnavailable = "unavailable"
)

// ReadinessResponse is the body of /readyz.
type ReadinessResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks"`
}

type namedChecker struct {
	name     string
	checker  HealthChecker
	critical bool
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	checkers []namedChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterChecker adds a check that must pass for the service to be ready,
// such as the loaded catalog.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.register(name, checker, true)
}

// RegisterOptional adds a check whose failure only degrades readiness. The
// price reload breaker is registered this way: plans keep working while
// reloads are suspended.
func (h *HealthHandler) RegisterOptional(name string, checker HealthChecker) {
	h.register(name, checker, false)
}

func (h *HealthHandler) register(name string, checker HealthChecker, critical bool) {
	if checker == nil {
		return
	}
	h.checkers = append(h.checkers, namedChecker{name: name, checker: checker, critical: critical})
	sort.SliceStable(h.checkers, func(i, j int) bool { return h.checkers[i].name < h.checkers[j].name })
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK while the process is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": StatusOK})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Reports every registered check. A failing critical check (the recipe catalog) makes the service unavailable; a failing optional check (the price reload breaker) only degrades it.
// @Tags        Health
// @Produce     json
// @Success     200 {object} ReadinessResponse "Ready, possibly degraded"
// @Failure     503 {object} ReadinessResponse "Not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	resp := h.evaluate()
	code := http.StatusOK
	if resp.Status == StatusUnavailable {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}

func (h *HealthHandler) evaluate() ReadinessResponse {
	resp := ReadinessResponse{Status: StatusOK, Checks: make(map[string]string, len(h.checkers))}

	for _, nc := range h.checkers {
		err := nc.checker.Check()
		if err == nil {
			resp.Checks[nc.name] = StatusOK
			continue
		}
		resp.Checks[nc.name] = err.Error()
		switch {
		case nc.critical:
			resp.Status = StatusUnavailable
		case resp.Status == StatusOK:
			resp.Status = StatusDegraded
		}
	}
	return resp
}
