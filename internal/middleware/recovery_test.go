package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/api/shopping-list", func(c *gin.Context) {
		var groups map[string]int
		groups["Vegetables"]++
	})
	router.GET("/api/plan", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	before := testutil.ToFloat64(metrics.PanicsRecoveredTotal.WithLabelValues("/api/shopping-list"))

	req := httptest.NewRequest(http.MethodGet, "/api/shopping-list", nil)
	req.Header.Set(i18n.AcceptLanguageHeader, "it")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeInternal, resp.Error)
	assert.Equal(t, i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, "it"), resp.Message)
	assert.Equal(t, w.Header().Get(RequestIDHeader), resp.RequestID)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.PanicsRecoveredTotal.WithLabelValues("/api/shopping-list")))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/plan", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestRecovery_AbortHandlerIsRepanicked(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Recovery())
	router.GET("/api/plan", func(c *gin.Context) { panic(http.ErrAbortHandler) })

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/plan", nil))
	})
}
