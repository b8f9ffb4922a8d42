package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into an error envelope when
// the handler did not write a response itself. Binding errors become 400,
// everything else 500. All attached errors are logged.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		status, key := http.StatusInternalServerError, i18n.ErrKeyInternalError
		if last.IsType(gin.ErrorTypeBind) {
			status, key = http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody
		}

		log := logger.FromContext(c.Request.Context(), "http")
		log.WithLevel(getLogLevel(status)).
			Strs("errors", c.Errors.Errors()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}
		message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
		c.JSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(GetRequestID(c)))
	}
}
