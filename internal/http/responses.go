package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/middleware"
)

var (
	successPool = sync.Pool{New: func() interface{} { return new(dto.SuccessResponse) }}
	errorPool   = sync.Pool{New: func() interface{} { return new(dto.ErrorResponse) }}
)

func acquireSuccess() *dto.SuccessResponse {
	return successPool.Get().(*dto.SuccessResponse)
}

func releaseSuccess(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successPool.Put(resp)
}

func acquireError() *dto.ErrorResponse {
	return errorPool.Get().(*dto.ErrorResponse)
}

func releaseError(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorPool.Put(resp)
}

// ResponseBuilder writes the JSON envelopes of the API: data wrapped in a
// SuccessResponse, failures as ErrorResponse with a translated message.
// Envelopes are pooled; gin serializes synchronously, so they are released
// as soon as the body is written.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

func (b *ResponseBuilder) translate(key string) string {
	return i18n.GetTranslator().Translate(key, i18n.GetLocale(b.c))
}

// Success writes data with the given status.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	b.write(statusCode, "", data)
}

// SuccessOK writes data with 200 OK.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.write(http.StatusOK, "", data)
}

// SuccessWithMessage writes data along with the translated messageKey.
func (b *ResponseBuilder) SuccessWithMessage(statusCode int, messageKey string, data interface{}) {
	b.write(statusCode, b.translate(messageKey), data)
}

func (b *ResponseBuilder) write(statusCode int, message string, data interface{}) {
	resp := acquireSuccess()
	defer releaseSuccess(resp)

	resp.Data = data
	resp.Message = message
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()
	b.c.JSON(statusCode, resp)
}

// Error aborts with the default error code of statusCode.
// A non-nil err is attached to the context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.abort(statusCode, dto.ErrCodeFromStatus(statusCode), messageKey, nil, err)
}

// ErrorWithCode aborts with an explicit error code, for failures more
// specific than their status such as a full meal slot.
func (b *ResponseBuilder) ErrorWithCode(statusCode int, code, messageKey string, err error) {
	b.abort(statusCode, code, messageKey, nil, err)
}

// ErrorWithDetails aborts like Error and names the offending input.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string, err error) {
	b.abort(statusCode, dto.ErrCodeFromStatus(statusCode), messageKey, details, err)
}

func (b *ResponseBuilder) abort(statusCode int, code, messageKey string, details map[string]string, err error) {
	resp := acquireError()
	defer releaseError(resp)

	resp.Error = code
	resp.Message = b.translate(messageKey)
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, resp)
}
