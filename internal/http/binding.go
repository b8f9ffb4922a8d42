package http

import (
	"github.com/gin-gonic/gin"
)

// Validator is implemented by request bodies that check themselves after decoding.
type Validator interface {
	Validate() error
}

// BindJSON decodes the JSON body of c into a new T and, when *T implements
// Validator, validates it. Decoding errors are returned as they come from
// gin; validation errors are whatever Validate returns.
func BindJSON[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}
