package dto

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	resp := NewError(ErrCodeSlotFull, "full").
		WithRequestID("req-1").
		WithDetails(map[string]string{"slot": "breakfast"})

	assert.Equal(t, ErrCodeSlotFull, resp.Error)
	assert.Equal(t, "full", resp.Message)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.Equal(t, "breakfast", resp.Details["slot"])
	assert.WithinDuration(t, time.Now(), resp.Timestamp, time.Second)
}

func TestErrorResponse_WithersCopy(t *testing.T) {
	base := NewError(ErrCodeNotFound, "missing")
	_ = base.WithRequestID("req-2").WithDetails(map[string]string{"recipe": "Risotto"})

	assert.Empty(t, base.RequestID)
	assert.Nil(t, base.Details)
}

func TestErrorResponse_JSON(t *testing.T) {
	data, err := json.Marshal(NewError(ErrCodeInvalidRequest, "bad day"))
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "invalid_request", raw["error"])
	assert.NotContains(t, raw, "details")
	assert.NotContains(t, raw, "request_id")
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusServiceUnavailable, ErrCodeUnavailable},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
		{http.StatusUnauthorized, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, ErrCodeFromStatus(tt.status))
		})
	}
}
