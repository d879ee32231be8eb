package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_HTTPStatus(t *testing.T) {
	tests := []struct {
		err  *APIError
		want int
	}{
		{NewValidationError("bad", nil), http.StatusUnprocessableEntity},
		{NewBadRequestError("bad"), http.StatusBadRequest},
		{NewNotFoundError("route"), http.StatusNotFound},
		{NewPayloadTooLargeError(10), http.StatusRequestEntityTooLarge},
		{NewUpstreamError("transcription failed"), http.StatusBadGateway},
		{NewInternalError("boom"), http.StatusInternalServerError},
		{&APIError{Kind: "unknown"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAPIError_JSON(t *testing.T) {
	err := NewValidationError("Validation failed", map[string]string{"text": "is required"})
	err.RequestID = "req-1"

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"kind":"validation","message":"Validation failed","details":{"text":"is required"},"request_id":"req-1"}`, string(data))

	data, marshalErr = json.Marshal(NewNotFoundError("route"))
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"kind":"not_found","message":"route not found"}`, string(data))
}
