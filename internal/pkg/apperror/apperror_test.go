// internal/pkg/apperror/apperror_test.go
package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renewcart/buyback-be/internal/pkg/apperror"
)

func TestError_Status(t *testing.T) {
	tests := []struct {
		name     string
		err      *apperror.Error
		expected int
	}{
		{"not_found", apperror.NotFound("device not found"), http.StatusNotFound},
		{"bad_request", apperror.BadRequest("sku is required"), http.StatusBadRequest},
		{"conflict", apperror.Conflict("duplicate canonical key"), http.StatusConflict},
		{"internal", apperror.Internal("boom", errors.New("pg down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Status())
		})
	}
}

func TestFromError_PreservesKindThroughWrapping(t *testing.T) {
	cause := apperror.Conflict("device already has this grade")
	wrapped := fmt.Errorf("stock-in failed: %w", cause)

	got := apperror.FromError(wrapped)
	assert.Equal(t, apperror.KindConflict, got.Kind)
	assert.Equal(t, http.StatusConflict, got.Status())
	assert.Equal(t, "device already has this grade", got.Message)
}

func TestFromError_UnknownBecomesInternal(t *testing.T) {
	got := apperror.FromError(errors.New("connection reset"))
	require.NotNil(t, got)
	assert.Equal(t, apperror.KindInternal, got.Kind)
	assert.Equal(t, "internal server error", got.Message)
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", apperror.NotFound("no test result"))

	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.False(t, apperror.IsKind(err, apperror.KindConflict))
	assert.False(t, apperror.IsKind(errors.New("plain"), apperror.KindNotFound))
}
