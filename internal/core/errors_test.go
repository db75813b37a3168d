// AngelaMos | 2026
// errors_test.go

package core

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"wrapped not found", fmt.Errorf("get article: %w", ErrNotFound), CodeNotFound, http.StatusNotFound},
		{"duplicate", fmt.Errorf("create user: %w", ErrDuplicateKey), CodeBadUserInput, http.StatusBadRequest},
		{"invalid input", ErrInvalidInput, CodeBadUserInput, http.StatusBadRequest},
		{"token invalid", ErrTokenInvalid, CodeUnauthenticated, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, CodeUnauthorized, http.StatusForbidden},
		{"unknown", errors.New("connection reset"), CodeInternal, http.StatusInternalServerError},
		{"app error passthrough", NotFoundError("Article"), CodeNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := Classify(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.status, appErr.StatusCode)
		})
	}

	assert.Nil(t, Classify(nil))
}

func TestAppErrorExtensions(t *testing.T) {
	err := fmt.Errorf("resolver: %w", UnauthorizedError(""))

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"code": CodeUnauthorized}, appErr.Extensions())
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestInternalErrorMasksMessage(t *testing.T) {
	appErr := InternalError(errors.New("pq: relation does not exist"))
	assert.Equal(t, InternalErrorMessage, appErr.Message)
	assert.Contains(t, appErr.Error(), "relation does not exist")
}
