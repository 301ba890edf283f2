package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesClass(t *testing.T) {
	assert.True(t, errors.Is(ErrSellerNotAllowed, ErrForbidden))
	assert.True(t, errors.Is(ErrInvalidToken, ErrForbidden))
	assert.True(t, errors.Is(ErrDuplicateReview, ErrConflict))
	assert.True(t, errors.Is(ErrUserNotFound, ErrNotFound))

	assert.False(t, errors.Is(ErrSellerNotAllowed, ErrNotOwner))
	assert.False(t, errors.Is(ErrDuplicateReview, ErrForbidden))
	assert.False(t, errors.Is(ErrForbidden, ErrSellerNotAllowed))
}

func TestError_IsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create review: %w", ErrDuplicateReview)

	assert.True(t, errors.Is(err, ErrDuplicateReview))
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestError_Status(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{ErrCredentialsRequired, http.StatusBadRequest},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrBadCredentials, http.StatusBadRequest},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrInvalidToken, http.StatusForbidden},
		{ErrUsernameTaken, http.StatusConflict},
		{ErrDuplicateReview, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.err.Code, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Status())
		})
	}
}

func TestError_WithMessage(t *testing.T) {
	err := ErrInvalidInput.WithMessage("validation failed: star: Minimum value is 1")

	assert.Equal(t, "validation failed: star: Minimum value is 1", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "invalid input", ErrInvalidInput.Error())
}

func TestKindOf_System(t *testing.T) {
	assert.Equal(t, KindSystem, KindOf(errors.New("connection reset")))
	assert.Equal(t, http.StatusInternalServerError, KindSystem.Status())
}
