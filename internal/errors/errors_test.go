package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "design-studio-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundSentinels(t *testing.T) {
	wrapped := fmt.Errorf("loading room: %w", apperrors.ErrRoomNotFound)

	assert.True(t, errors.Is(wrapped, apperrors.ErrRoomNotFound))
	assert.False(t, errors.Is(wrapped, apperrors.ErrSectionNotFound))
	assert.True(t, apperrors.IsNotFound(wrapped))
	assert.Equal(t, "room not found", apperrors.ErrRoomNotFound.Error())
}

func TestInvalidReference(t *testing.T) {
	wrapped := fmt.Errorf("moving room: %w", apperrors.ErrSectionWrongProject)

	assert.True(t, errors.Is(wrapped, apperrors.ErrSectionWrongProject))
	assert.True(t, apperrors.IsInvalidReference(wrapped))
	assert.False(t, apperrors.IsNotFound(wrapped))
	assert.Contains(t, apperrors.ErrSectionWrongProject.Error(), "different project")
}

func TestNotEmptyError(t *testing.T) {
	err := apperrors.NewNotEmptyError("section", 3)
	wrapped := fmt.Errorf("deleting section: %w", err)

	assert.True(t, apperrors.IsNotEmpty(wrapped))

	notEmpty, ok := apperrors.AsNotEmpty(wrapped)
	require.True(t, ok)
	assert.Equal(t, int64(3), notEmpty.Count)
	assert.Contains(t, notEmpty.Error(), "3 room(s)")

	_, ok = apperrors.AsNotEmpty(errors.New("unrelated"))
	assert.False(t, ok)
}

func TestPartialFailureError(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewPartialFailureError("room reorder swap", cause)

	assert.True(t, apperrors.IsPartialFailure(err))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "room reorder swap")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestIsValidation(t *testing.T) {
	t.Run("app validation error", func(t *testing.T) {
		err := apperrors.NewValidationError("name", "must not be empty or whitespace")
		assert.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("wrapped struct tag failure", func(t *testing.T) {
		type payload struct {
			Name string `validate:"required"`
		}
		err := validator.New().Struct(payload{})
		require.Error(t, err)

		wrapped := fmt.Errorf("validation failed: %w", err)
		assert.True(t, apperrors.IsValidation(wrapped))
	})

	t.Run("unrelated error", func(t *testing.T) {
		assert.False(t, apperrors.IsValidation(errors.New("boom")))
	})
}

func TestAlreadyExists(t *testing.T) {
	wrapped := fmt.Errorf("assigning contractor: %w", apperrors.ErrContractorAlreadyAssigned)

	assert.True(t, errors.Is(wrapped, apperrors.ErrContractorAlreadyAssigned))
	assert.True(t, apperrors.IsAlreadyExists(wrapped))
	assert.Contains(t, apperrors.ErrContractorAlreadyAssigned.Error(), "already exists")
}
