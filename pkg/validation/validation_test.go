package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "blooddonor/pkg/errors"
)

type sample struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"notblank"`
	Note  string `json:"note"`
}

func TestStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Struct(sample{Name: "a", Email: "b"}))
	})

	t.Run("whitespace counts as blank", func(t *testing.T) {
		err := Struct(sample{Name: "   ", Email: "\t"})
		require.Error(t, err)

		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeValidation, appErr.Code)
		assert.Equal(t, 400, appErr.Status)
		assert.Equal(t, []string{"name", "email"}, appErr.Fields)
		assert.Equal(t, "All fields are required: name, email", appErr.Message)
	})
}
