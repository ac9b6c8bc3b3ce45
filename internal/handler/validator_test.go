package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedRequest struct {
	UserID   string `validate:"required"`
	Name     string `validate:"required,max=100"`
	Quality  string `validate:"omitempty,quality"`
	Notes    string `validate:"max=10"`
	Password string `validate:"min=8"`
}

func TestValidateStruct(t *testing.T) {
	v := GetValidator()

	t.Run("valid struct passes", func(t *testing.T) {
		err := v.ValidateStruct(validatedRequest{
			UserID:   "user1",
			Name:     "Water Flask",
			Quality:  "enchanted",
			Password: "longenough",
		})
		assert.NoError(t, err)
	})

	t.Run("unknown quality fails", func(t *testing.T) {
		err := v.ValidateStruct(validatedRequest{
			UserID:   "user1",
			Name:     "Water Flask",
			Quality:  "mythic",
			Password: "longenough",
		})
		assert.Error(t, err)
	})

	t.Run("empty quality is allowed", func(t *testing.T) {
		err := v.ValidateStruct(validatedRequest{
			UserID:   "user1",
			Name:     "Water Flask",
			Password: "longenough",
		})
		assert.NoError(t, err)
	})
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("non-validator error gets generic message", func(t *testing.T) {
		errs := FormatValidationError(errors.New("boom"))
		assert.Equal(t, map[string]string{"error": "Invalid request format"}, errs)
	})

	t.Run("required field", func(t *testing.T) {
		err := v.ValidateStruct(validatedRequest{Name: "Water Flask", Password: "longenough"})
		require.Error(t, err)

		errs := FormatValidationError(err)
		assert.Equal(t, "This field is required", errs["userid"])
	})

	t.Run("quality field", func(t *testing.T) {
		err := v.ValidateStruct(validatedRequest{
			UserID:   "user1",
			Name:     "Water Flask",
			Quality:  "mythic",
			Password: "longenough",
		})
		require.Error(t, err)

		errs := FormatValidationError(err)
		assert.Equal(t, "Invalid quality; use raw, enchanted, or legendary", errs["quality"])
	})

	t.Run("max and min lengths", func(t *testing.T) {
		err := v.ValidateStruct(validatedRequest{
			UserID:   "user1",
			Name:     "Water Flask",
			Notes:    "this is far too long",
			Password: "short",
		})
		require.Error(t, err)

		errs := FormatValidationError(err)
		assert.Equal(t, "Must be at most 10 characters", errs["notes"])
		assert.Equal(t, "Must be at least 8 characters", errs["password"])
	})
}
