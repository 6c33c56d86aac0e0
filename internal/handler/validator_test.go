package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	type sample struct {
		UserID string `validate:"required,uuid"`
		Amount int64  `validate:"required,gt=0"`
	}

	v := GetValidator()

	t.Run("Valid", func(t *testing.T) {
		err := v.ValidateStruct(sample{
			UserID: "00000000-0000-0000-0000-000000000001",
			Amount: 100,
		})
		assert.NoError(t, err)
	})

	t.Run("Invalid uuid", func(t *testing.T) {
		err := v.ValidateStruct(sample{UserID: "nope", Amount: 100})
		assert.Error(t, err)
	})

	t.Run("Missing amount", func(t *testing.T) {
		err := v.ValidateStruct(sample{UserID: "00000000-0000-0000-0000-000000000001"})
		assert.Error(t, err)
	})
}

func TestFormatValidationError(t *testing.T) {
	type sample struct {
		UserID string `validate:"required"`
		Amount int64  `validate:"gt=0"`
	}

	err := GetValidator().ValidateStruct(sample{Amount: -5})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["userid"])
	assert.Contains(t, fields["amount"], "greater than")
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	fields := FormatValidationError(assert.AnError)
	assert.Equal(t, "Invalid request format", fields["error"])
}

func TestFormatValidationError_Nil(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
}
