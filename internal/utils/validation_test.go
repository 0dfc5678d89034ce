package utils

import (
	"testing"

	"experio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest(t *testing.T) {
	valid := &models.BookingRequest{
		ExperienceID:  "665f1e9b2c8f4a0012345678",
		SlotID:        "665f1e9b2c8f4a0012345679",
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		Quantity:      2,
	}
	assert.NoError(t, ValidateRequest(valid))

	missing := &models.BookingRequest{
		SlotID:        valid.SlotID,
		CustomerName:  valid.CustomerName,
		CustomerEmail: valid.CustomerEmail,
		Quantity:      1,
	}
	err := ValidateRequest(missing)
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindMissingField, models.KindOf(err))
	assert.Contains(t, err.Error(), "experience_id")

	badEmail := &models.BookingRequest{
		ExperienceID:  valid.ExperienceID,
		SlotID:        valid.SlotID,
		CustomerName:  valid.CustomerName,
		CustomerEmail: "nope",
		Quantity:      1,
	}
	err = ValidateRequest(badEmail)
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindMissingField, models.KindOf(err))
	assert.Contains(t, err.Error(), "email")
}
