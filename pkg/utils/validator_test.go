package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sistem-HR-Karyawan/models"
)

func validRegisterPayload() models.EmployeeRegisterPayload {
	return models.EmployeeRegisterPayload{
		Name:        "Budi",
		LastName:    "Santoso",
		Email:       "budi@example.com",
		Password:    "RahasiaBanget123",
		Position:    "Developer",
		Department:  "Engineering",
		Manager:     "Siti",
		JobTitle:    "Backend Engineer",
		JobCategory: "Engineering",
		Salary:      7500000,
	}
}

func TestValidateRegisterPayloadValid(t *testing.T) {
	errs := ValidateStruct(validRegisterPayload())
	assert.Nil(t, errs)
}

func TestValidateRegisterPayloadMissingFields(t *testing.T) {
	payload := validRegisterPayload()
	payload.Email = ""
	payload.Manager = ""

	errs := ValidateStruct(payload)
	require.NotNil(t, errs)

	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["Email"])
	assert.True(t, fields["Manager"])
}

func TestValidateRegisterPayloadInvalidPosition(t *testing.T) {
	payload := validRegisterPayload()
	payload.Position = "Raja"

	errs := ValidateStruct(payload)
	require.NotNil(t, errs)
	assert.Equal(t, "oneof", errs[0].Tag)
}

func TestValidatePasswordNeedsUppercase(t *testing.T) {
	payload := validRegisterPayload()
	payload.Password = "semuanyahurufkecil1"

	errs := ValidateStruct(payload)
	require.NotNil(t, errs)
	assert.Equal(t, "hasuppercase", errs[0].Tag)
}

func TestValidateClockInPayload(t *testing.T) {
	assert.Nil(t, ValidateStruct(models.ClockInPayload{}))
	assert.Nil(t, ValidateStruct(models.ClockInPayload{WorkLocation: "office"}))
	assert.Nil(t, ValidateStruct(models.ClockInPayload{WorkLocation: "work_from_home"}))
	assert.NotNil(t, ValidateStruct(models.ClockInPayload{WorkLocation: "pantai"}))
}

func TestGenerateBase64Key(t *testing.T) {
	key, err := GenerateBase64Key(32)
	require.NoError(t, err)
	assert.NotEmpty(t, key)

	_, err = GenerateBase64Key(16)
	assert.Error(t, err)
}
