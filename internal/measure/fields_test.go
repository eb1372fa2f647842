package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
)

func fullAdultMen() map[string]float64 {
	return map[string]float64{
		"chest": 102, "waist": 86, "hips": 100, "shoulder": 46,
		"sleeve": 64, "length": 74, "neck": 40, "inseam": 81, "height": 180,
	}
}

func TestRequiredFields(t *testing.T) {
	men, err := RequiredFields(domain.GenderMen, domain.AgeGroupAdult)
	require.NoError(t, err)
	assert.Contains(t, men, "inseam")
	assert.NotContains(t, men, "age")

	women, err := RequiredFields(domain.GenderWomen, domain.AgeGroupAdult)
	require.NoError(t, err)
	assert.Contains(t, women, "bust")
	assert.NotContains(t, women, "inseam")

	girl, err := RequiredFields(domain.GenderWomen, domain.AgeGroupChild)
	require.NoError(t, err)
	assert.Contains(t, girl, "age")
	assert.NotContains(t, girl, "inseam")

	_, err = RequiredFields("other", domain.AgeGroupAdult)
	assert.Error(t, err)
}

func TestValidate_Complete(t *testing.T) {
	err := Validate(domain.GenderMen, domain.AgeGroupAdult, fullAdultMen())
	assert.NoError(t, err)
}

func TestValidate_MissingField(t *testing.T) {
	values := fullAdultMen()
	delete(values, "neck")

	err := Validate(domain.GenderMen, domain.AgeGroupAdult, values)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 1)
	assert.Equal(t, "neck", ve.Details[0].Field)
}

func TestValidate_Boundaries(t *testing.T) {
	values := fullAdultMen()

	values["waist"] = 0
	err := Validate(domain.GenderMen, domain.AgeGroupAdult, values)
	assert.Error(t, err, "zero is rejected")

	values["waist"] = -3
	err = Validate(domain.GenderMen, domain.AgeGroupAdult, values)
	assert.Error(t, err, "negative is rejected")

	values["waist"] = 0.1
	err = Validate(domain.GenderMen, domain.AgeGroupAdult, values)
	assert.NoError(t, err, "any strictly positive value is accepted")
}

func TestValidate_UnknownField(t *testing.T) {
	values := fullAdultMen()
	values["wingspan"] = 190

	err := Validate(domain.GenderMen, domain.AgeGroupAdult, values)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 1)
	assert.Equal(t, "wingspan", ve.Details[0].Field)
}
