// Package measure defines which body measurements a custom-sized garment
// requires for a given wearer, and validates submitted values against that
// table.
package measure

import (
	"fmt"
	"sort"

	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
)

type variant struct {
	Gender   domain.Gender
	AgeGroup domain.AgeGroup
}

// fieldTable lists the required measurement fields per gender and age group.
// Inseam applies to adult men only; children report their age instead.
var fieldTable = map[variant][]string{
	{domain.GenderMen, domain.AgeGroupAdult}:   {"chest", "waist", "hips", "shoulder", "sleeve", "length", "neck", "inseam", "height"},
	{domain.GenderWomen, domain.AgeGroupAdult}: {"bust", "waist", "hips", "shoulder", "sleeve", "length", "neck", "height"},
	{domain.GenderMen, domain.AgeGroupChild}:   {"chest", "waist", "hips", "shoulder", "sleeve", "length", "neck", "height", "age"},
	{domain.GenderWomen, domain.AgeGroupChild}: {"bust", "waist", "hips", "shoulder", "sleeve", "length", "neck", "height", "age"},
}

// RequiredFields returns the measurement field names for the given wearer,
// in display order. The returned slice is a copy.
func RequiredFields(gender domain.Gender, ageGroup domain.AgeGroup) ([]string, error) {
	fields, ok := fieldTable[variant{gender, ageGroup}]
	if !ok {
		return nil, fmt.Errorf("no measurement table for gender %q age group %q", gender, ageGroup)
	}
	out := make([]string, len(fields))
	copy(out, fields)
	return out, nil
}

// Validate checks a full custom measurement set: every required field must be
// present and strictly positive, and no unknown fields are accepted. On
// failure it returns a ValidationError carrying one detail per bad field.
func Validate(gender domain.Gender, ageGroup domain.AgeGroup, values map[string]float64) error {
	required, err := RequiredFields(gender, ageGroup)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	var details []apperrors.ValidationDetail

	requiredSet := make(map[string]struct{}, len(required))
	for _, field := range required {
		requiredSet[field] = struct{}{}
		v, ok := values[field]
		if !ok {
			details = append(details, apperrors.ValidationDetail{
				Field:   field,
				Message: field + " is required",
			})
			continue
		}
		if v <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   field,
				Message: field + " must be greater than 0",
			})
		}
	}

	var unknown []string
	for field := range values {
		if _, ok := requiredSet[field]; !ok {
			unknown = append(unknown, field)
		}
	}
	sort.Strings(unknown)
	for _, field := range unknown {
		details = append(details, apperrors.ValidationDetail{
			Field:   field,
			Message: field + " is not a recognized measurement",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid measurements", details...)
	}
	return nil
}
