package checkout

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
)

var validate = validator.New()

func validateCustomerInfo(info domain.CustomerInfo) error {
	err := validate.Struct(info)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return apperrors.NewValidationError("customer info is invalid", apperrors.ValidationDetail{
			Field:   "customer",
			Message: "customer info is invalid",
		})
	}

	details := make([]apperrors.ValidationDetail, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		details = append(details, apperrors.ValidationDetail{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return apperrors.NewValidationError("customer info is invalid", details...)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "email must be a valid address"
	case "min":
		return "phone must have at least 10 digits"
	default:
		return fe.Field() + " is invalid"
	}
}
