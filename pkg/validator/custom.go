package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/Icer178/traffic-val/internal/domain"
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("violation_type", validateViolationType)
	validate.RegisterValidation("violation_status", validateViolationStatus)
	validate.RegisterValidation("role", validateRole)
}

func validateViolationType(fl validator.FieldLevel) bool {
	_, err := domain.ParseViolationType(fl.Field().String())
	return err == nil
}

func validateViolationStatus(fl validator.FieldLevel) bool {
	_, err := domain.ParseViolationStatus(fl.Field().String())
	return err == nil
}

func validateRole(fl validator.FieldLevel) bool {
	_, err := domain.ParseRole(fl.Field().String())
	return err == nil
}
