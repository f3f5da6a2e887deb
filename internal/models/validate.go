package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterValidation("role", validateRole)
	v.RegisterValidation("location", validateLocation)
	v.RegisterValidation("iso8601", validateISO8601)

	return v
}

// Validate checks a request or response model against its declared rules.
// Used by tests as the structural gate on deserialized responses.
func Validate(model any) error {
	return validate.Struct(model)
}

func validateRole(fl validator.FieldLevel) bool {
	role, ok := fl.Field().Interface().(Role)
	if !ok {
		return false
	}

	return role == RoleUser || role == RoleAdmin || role == RoleSuperAdmin
}

func validateLocation(fl validator.FieldLevel) bool {
	loc, ok := fl.Field().Interface().(Location)
	if !ok {
		return false
	}

	return loc == LocationMSK || loc == LocationSPB
}

// validateISO8601 accepts the timestamp layouts the backend emits: RFC 3339
// with or without fractional seconds, and the zone-less variant.
func validateISO8601(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}

	return false
}
