package validator

import (
	"log"

	"github.com/hello383/Sway/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule failing to register is a startup bug.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-visibility-tier': the value normalizes to a known tier. Empty
	// passes; pair with 'required' when the tier is mandatory.
	mustRegister("is-visibility-tier", validateVisibilityTier)
}

func validateVisibilityTier(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.NormalizeVisibility(value) != models.VisibilityUnset
}
