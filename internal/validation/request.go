package validation

import (
	"strings"

	"github.com/bangohan/kondate/internal/errors"
)

// Cuisines is the fixed set of selectable cuisine genres.
var Cuisines = []string{
	"Japanese",
	"Western",
	"Chinese",
	"Italian",
	"Mexican",
	"Korean",
	"Indian",
	"Other",
}

// IsValidCuisine reports whether the value is one of the selectable genres.
func IsValidCuisine(cuisine string) bool {
	for _, c := range Cuisines {
		if c == cuisine {
			return true
		}
	}
	return false
}

// ValidateDinnerRequest checks a submission before any remote call is made.
// At least one ingredient must be non-blank and the cuisine must be one of
// the fixed genres.
func ValidateDinnerRequest(ingredients [3]string, cuisine string) *errors.AppError {
	provided := false
	for _, ing := range ingredients {
		if strings.TrimSpace(ing) != "" {
			provided = true
			break
		}
	}
	if !provided {
		return errors.NewValidationError(
			"at least one ingredient is required",
			"NO_INGREDIENTS",
			"Enter at least one ingredient, e.g. something from the fridge.",
		)
	}

	if !IsValidCuisine(cuisine) {
		return errors.NewValidationError(
			"unknown cuisine genre: "+cuisine,
			"INVALID_CUISINE",
			"Pick one of: "+strings.Join(Cuisines, ", ")+".",
		)
	}

	return nil
}
