package wholesaler

import (
	"regexp"
	"strings"

	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
)

var (
	emailRe   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	pincodeRe = regexp.MustCompile(`^\d{5,6}$`)
)

// Validate applies the supplier business rules and reports only the first
// failure, in declaration order.
func Validate(input Input) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "Name is required")
	}
	if strings.TrimSpace(input.Area) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "Area is required")
	}
	if strings.TrimSpace(input.City) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "City is required")
	}
	if input.Email != nil && strings.TrimSpace(*input.Email) != "" && !emailRe.MatchString(strings.TrimSpace(*input.Email)) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Invalid email address")
	}
	if input.Pincode != nil && strings.TrimSpace(*input.Pincode) != "" && !pincodeRe.MatchString(strings.TrimSpace(*input.Pincode)) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Pincode must be 5 or 6 digits")
	}
	return nil
}
