package order

import (
	"regexp"
	"strings"

	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
	"github.com/Usmantahir0707/Luxe-Bags/internal/phone"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks a draft's customer and shipping fields and returns a
// field-keyed error map. Submission is blocked while any key is present.
// Validation failures are values, never errors.
func Validate(draft domain.OrderDraft) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(draft.CustomerName) == "" {
		errs["customerName"] = "Name is required"
	}

	email := strings.TrimSpace(draft.CustomerEmail)
	if email == "" {
		errs["customerEmail"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs["customerEmail"] = "Enter a valid email address"
	}

	number := strings.TrimSpace(draft.CustomerPhone)
	if number == "" {
		errs["customerPhone"] = "Phone number is required"
	} else if !phone.Valid(number) {
		errs["customerPhone"] = "Phone number must include country code"
	}

	if strings.TrimSpace(draft.ShippingAddress.Line1) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(draft.ShippingAddress.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(draft.ShippingAddress.PostalCode) == "" {
		errs["postalCode"] = "Postal code is required"
	}

	return errs
}
