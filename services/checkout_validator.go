package services

import (
	"regexp"
	"strings"

	"github.com/jdjewellers/storefront-backend/config"
)

// CheckoutForm carries the customer-supplied order fields. The flat
// deployment uses Address only; the split deployment uses the
// street/city/district/state/PIN fields instead.
type CheckoutForm struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	Address string `json:"address"`

	Street   string `json:"street"`
	City     string `json:"city"`
	District string `json:"district"`
	State    string `json:"state"`
	PIN      string `json:"pin"`
}

var (
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
	pinRegex   = regexp.MustCompile(`^[0-9]{6}$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateCheckout checks the form against the deployment's rules and
// returns a map from field name to the first violated rule's message.
// An empty map means the form is valid.
func ValidateCheckout(form CheckoutForm, addressMode string) map[string]string {
	errs := map[string]string{}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		errs["name"] = "Name is required"
	} else if len(name) > 100 {
		errs["name"] = "Name is too long"
	}

	if !phoneRegex.MatchString(strings.TrimSpace(form.Phone)) {
		errs["phone"] = "Please enter a valid 10-digit phone number"
	}

	email := strings.TrimSpace(form.Email)
	if email != "" {
		if len(email) > 255 || !emailRegex.MatchString(email) {
			errs["email"] = "Please enter a valid email"
		}
	}

	if addressMode == config.AddressModeSplit {
		validateSplitAddress(form, errs)
	} else {
		address := strings.TrimSpace(form.Address)
		if len(address) < 10 {
			errs["address"] = "Please enter a complete address"
		} else if len(address) > 500 {
			errs["address"] = "Address is too long"
		}
	}

	return errs
}

func validateSplitAddress(form CheckoutForm, errs map[string]string) {
	street := strings.TrimSpace(form.Street)
	if len(street) < 5 {
		errs["street"] = "Please enter a complete street address"
	} else if len(street) > 200 {
		errs["street"] = "Street address is too long"
	}

	for field, value := range map[string]string{
		"city":     form.City,
		"district": form.District,
		"state":    form.State,
	} {
		v := strings.TrimSpace(value)
		if len(v) < 2 {
			errs[field] = "This field is required"
		} else if len(v) > 50 {
			errs[field] = "This field is too long"
		}
	}

	if !pinRegex.MatchString(strings.TrimSpace(form.PIN)) {
		errs["pin"] = "Please enter a valid 6-digit PIN code"
	}
}

// FlatAddress joins the split fields into the single address string
// stored on the order, or returns the flat field unchanged.
func (f CheckoutForm) FlatAddress(addressMode string) string {
	if addressMode != config.AddressModeSplit {
		return strings.TrimSpace(f.Address)
	}
	parts := []string{
		strings.TrimSpace(f.Street),
		strings.TrimSpace(f.City),
		strings.TrimSpace(f.District),
		strings.TrimSpace(f.State),
		strings.TrimSpace(f.PIN),
	}
	return strings.Join(parts, ", ")
}
