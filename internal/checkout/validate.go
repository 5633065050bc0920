package checkout

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// MaxSelectableSeats caps how many seats a single booking form accepts.
// Run does not enforce it; group forms that collect one passenger per
// seat apply it before submitting.
const MaxSelectableSeats = 10

var validate = validator.New()

type emailCheck struct {
	Email string `validate:"required,email"`
}

// ValidateSeatCount rejects selections above MaxSelectableSeats.
func ValidateSeatCount(seats []string) error {
	if len(seats) > MaxSelectableSeats {
		return fmt.Errorf("cannot book more than %d seats at once", MaxSelectableSeats)
	}
	return nil
}

// validateRequest checks the passenger form in a fixed order so the
// user always sees the first problem: seats, then name, then email,
// then contact.
func validateRequest(req Request, seats []string) *Error {
	if len(seats) == 0 {
		return newFieldError("seats", "Please select at least one seat before checking out.")
	}
	if strings.TrimSpace(req.PassengerName) == "" {
		return newFieldError("passenger_name", "Passenger name is required.")
	}
	if err := validate.Struct(emailCheck{Email: req.Email}); err != nil {
		return newFieldError("email", "A valid email address is required.")
	}
	if countDigits(req.Contact) < 7 {
		return newFieldError("contact", "Contact number must contain at least 7 digits.")
	}
	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
