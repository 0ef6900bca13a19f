package entity

import (
	"fmt"
	"net/mail"
	"strings"
)

// maxEmailLength caps addresses at the SMTP limit to avoid absurd inputs.
const maxEmailLength = 254

// ValidateEmail validates the format of an email address.
// It requires a single bare address (no display name, no address list) with
// a non-empty domain part. Returns a ValidationError if the address is
// missing or malformed.
func ValidateEmail(address string) error {
	if address == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}

	if len(address) > maxEmailLength {
		return &ValidationError{
			Field:   "email",
			Message: fmt.Sprintf("email must not exceed %d characters", maxEmailLength),
		}
	}

	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return &ValidationError{Field: "email", Message: "email format is not valid"}
	}

	// mail.ParseAddress accepts display names ("A <a@b.c>"); only the bare
	// address form is valid here.
	if parsed.Address != address {
		return &ValidationError{Field: "email", Message: "email format is not valid"}
	}

	at := strings.LastIndex(address, "@")
	if at < 1 || !strings.Contains(address[at+1:], ".") {
		return &ValidationError{Field: "email", Message: "email format is not valid"}
	}

	return nil
}
