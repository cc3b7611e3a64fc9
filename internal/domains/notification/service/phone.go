package service

import (
	"strings"

	"lodge/shared/failure"
)

const localNumberLength = 10

// NormalizePhone canonicalizes a phone number to international form.
// Separators are stripped; a bare 10-digit local number gets the configured
// country code prefix; numbers already carrying a + prefix pass through.
func NormalizePhone(phone, countryCode string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		default:
			return r
		}
	}, phone)

	if cleaned == "" {
		return "", failure.BadRequestFromString("phone number is required") //nolint:wrapcheck
	}

	international := strings.HasPrefix(cleaned, "+")

	digits := cleaned
	if international {
		digits = cleaned[1:]
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", failure.BadRequestFromString("phone number contains invalid characters") //nolint:wrapcheck
		}
	}

	if international {
		return cleaned, nil
	}

	if len(digits) != localNumberLength {
		return "", failure.BadRequestFromString("local phone numbers must have 10 digits") //nolint:wrapcheck
	}

	return countryCode + digits, nil
}
