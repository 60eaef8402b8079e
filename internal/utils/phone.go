package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// saudiPattern matches a KSA mobile number in E.164 form: +966 then a digit
// 5-9 and 8 more digits.
var saudiPattern = regexp.MustCompile(`^\+966[5-9]\d{8}$`)

var digitsOnly = regexp.MustCompile(`\D`)

// NormalizePhone normalizes a raw phone input to E.164, defaulting to the
// KSA country code. Accepted inputs for the same number:
// 0501234567, 966501234567, 00966501234567, +966501234567.
// Numbers already carrying another country code pass through with a minimum
// length check only.
func NormalizePhone(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	digits := digitsOnly.ReplaceAllString(trimmed, "")

	if len(digits) < 7 {
		return "", fmt.Errorf("phone number too short")
	}

	var formatted string
	switch {
	case strings.HasPrefix(trimmed, "+"):
		if strings.HasPrefix(digits, "966") {
			formatted = "+966" + stripLeadingZero(digits[3:])
		} else {
			// Other country codes are passed through unvalidated
			return "+" + digits, nil
		}
	case strings.HasPrefix(digits, "00"):
		return NormalizePhone("+" + digits[2:])
	case strings.HasPrefix(digits, "966"):
		formatted = "+966" + stripLeadingZero(digits[3:])
	case strings.HasPrefix(digits, "0"):
		formatted = "+966" + digits[1:]
	default:
		formatted = "+966" + digits
	}

	if !saudiPattern.MatchString(formatted) {
		return "", fmt.Errorf("invalid KSA mobile number: %s", formatted)
	}

	return formatted, nil
}

func stripLeadingZero(national string) string {
	if strings.HasPrefix(national, "0") {
		return national[1:]
	}
	return national
}

// IsValidCode reports whether the input is exactly six digits.
func IsValidCode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MaskPhone hides the middle digits of a phone number for log output.
func MaskPhone(phone string) string {
	if len(phone) < 8 {
		return phone
	}
	return phone[:5] + strings.Repeat("*", len(phone)-8) + phone[len(phone)-3:]
}
