package auth

import (
	"errors"
	"fmt"
)

// Input validation errors, rejected before any provider call
var (
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrInvalidCodeFormat = errors.New("verification code must be six digits")
	ErrInvalidRole       = errors.New("role must be affiliate or merchant")
)

// Session state errors
var (
	ErrNoPendingVerification = errors.New("no pending verification for this phone")
	ErrWrongPhase            = errors.New("operation not valid in the current phase")
	ErrTooManyAttempts       = errors.New("too many verification attempts, request a new code")
)

// Provider errors surfaced by the SMS gateway
var (
	ErrProviderInvalidPhone = errors.New("provider rejected the phone number")
	ErrInsufficientBalance  = errors.New("sms balance exhausted")
	ErrCodeMismatch         = errors.New("invalid verification code")
	ErrCodeExpired          = errors.New("verification code expired")
	ErrChallengeUnavailable = errors.New("challenge verification unavailable")
	ErrChallengeRejected    = errors.New("provider rejected the challenge proof")
	ErrProfileNotFound      = errors.New("profile not found")
)

// CooldownError is returned when a send is requested while the resend
// cooldown is still running. Seconds carries the remaining wait.
type CooldownError struct {
	Seconds int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("resend cooldown active: %d seconds remaining", e.Seconds)
}

// RateLimitError is returned when the provider throttles a send. RetryAfter
// carries the provider-supplied wait hint in seconds, zero when absent.
type RateLimitError struct {
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("provider rate limit: retry after %d seconds", e.RetryAfter)
}
