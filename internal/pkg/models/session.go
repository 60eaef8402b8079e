package models

import (
	"time"
)

// Phase is the current step of a verification session.
type Phase string

const (
	PhasePhoneEntry    Phase = "phone_entry"
	PhaseRoleSelection Phase = "role_selection"
	PhaseCodeEntry     Phase = "code_entry"
)

// VerificationSession tracks one phone sign-in/sign-up flow from phone entry
// to code verification. It lives in Redis keyed by the normalized phone and
// is deleted on successful verification.
type VerificationSession struct {
	Phone              string    `json:"phone"`
	Phase              Phase     `json:"phase"`
	SelectedRole       Role      `json:"selected_role,omitempty"`
	IsExistingUser     bool      `json:"is_existing_user"`
	ConfirmationHandle string    `json:"confirmation_handle,omitempty"`
	Attempts           int       `json:"attempts"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SessionState is the client-facing view of a verification session.
type SessionState struct {
	Phone           string `json:"phone"`
	Phase           Phase  `json:"phase"`
	SelectedRole    Role   `json:"selected_role,omitempty"`
	IsExistingUser  bool   `json:"is_existing_user"`
	CooldownSeconds int    `json:"cooldown_seconds"`
}
