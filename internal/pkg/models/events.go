package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileReconcileEvent is published after a successful verification so the
// profiles worker can sync the secondary directory store. Delivery is
// at-least-once; consumers must be idempotent on ProfileID.
type ProfileReconcileEvent struct {
	ProfileID  uuid.UUID `json:"profile_id"`
	Phone      string    `json:"phone"`
	FullName   string    `json:"full_name"`
	Role       Role      `json:"role"`
	NewUser    bool      `json:"new_user"`
	VerifiedAt time.Time `json:"verified_at"`
}
