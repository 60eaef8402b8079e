package models

// SubmitPhoneRequest starts or restarts a verification session
type SubmitPhoneRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// ConfirmRoleRequest records the chosen role for a new account
type ConfirmRoleRequest struct {
	Phone string `json:"phone" validate:"required"`
	Role  Role   `json:"role" validate:"required"`
}

// VerifyCodeRequest checks the SMS code for a pending session
type VerifyCodeRequest struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// ResendRequest re-sends the OTP for a pending session
type ResendRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// BackRequest steps a pending session back one phase
type BackRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// AuthResponse represents the response after successful verification
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Role      Role   `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
	NewUser   bool   `json:"new_user"`
}
