package auth

import (
	"context"

	"github.com/souqin/souqin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/souqin/souqin/services/auth AuthUC

// AuthUC represents the phone verification usecase interface
type AuthUC interface {
	// verification session state machine
	SubmitPhone(ctx context.Context, rawPhone string) (*models.SessionState, error)
	ConfirmRole(ctx context.Context, rawPhone string, role models.Role) (*models.SessionState, error)
	VerifyCode(ctx context.Context, rawPhone, code string) (*models.AuthResponse, error)
	Resend(ctx context.Context, rawPhone string) (*models.SessionState, error)
	Back(ctx context.Context, rawPhone string) (*models.SessionState, error)
	SessionState(ctx context.Context, rawPhone string) (*models.SessionState, error)

	// profile access for authenticated callers
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
}
