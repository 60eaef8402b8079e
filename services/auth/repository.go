package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/souqin/souqin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/souqin/souqin/services/auth ProfileRepo,SessionRepo

// ProfileRepo defines access to the primary profile store
type ProfileRepo interface {
	GetProfileByPhone(ctx context.Context, phone string) (*models.Profile, error)
	GetProfileByID(ctx context.Context, id string) (*models.Profile, error)
	CreateProfile(ctx context.Context, profile *models.Profile) error
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

// SessionRepo defines access to the verification session and cooldown store
type SessionRepo interface {
	GetSession(ctx context.Context, phone string) (*models.VerificationSession, error)
	SaveSession(ctx context.Context, session *models.VerificationSession) error
	DeleteSession(ctx context.Context, phone string) error

	SetCooldown(ctx context.Context, phone string, d time.Duration) error
	CooldownRemaining(ctx context.Context, phone string) (time.Duration, error)
}
