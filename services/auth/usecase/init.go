package usecase

import (
	"context"

	"github.com/souqin/souqin/internal/pkg/models"
	"github.com/souqin/souqin/services/auth"
	"github.com/souqin/souqin/services/auth/challenge"
)

// ChallengeManager is the slice of the challenge lifecycle the usecase
// needs: acquiring a live instance before a send, reporting a proof the
// provider refused, and tearing the instance down after a finished flow.
type ChallengeManager interface {
	Initialize(ctx context.Context, forceReset bool) (challenge.Instance, error)
	NotifyExpired()
	Cleanup()
}

type AuthUC struct {
	profileRepo  auth.ProfileRepo
	sessionRepo  auth.SessionRepo
	authGW       auth.AuthGW
	challengeMgr ChallengeManager
	cfg          *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	profileRepo auth.ProfileRepo,
	sessionRepo auth.SessionRepo,
	authGW auth.AuthGW,
	challengeMgr ChallengeManager,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		profileRepo:  profileRepo,
		sessionRepo:  sessionRepo,
		authGW:       authGW,
		challengeMgr: challengeMgr,
		cfg:          cfg,
	}
}
