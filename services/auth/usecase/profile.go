package usecase

import (
	"context"

	"github.com/souqin/souqin/internal/pkg/models"
)

// GetProfile returns the profile for an authenticated caller.
func (u *AuthUC) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	return u.profileRepo.GetProfileByID(ctx, id)
}
