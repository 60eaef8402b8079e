package usecase

import (
	"github.com/souqin/souqin/internal/pkg/models"
	"github.com/souqin/souqin/internal/pkg/retry"
	"github.com/souqin/souqin/services/profiles"
)

type ProfilesUC struct {
	mirrorRepo profiles.MirrorRepo
	retrier    *retry.Retrier
	cfg        *models.Config
}

// NewProfilesUC creates a new profiles usecase instance
func NewProfilesUC(mirrorRepo profiles.MirrorRepo, cfg *models.Config) *ProfilesUC {
	return &ProfilesUC{
		mirrorRepo: mirrorRepo,
		retrier:    retry.NewWithDefaults(),
		cfg:        cfg,
	}
}
