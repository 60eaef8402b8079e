package profiles

import (
	"context"

	"github.com/google/uuid"
	"github.com/souqin/souqin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/souqin/souqin/services/profiles MirrorRepo

// MirrorRepo defines access to the secondary profile directory store
type MirrorRepo interface {
	UpsertMirror(ctx context.Context, profile *models.Profile) error
	GetMirrorByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}
