package profiles

import (
	"context"

	"github.com/souqin/souqin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/souqin/souqin/services/profiles ProfilesUC

// ProfilesUC represents the profile reconciliation usecase interface
type ProfilesUC interface {
	Reconcile(ctx context.Context, event *models.ProfileReconcileEvent) error
}
