package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/souqin/souqin/internal/pkg/logger"
	"github.com/souqin/souqin/internal/pkg/models"
	"github.com/souqin/souqin/internal/utils"
)

// Reconcile syncs one verified profile into the directory mirror. Events
// arrive at least once, so the write is an idempotent upsert keyed on the
// profile ID; replays simply rewrite the same row.
func (u *ProfilesUC) Reconcile(ctx context.Context, event *models.ProfileReconcileEvent) error {
	profile := &models.Profile{
		ID:        event.ProfileID,
		Phone:     event.Phone,
		FullName:  event.FullName,
		Role:      event.Role,
		IsActive:  true,
		UpdatedAt: event.VerifiedAt,
	}
	if event.NewUser {
		profile.CreatedAt = event.VerifiedAt
	}
	lastLogin := event.VerifiedAt
	profile.LastLoginAt = &lastLogin

	start := time.Now()
	err := u.retrier.Execute(ctx, func(ctx context.Context) error {
		return u.mirrorRepo.UpsertMirror(ctx, profile)
	})
	if err != nil {
		return fmt.Errorf("failed to reconcile profile %s: %w", event.ProfileID, err)
	}

	logger.InfoCtx(ctx, "Profile mirror reconciled",
		logger.String("profile_id", event.ProfileID.String()),
		logger.String("phone", utils.MaskPhone(event.Phone)),
		logger.Bool("new_user", event.NewUser),
		logger.Duration("took", time.Since(start)))

	return nil
}
