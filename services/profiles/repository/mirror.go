package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/souqin/souqin/internal/pkg/models"
	"github.com/souqin/souqin/services/auth"
)

// UpsertMirror writes a profile row into the directory mirror. The insert is
// keyed on the profile ID so replayed events converge on the same row.
func (r *MirrorRepo) UpsertMirror(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO directory_profiles (id, phone, full_name, role,
			is_active, created_at, updated_at, last_login_at
		) VALUES (:id, :phone, :full_name, :role,
			:is_active, :created_at, :updated_at, :last_login_at)
		ON CONFLICT (id) DO UPDATE SET
			phone = EXCLUDED.phone,
			full_name = EXCLUDED.full_name,
			role = EXCLUDED.role,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at,
			last_login_at = EXCLUDED.last_login_at
	`

	_, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		return fmt.Errorf("failed to upsert mirror profile: %w", err)
	}

	return nil
}

// GetMirrorByID retrieves a mirrored profile by its ID
func (r *MirrorRepo) GetMirrorByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT id, phone, full_name, role, is_active, created_at, updated_at, last_login_at
		FROM directory_profiles
		WHERE id = $1
	`

	var profile models.Profile
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get mirror profile: %w", err)
	}

	return &profile, nil
}
