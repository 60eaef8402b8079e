package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/souqin/souqin/internal/pkg/models"
	"github.com/souqin/souqin/services/auth"
)

// GetProfileByPhone retrieves a profile by its normalized phone number
func (r *ProfileRepo) GetProfileByPhone(ctx context.Context, phone string) (*models.Profile, error) {
	query := `
		SELECT id, phone, full_name, role, is_active, created_at, updated_at, last_login_at
		FROM profiles
		WHERE phone = $1
	`

	var profile models.Profile
	err := r.db.GetContext(ctx, &profile, query, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// GetProfileByID retrieves a profile by its ID
func (r *ProfileRepo) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	profileID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid profile ID: %w", err)
	}

	query := `
		SELECT id, phone, full_name, role, is_active, created_at, updated_at, last_login_at
		FROM profiles
		WHERE id = $1
	`

	var profile models.Profile
	err = r.db.GetContext(ctx, &profile, query, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// CreateProfile inserts a new profile record
func (r *ProfileRepo) CreateProfile(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (id, phone, full_name, role,
			is_active, created_at, updated_at
		) VALUES (:id, :phone, :full_name, :role,
			:is_active, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	return nil
}

// TouchLastLogin records a successful sign-in time
func (r *ProfileRepo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE profiles
		SET last_login_at = $1, updated_at = $1
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return auth.ErrProfileNotFound
	}

	return nil
}
