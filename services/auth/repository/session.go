package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/souqin/souqin/internal/pkg/constants"
	"github.com/souqin/souqin/internal/pkg/models"
)

// GetSession retrieves the pending verification session for a phone. A
// missing or expired session returns nil without error.
func (r *SessionRepo) GetSession(ctx context.Context, phone string) (*models.VerificationSession, error) {
	key := fmt.Sprintf(constants.KeyVerificationSession, phone)

	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get verification session: %w", err)
	}

	var session models.VerificationSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verification session: %w", err)
	}

	return &session, nil
}

// SaveSession stores the session under its phone key with the configured TTL
func (r *SessionRepo) SaveSession(ctx context.Context, session *models.VerificationSession) error {
	key := fmt.Sprintf(constants.KeyVerificationSession, session.Phone)

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal verification session: %w", err)
	}

	ttl := time.Duration(r.cfg.Auth.SessionTTLMinutes) * time.Minute
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to save verification session: %w", err)
	}

	return nil
}

// DeleteSession removes the pending session for a phone. Deleting a session
// that does not exist is not an error.
func (r *SessionRepo) DeleteSession(ctx context.Context, phone string) error {
	key := fmt.Sprintf(constants.KeyVerificationSession, phone)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete verification session: %w", err)
	}

	return nil
}

// SetCooldown starts the resend cooldown window for a phone
func (r *SessionRepo) SetCooldown(ctx context.Context, phone string, d time.Duration) error {
	key := fmt.Sprintf(constants.KeyResendCooldown, phone)

	if err := r.redisClient.Set(ctx, key, "1", d); err != nil {
		return fmt.Errorf("failed to set resend cooldown: %w", err)
	}

	return nil
}

// CooldownRemaining reports how long until the next send is allowed for a
// phone, zero when no cooldown is running.
func (r *SessionRepo) CooldownRemaining(ctx context.Context, phone string) (time.Duration, error) {
	key := fmt.Sprintf(constants.KeyResendCooldown, phone)

	ttl, err := r.redisClient.TTL(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to read resend cooldown: %w", err)
	}
	if ttl < 0 {
		// -2 means no key, -1 means no expiry; neither blocks a send.
		return 0, nil
	}

	return ttl, nil
}
