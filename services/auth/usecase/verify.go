package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jwtpkg "github.com/souqin/souqin/internal/pkg/jwt"
	"github.com/souqin/souqin/internal/pkg/logger"
	"github.com/souqin/souqin/internal/pkg/models"
	"github.com/souqin/souqin/internal/utils"
	"github.com/souqin/souqin/services/auth"
)

// VerifyCode checks the submitted SMS code against the pending session. On
// success it resolves (or creates) the profile, issues a JWT and publishes a
// reconciliation event for the mirror store.
func (u *AuthUC) VerifyCode(ctx context.Context, rawPhone, code string) (*models.AuthResponse, error) {
	phone, err := utils.NormalizePhone(rawPhone)
	if err != nil {
		return nil, auth.ErrInvalidPhone
	}
	if !utils.IsValidCode(code) {
		return nil, auth.ErrInvalidCodeFormat
	}

	session, err := u.sessionRepo.GetSession(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to load verification session: %w", err)
	}
	if session == nil {
		return nil, auth.ErrNoPendingVerification
	}
	if session.Phase != models.PhaseCodeEntry {
		return nil, auth.ErrWrongPhase
	}
	if session.ConfirmationHandle == "" {
		// A code_entry session always carries a provider handle; a record
		// without one is corrupted and must not reach the provider.
		return nil, auth.ErrNoPendingVerification
	}
	if session.Attempts >= u.cfg.Auth.MaxVerifyAttempts {
		return nil, u.consumeSession(ctx, session)
	}

	if err := u.authGW.CheckOTP(ctx, session.ConfirmationHandle, code); err != nil {
		if errors.Is(err, auth.ErrCodeMismatch) {
			session.Attempts++
			session.UpdatedAt = time.Now()
			if session.Attempts >= u.cfg.Auth.MaxVerifyAttempts {
				return nil, u.consumeSession(ctx, session)
			}
			if saveErr := u.sessionRepo.SaveSession(ctx, session); saveErr != nil {
				return nil, fmt.Errorf("failed to save verification session: %w", saveErr)
			}
			return nil, auth.ErrCodeMismatch
		}
		return nil, err
	}

	profile, newUser, err := u.resolveProfile(ctx, session)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := jwtpkg.GenerateToken(profile.ID, profile.Phone, profile.Role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := u.sessionRepo.DeleteSession(ctx, phone); err != nil {
		logger.WarnCtx(ctx, "Failed to delete verified session",
			logger.String("phone", utils.MaskPhone(phone)),
			logger.Err(err))
	}
	u.challengeMgr.Cleanup()

	event := &models.ProfileReconcileEvent{
		ProfileID:  profile.ID,
		Phone:      profile.Phone,
		FullName:   profile.FullName,
		Role:       profile.Role,
		NewUser:    newUser,
		VerifiedAt: time.Now(),
	}
	if err := u.authGW.PublishProfileReconciled(ctx, event); err != nil {
		// The mirror catches up from the next event; the sign-in itself
		// must not fail here.
		logger.ErrorCtx(ctx, "Failed to publish profile reconciliation event",
			logger.String("profile_id", profile.ID.String()),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Phone verified",
		logger.String("phone", utils.MaskPhone(phone)),
		logger.String("role", string(profile.Role)),
		logger.Bool("new_user", newUser))

	return &models.AuthResponse{
		Token:     token,
		UserID:    profile.ID.String(),
		Role:      profile.Role,
		ExpiresAt: expiresAt,
		NewUser:   newUser,
	}, nil
}

// Resend issues a fresh OTP for a pending code-entry session. The previous
// challenge instance is force-reset so the new send carries a fresh proof,
// and the attempt counter starts over for the new code.
func (u *AuthUC) Resend(ctx context.Context, rawPhone string) (*models.SessionState, error) {
	phone, err := utils.NormalizePhone(rawPhone)
	if err != nil {
		return nil, auth.ErrInvalidPhone
	}

	session, err := u.sessionRepo.GetSession(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to load verification session: %w", err)
	}
	if session == nil {
		return nil, auth.ErrNoPendingVerification
	}
	if session.Phase != models.PhaseCodeEntry {
		return nil, auth.ErrWrongPhase
	}

	handle, err := u.sendOTP(ctx, phone, true)
	if err != nil {
		return nil, err
	}

	session.ConfirmationHandle = handle
	session.Attempts = 0
	session.UpdatedAt = time.Now()
	if err := u.sessionRepo.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save verification session: %w", err)
	}

	logger.InfoCtx(ctx, "OTP resent",
		logger.String("phone", utils.MaskPhone(phone)))

	return u.toState(ctx, session), nil
}

// sendOTP acquires a challenge proof and asks the SMS provider to deliver a
// code, enforcing the resend cooldown on both sides of the call. It returns
// the provider's confirmation handle.
func (u *AuthUC) sendOTP(ctx context.Context, phone string, forceReset bool) (string, error) {
	remaining, err := u.sessionRepo.CooldownRemaining(ctx, phone)
	if err != nil {
		return "", fmt.Errorf("failed to read resend cooldown: %w", err)
	}
	if remaining > 0 {
		return "", &auth.CooldownError{Seconds: ceilSeconds(remaining)}
	}

	proof, err := u.challengeProof(ctx, forceReset)
	if err != nil {
		return "", err
	}

	handle, err := u.authGW.SendOTP(ctx, phone, proof)
	if errors.Is(err, auth.ErrChallengeRejected) {
		// The provider refused the proof, so the live instance is spent.
		// Tear it down and retry once with a forced replacement.
		u.challengeMgr.NotifyExpired()
		if proof, err = u.challengeProof(ctx, true); err != nil {
			return "", err
		}
		handle, err = u.authGW.SendOTP(ctx, phone, proof)
	}
	if err != nil {
		var rateLimit *auth.RateLimitError
		if errors.As(err, &rateLimit) {
			wait := rateLimit.RetryAfter
			if wait <= 0 {
				wait = u.cfg.Auth.ResendCooldownSeconds
			}
			if cdErr := u.sessionRepo.SetCooldown(ctx, phone, time.Duration(wait)*time.Second); cdErr != nil {
				logger.WarnCtx(ctx, "Failed to set resend cooldown",
					logger.String("phone", utils.MaskPhone(phone)),
					logger.Err(cdErr))
			}
			return "", &auth.CooldownError{Seconds: wait}
		}
		return "", err
	}

	cooldown := time.Duration(u.cfg.Auth.ResendCooldownSeconds) * time.Second
	if err := u.sessionRepo.SetCooldown(ctx, phone, cooldown); err != nil {
		logger.WarnCtx(ctx, "Failed to set resend cooldown",
			logger.String("phone", utils.MaskPhone(phone)),
			logger.Err(err))
	}

	return handle, nil
}

// challengeProof returns a single-use proof token from the challenge
// manager. A stale instance whose proof was already consumed is replaced
// with a force reset before giving up.
func (u *AuthUC) challengeProof(ctx context.Context, forceReset bool) (string, error) {
	inst, err := u.challengeMgr.Initialize(ctx, forceReset)
	if err != nil {
		return "", fmt.Errorf("%w: %v", auth.ErrChallengeUnavailable, err)
	}

	proof, err := inst.Token(ctx)
	if err != nil && !forceReset {
		inst, err = u.challengeMgr.Initialize(ctx, true)
		if err != nil {
			return "", fmt.Errorf("%w: %v", auth.ErrChallengeUnavailable, err)
		}
		proof, err = inst.Token(ctx)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", auth.ErrChallengeUnavailable, err)
	}
	return proof, nil
}

// consumeSession deletes a session that exhausted its attempt budget. The
// caller must restart from phone entry.
func (u *AuthUC) consumeSession(ctx context.Context, session *models.VerificationSession) error {
	if err := u.sessionRepo.DeleteSession(ctx, session.Phone); err != nil {
		return fmt.Errorf("failed to delete exhausted session: %w", err)
	}
	u.challengeMgr.Cleanup()
	logger.WarnCtx(ctx, "Verification attempts exhausted",
		logger.String("phone", utils.MaskPhone(session.Phone)),
		logger.Int("attempts", session.Attempts))
	return auth.ErrTooManyAttempts
}

// resolveProfile loads the account for a verified session, creating it for
// first-time sign-ups.
func (u *AuthUC) resolveProfile(ctx context.Context, session *models.VerificationSession) (*models.Profile, bool, error) {
	profile, err := u.profileRepo.GetProfileByPhone(ctx, session.Phone)
	if err != nil && !errors.Is(err, auth.ErrProfileNotFound) {
		return nil, false, fmt.Errorf("failed to look up profile: %w", err)
	}

	if profile != nil {
		if err := u.profileRepo.TouchLastLogin(ctx, profile.ID); err != nil {
			logger.WarnCtx(ctx, "Failed to update last login",
				logger.String("profile_id", profile.ID.String()),
				logger.Err(err))
		}
		return profile, false, nil
	}

	if !models.ValidRole(session.SelectedRole) {
		return nil, false, auth.ErrInvalidRole
	}

	now := time.Now()
	profile = &models.Profile{
		ID:        uuid.New(),
		Phone:     session.Phone,
		Role:      session.SelectedRole,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.profileRepo.CreateProfile(ctx, profile); err != nil {
		return nil, false, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, true, nil
}

func ceilSeconds(d time.Duration) int {
	secs := int(d / time.Second)
	if d%time.Second > 0 {
		secs++
	}
	return secs
}
