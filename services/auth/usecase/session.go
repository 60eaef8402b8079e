package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/souqin/souqin/internal/pkg/logger"
	"github.com/souqin/souqin/internal/pkg/models"
	"github.com/souqin/souqin/internal/utils"
	"github.com/souqin/souqin/services/auth"
)

// SubmitPhone starts (or restarts) a verification session for the given
// phone. Existing accounts go straight to code entry and receive an OTP;
// unknown phones land on role selection and no SMS is sent yet.
func (u *AuthUC) SubmitPhone(ctx context.Context, rawPhone string) (*models.SessionState, error) {
	phone, err := utils.NormalizePhone(rawPhone)
	if err != nil {
		return nil, auth.ErrInvalidPhone
	}

	profile, err := u.profileRepo.GetProfileByPhone(ctx, phone)
	if err != nil && !errors.Is(err, auth.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	now := time.Now()
	session := &models.VerificationSession{
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if profile != nil {
		// Known account: the stored role is authoritative, skip selection.
		session.IsExistingUser = true
		session.SelectedRole = profile.Role

		handle, err := u.sendOTP(ctx, phone, false)
		if err != nil {
			return nil, err
		}
		session.ConfirmationHandle = handle
		session.Phase = models.PhaseCodeEntry
	} else {
		session.Phase = models.PhaseRoleSelection
	}

	if err := u.sessionRepo.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save verification session: %w", err)
	}

	logger.InfoCtx(ctx, "Verification session started",
		logger.String("phone", utils.MaskPhone(phone)),
		logger.String("phase", string(session.Phase)),
		logger.Bool("existing_user", session.IsExistingUser))

	return u.toState(ctx, session), nil
}

// ConfirmRole records the role chosen for a new account and sends the OTP.
func (u *AuthUC) ConfirmRole(ctx context.Context, rawPhone string, role models.Role) (*models.SessionState, error) {
	phone, err := utils.NormalizePhone(rawPhone)
	if err != nil {
		return nil, auth.ErrInvalidPhone
	}
	if !models.ValidRole(role) {
		return nil, auth.ErrInvalidRole
	}

	session, err := u.sessionRepo.GetSession(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to load verification session: %w", err)
	}
	if session == nil {
		return nil, auth.ErrNoPendingVerification
	}
	if session.Phase != models.PhaseRoleSelection {
		return nil, auth.ErrWrongPhase
	}

	handle, err := u.sendOTP(ctx, phone, false)
	if err != nil {
		return nil, err
	}

	session.SelectedRole = role
	session.ConfirmationHandle = handle
	session.Phase = models.PhaseCodeEntry
	session.Attempts = 0
	session.UpdatedAt = time.Now()

	if err := u.sessionRepo.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save verification session: %w", err)
	}

	logger.InfoCtx(ctx, "Role confirmed, OTP sent",
		logger.String("phone", utils.MaskPhone(phone)),
		logger.String("role", string(role)))

	return u.toState(ctx, session), nil
}

// Back steps a pending session one phase toward phone entry. Stepping back
// from role selection, or from code entry for an existing account, abandons
// the session entirely.
func (u *AuthUC) Back(ctx context.Context, rawPhone string) (*models.SessionState, error) {
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

	switch session.Phase {
	case models.PhaseCodeEntry:
		if session.IsExistingUser {
			return u.abandonSession(ctx, session)
		}
		session.Phase = models.PhaseRoleSelection
		session.ConfirmationHandle = ""
		session.Attempts = 0
		session.UpdatedAt = time.Now()
		if err := u.sessionRepo.SaveSession(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to save verification session: %w", err)
		}
		return u.toState(ctx, session), nil
	case models.PhaseRoleSelection:
		return u.abandonSession(ctx, session)
	default:
		return nil, auth.ErrWrongPhase
	}
}

// SessionState returns the current snapshot for a phone so a client can
// resume mid-flow. A phone with no pending session reports the phone entry
// phase.
func (u *AuthUC) SessionState(ctx context.Context, rawPhone string) (*models.SessionState, error) {
	phone, err := utils.NormalizePhone(rawPhone)
	if err != nil {
		return nil, auth.ErrInvalidPhone
	}

	session, err := u.sessionRepo.GetSession(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to load verification session: %w", err)
	}
	if session == nil {
		return u.phoneEntryState(ctx, phone), nil
	}
	return u.toState(ctx, session), nil
}

func (u *AuthUC) abandonSession(ctx context.Context, session *models.VerificationSession) (*models.SessionState, error) {
	if err := u.sessionRepo.DeleteSession(ctx, session.Phone); err != nil {
		return nil, fmt.Errorf("failed to delete verification session: %w", err)
	}
	u.challengeMgr.Cleanup()
	return u.phoneEntryState(ctx, session.Phone), nil
}

func (u *AuthUC) phoneEntryState(ctx context.Context, phone string) *models.SessionState {
	return &models.SessionState{
		Phone:           phone,
		Phase:           models.PhasePhoneEntry,
		CooldownSeconds: u.cooldownSeconds(ctx, phone),
	}
}

func (u *AuthUC) toState(ctx context.Context, session *models.VerificationSession) *models.SessionState {
	return &models.SessionState{
		Phone:           session.Phone,
		Phase:           session.Phase,
		SelectedRole:    session.SelectedRole,
		IsExistingUser:  session.IsExistingUser,
		CooldownSeconds: u.cooldownSeconds(ctx, session.Phone),
	}
}

func (u *AuthUC) cooldownSeconds(ctx context.Context, phone string) int {
	remaining, err := u.sessionRepo.CooldownRemaining(ctx, phone)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read resend cooldown",
			logger.String("phone", utils.MaskPhone(phone)),
			logger.Err(err))
		return 0
	}
	if remaining <= 0 {
		return 0
	}
	return ceilSeconds(remaining)
}
