package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/souqin/souqin/internal/pkg/circuitbreaker"
	httpclient "github.com/souqin/souqin/internal/pkg/http"
	"github.com/souqin/souqin/internal/pkg/logger"
	"github.com/souqin/souqin/internal/pkg/models"
	nrpkg "github.com/souqin/souqin/internal/pkg/newrelic"
	"github.com/souqin/souqin/internal/utils"
	"github.com/souqin/souqin/services/auth"
)

// SMSClient talks to the SMS verification provider. Send and check calls go
// through a circuit breaker so a provider outage fails fast instead of
// stacking up timeouts.
type SMSClient struct {
	client  *httpclient.Client
	breaker *circuitbreaker.CircuitBreaker
	sender  string
}

// NewSMSClient creates a new SMS provider client
func NewSMSClient(cfg models.SMSConfig) *SMSClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	client := httpclient.NewClient(cfg.BaseURL, timeout).
		WithHeader("Authorization", "Bearer "+cfg.APIKey)

	return &SMSClient{
		client:  client,
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("sms-provider")),
		sender:  cfg.SenderName,
	}
}

type sendVerificationRequest struct {
	Target  verificationTarget `json:"target"`
	Sender  string             `json:"sender_id,omitempty"`
	Signals struct {
		ChallengeToken string `json:"challenge_token,omitempty"`
	} `json:"signals"`
}

type verificationTarget struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type verificationResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
	RetryAfter int    `json:"retry_after,omitempty"`
}

// SendOTP asks the provider to deliver a verification code and returns the
// verification ID used later to check the submitted code.
func (c *SMSClient) SendOTP(ctx context.Context, phone, challengeProof string) (string, error) {
	req := sendVerificationRequest{
		Target: verificationTarget{Type: "phone_number", Value: phone},
		Sender: c.sender,
	}
	req.Signals.ChallengeToken = challengeProof

	var (
		out    verificationResponse
		status int
	)
	err := nrpkg.WithSegment(ctx, "sms-provider.send", func() error {
		return c.breaker.Execute(ctx, func(ctx context.Context) error {
			var callErr error
			status, callErr = c.client.PostJSON(ctx, "/v2/verification", req, &out)
			if callErr != nil {
				return callErr
			}
			if status >= http.StatusInternalServerError {
				return fmt.Errorf("sms provider returned status %d", status)
			}
			return nil
		})
	})
	if err != nil {
		return "", fmt.Errorf("failed to send verification: %w", err)
	}

	switch {
	case status == http.StatusOK || status == http.StatusCreated:
		logger.InfoCtx(ctx, "Verification SMS requested",
			logger.String("phone", utils.MaskPhone(phone)),
			logger.String("verification_id", out.ID))
		return out.ID, nil
	case status == http.StatusBadRequest:
		return "", auth.ErrProviderInvalidPhone
	case status == http.StatusPaymentRequired:
		return "", auth.ErrInsufficientBalance
	case status == http.StatusForbidden:
		// The challenge proof was stale or already consumed.
		return "", auth.ErrChallengeRejected
	case status == http.StatusTooManyRequests:
		return "", &auth.RateLimitError{RetryAfter: out.RetryAfter}
	default:
		return "", fmt.Errorf("sms provider returned unexpected status %d", status)
	}
}

type checkVerificationRequest struct {
	VerificationID string `json:"verification_id"`
	Code           string `json:"code"`
}

// CheckOTP submits the user's code against a pending verification.
func (c *SMSClient) CheckOTP(ctx context.Context, handle, code string) error {
	req := checkVerificationRequest{
		VerificationID: handle,
		Code:           code,
	}

	var (
		out    verificationResponse
		status int
	)
	err := nrpkg.WithSegment(ctx, "sms-provider.check", func() error {
		return c.breaker.Execute(ctx, func(ctx context.Context) error {
			var callErr error
			status, callErr = c.client.PostJSON(ctx, "/v2/verification/check", req, &out)
			if callErr != nil {
				return callErr
			}
			if status >= http.StatusInternalServerError {
				return fmt.Errorf("sms provider returned status %d", status)
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("failed to check verification: %w", err)
	}

	switch status {
	case http.StatusOK:
		switch out.Status {
		case "success":
			return nil
		case "expired":
			return auth.ErrCodeExpired
		default:
			return auth.ErrCodeMismatch
		}
	case http.StatusNotFound, http.StatusGone:
		// The verification aged out provider-side.
		return auth.ErrCodeExpired
	case http.StatusUnprocessableEntity:
		return auth.ErrCodeMismatch
	default:
		return fmt.Errorf("sms provider returned unexpected status %d", status)
	}
}

// SendOTP implements auth.AuthGW
func (g *AuthGW) SendOTP(ctx context.Context, phone, challengeProof string) (string, error) {
	return g.smsClient.SendOTP(ctx, phone, challengeProof)
}

// CheckOTP implements auth.AuthGW
func (g *AuthGW) CheckOTP(ctx context.Context, handle, code string) error {
	return g.smsClient.CheckOTP(ctx, handle, code)
}
