package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souqin/souqin/internal/pkg/models"
	"github.com/souqin/souqin/services/auth"
)

func newTestSMSClient(serverURL string) *SMSClient {
	return NewSMSClient(models.SMSConfig{
		BaseURL:        serverURL,
		APIKey:         "test-key",
		TimeoutSeconds: 5,
		SenderName:     "souqin",
	})
}

func TestSendOTP_Success(t *testing.T) {
	var gotReq sendVerificationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/verification", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(verificationResponse{ID: "verif-1", Status: "pending"})
	}))
	defer server.Close()

	client := newTestSMSClient(server.URL)

	handle, err := client.SendOTP(context.Background(), "+966501234567", "proof-token")
	require.NoError(t, err)
	assert.Equal(t, "verif-1", handle)
	assert.Equal(t, "phone_number", gotReq.Target.Type)
	assert.Equal(t, "+966501234567", gotReq.Target.Value)
	assert.Equal(t, "proof-token", gotReq.Signals.ChallengeToken)
}

func TestSendOTP_ProviderRejectsPhone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(verificationResponse{Status: "error", Reason: "invalid_phone_number"})
	}))
	defer server.Close()

	client := newTestSMSClient(server.URL)

	_, err := client.SendOTP(context.Background(), "+966501234567", "proof-token")
	assert.ErrorIs(t, err, auth.ErrProviderInvalidPhone)
}

func TestSendOTP_InsufficientBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := newTestSMSClient(server.URL)

	_, err := client.SendOTP(context.Background(), "+966501234567", "proof-token")
	assert.ErrorIs(t, err, auth.ErrInsufficientBalance)
}

func TestSendOTP_ChallengeProofRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(verificationResponse{Status: "error", Reason: "invalid_signal"})
	}))
	defer server.Close()

	client := newTestSMSClient(server.URL)

	_, err := client.SendOTP(context.Background(), "+966501234567", "stale-proof")
	assert.ErrorIs(t, err, auth.ErrChallengeRejected)
}

func TestSendOTP_RateLimitedWithHint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(verificationResponse{Status: "error", RetryAfter: 45})
	}))
	defer server.Close()

	client := newTestSMSClient(server.URL)

	_, err := client.SendOTP(context.Background(), "+966501234567", "proof-token")

	var rateLimit *auth.RateLimitError
	require.ErrorAs(t, err, &rateLimit)
	assert.Equal(t, 45, rateLimit.RetryAfter)
}

func TestCheckOTP_Success(t *testing.T) {
	var gotReq checkVerificationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/verification/check", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(verificationResponse{ID: "verif-1", Status: "success"})
	}))
	defer server.Close()

	client := newTestSMSClient(server.URL)

	err := client.CheckOTP(context.Background(), "verif-1", "123456")
	require.NoError(t, err)
	assert.Equal(t, "verif-1", gotReq.VerificationID)
	assert.Equal(t, "123456", gotReq.Code)
}

func TestCheckOTP_WrongCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(verificationResponse{ID: "verif-1", Status: "failure"})
	}))
	defer server.Close()

	client := newTestSMSClient(server.URL)

	err := client.CheckOTP(context.Background(), "verif-1", "111111")
	assert.ErrorIs(t, err, auth.ErrCodeMismatch)
}

func TestCheckOTP_Expired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(verificationResponse{ID: "verif-1", Status: "expired"})
	}))
	defer server.Close()

	client := newTestSMSClient(server.URL)

	err := client.CheckOTP(context.Background(), "verif-1", "123456")
	assert.ErrorIs(t, err, auth.ErrCodeExpired)
}

func TestCheckOTP_VerificationGone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer server.Close()

	client := newTestSMSClient(server.URL)

	err := client.CheckOTP(context.Background(), "verif-1", "123456")
	assert.ErrorIs(t, err, auth.ErrCodeExpired)
}

func TestSendOTP_ServerErrorTripsBreakerEventually(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestSMSClient(server.URL)

	_, err := client.SendOTP(context.Background(), "+966501234567", "proof-token")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrProviderInvalidPhone)
}
