package auth

import (
	"context"

	"github.com/souqin/souqin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/souqin/souqin/services/auth AuthGW

// AuthGW defines the auth service gateways
type AuthGW interface {
	// SMS verification provider
	SendOTP(ctx context.Context, phone, challengeProof string) (string, error)
	CheckOTP(ctx context.Context, handle, code string) error

	// NATS gateway
	PublishProfileReconciled(ctx context.Context, event *models.ProfileReconcileEvent) error
}
