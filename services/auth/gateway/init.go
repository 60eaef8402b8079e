package gateway

import (
	"github.com/souqin/souqin/internal/pkg/models"
	natspkg "github.com/souqin/souqin/internal/pkg/nats"
	"github.com/souqin/souqin/services/auth"
)

// AuthGW bundles the SMS provider client and the NATS publisher behind the
// auth gateway contract.
type AuthGW struct {
	smsClient *SMSClient
	natsGW    *NATSGateway
}

// NewAuthGW creates a new gateway instance
func NewAuthGW(natsClient *natspkg.Client, cfg *models.Config) auth.AuthGW {
	return &AuthGW{
		smsClient: NewSMSClient(cfg.SMS),
		natsGW:    NewNATSGateway(natsClient),
	}
}
