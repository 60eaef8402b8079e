package gateway

import (
	"context"

	"github.com/souqin/souqin/internal/pkg/constants"
	"github.com/souqin/souqin/internal/pkg/models"
	natspkg "github.com/souqin/souqin/internal/pkg/nats"
)

// NATSGateway implements the NATS gateway operations for the auth service
type NATSGateway struct {
	producer *natspkg.Producer
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		producer: natspkg.NewProducer(client),
	}
}

// PublishProfileReconciled publishes a reconciliation event to NATS
func (g *NATSGateway) PublishProfileReconciled(ctx context.Context, event *models.ProfileReconcileEvent) error {
	return g.producer.Publish(constants.SubjectProfileReconcile, event)
}

// PublishProfileReconciled implements auth.AuthGW
func (g *AuthGW) PublishProfileReconciled(ctx context.Context, event *models.ProfileReconcileEvent) error {
	return g.natsGW.PublishProfileReconciled(ctx, event)
}
