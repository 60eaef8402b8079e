package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/souqin/souqin/internal/pkg/constants"
	"github.com/souqin/souqin/internal/pkg/logger"
	"github.com/souqin/souqin/internal/pkg/models"
	natspkg "github.com/souqin/souqin/internal/pkg/nats"
	"github.com/souqin/souqin/services/profiles"
)

// NatsHandler consumes reconciliation events for the profiles worker
type NatsHandler struct {
	profilesUC profiles.ProfilesUC
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(profilesUC profiles.ProfilesUC, natsClient *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		profilesUC: profilesUC,
		natsClient: natsClient,
	}
}

// InitConsumers subscribes the worker to its queue group. Scaled-out workers
// share the subject through the queue group, so each event lands on one
// instance.
func (h *NatsHandler) InitConsumers() error {
	consumer, err := natspkg.NewConsumer(
		h.natsClient,
		constants.SubjectProfileReconcile,
		constants.QueueProfilesWorker,
		h.handleReconcileEvent,
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to reconciliation events: %w", err)
	}
	h.consumers = append(h.consumers, consumer)

	return nil
}

// Stop unsubscribes all consumers
func (h *NatsHandler) Stop() {
	for _, c := range h.consumers {
		if err := c.Stop(); err != nil {
			logger.Warn("Failed to stop consumer", logger.Err(err))
		}
	}
}

// handleReconcileEvent processes one reconciliation event
func (h *NatsHandler) handleReconcileEvent(msg []byte) error {
	var event models.ProfileReconcileEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal reconciliation event: %w", err)
	}

	if err := h.profilesUC.Reconcile(context.Background(), &event); err != nil {
		logger.Error("Failed to reconcile profile",
			logger.String("profile_id", event.ProfileID.String()),
			logger.Err(err))
		return err
	}

	return nil
}
