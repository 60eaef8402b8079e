package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/souqin/souqin/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from a NATS subject
type Consumer struct {
	conn         *nats.Conn
	subscription *nats.Subscription
}

// NewConsumer subscribes to a subject, optionally within a queue group so
// scaled-out workers share the load, and dispatches messages to the handler.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	dispatch := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		subscription *nats.Subscription
		err          error
	)
	if queueGroup != "" {
		subscription, err = client.GetConn().QueueSubscribe(subject, queueGroup, dispatch)
	} else {
		subscription, err = client.GetConn().Subscribe(subject, dispatch)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return &Consumer{
		conn:         client.GetConn(),
		subscription: subscription,
	}, nil
}

// Stop unsubscribes from the subject
func (c *Consumer) Stop() error {
	if c.subscription != nil {
		return c.subscription.Unsubscribe()
	}
	return nil
}
