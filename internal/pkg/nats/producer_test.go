package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProducerPublishMarshalError(t *testing.T) {
	// A payload JSON cannot encode must fail before the client is touched.
	p := NewProducer(nil)

	err := p.Publish("profiles.reconcile", func() {})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal message")
}
