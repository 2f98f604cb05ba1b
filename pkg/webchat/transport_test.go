package webchat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elliebot/relay/pkg/events"
	"github.com/elliebot/relay/pkg/transport"
)

func TestNewTransport_NilPublisher(t *testing.T) {
	assert.Nil(t, NewTransport(nil))
}

func TestTransport_Channel(t *testing.T) {
	tr := NewTransport(events.NewPublisher(nil))
	assert.Equal(t, transport.ChannelWeb, tr.Channel())
}
