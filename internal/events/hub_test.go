package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishSubscribe(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	defer cancel()

	h.Publish(Event{Kind: TicketCreated, TicketID: 4})

	data := <-ch
	var e Event
	require.NoError(t, json.Unmarshal(data, &e))
	assert.Equal(t, TicketCreated, e.Kind)
	assert.Equal(t, uint(4), e.TicketID)
	assert.False(t, e.At.IsZero())
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer*2; i++ {
		h.Publish(Event{Kind: TicketUpdated})
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	assert.Equal(t, 1, h.Subscribers())
	cancel()
	cancel()
	assert.Equal(t, 0, h.Subscribers())

	_, open := <-ch
	assert.False(t, open)
	h.Publish(Event{Kind: ClustersRebuilt})
}
