package events

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/linskybing/grant-tracker/pkg/logger"
	"go.uber.org/zap"
)

type Kind string

const (
	TicketCreated      Kind = "ticket.created"
	TicketUpdated      Kind = "ticket.updated"
	TicketReviewed     Kind = "ticket.reviewed"
	AckAdded           Kind = "ticket.ack_added"
	AckRemoved         Kind = "ticket.ack_removed"
	DocumentsChanged   Kind = "ticket.documents_changed"
	TransactionSaved   Kind = "transaction.saved"
	TransactionDeleted Kind = "transaction.deleted"
	ClustersRebuilt    Kind = "clusters.rebuilt"
)

type Event struct {
	Kind     Kind      `json:"kind"`
	TicketID uint      `json:"ticket_id,omitempty"`
	ID       uint      `json:"id,omitempty"`
	At       time.Time `json:"at"`
}

// Publisher is what services emit activity through.
type Publisher interface {
	Publish(e Event)
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(Event) {}

const subscriberBuffer = 64

// Hub fans events out to subscribers. A subscriber that can't keep up loses
// events rather than blocking publishers.
type Hub struct {
	mu   sync.Mutex
	subs map[chan []byte]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: map[chan []byte]struct{}{}}
}

func (h *Hub) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	data, err := json.Marshal(e)
	if err != nil {
		logger.L().Warn("event marshal failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- data:
		default:
			logger.L().Debug("dropping event for slow subscriber", zap.String("kind", string(e.Kind)))
		}
	}
}

// Subscribe returns a channel of JSON encoded events and a function that
// unsubscribes and closes it.
func (h *Hub) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
