package handlers

import (
	"github.com/linskybing/grant-tracker/internal/application"
	"github.com/linskybing/grant-tracker/internal/events"
)

type Handlers struct {
	Audit       *AuditHandler
	Cluster     *ClusterHandler
	Document    *DocumentHandler
	Events      *EventsHandler
	Finance     *FinanceHandler
	Grant       *GrantHandler
	Health      *HealthHandler
	Ticket      *TicketHandler
	Topic       *TopicHandler
	Transaction *TransactionHandler
	User        *UserHandler
}

func New(svc *application.Services, hub *events.Hub, db Pinger) *Handlers {
	h := &Handlers{
		Audit:       NewAuditHandler(svc.Audit),
		Cluster:     NewClusterHandler(svc.Cluster),
		Document:    NewDocumentHandler(svc.Document),
		Events:      NewEventsHandler(hub),
		Finance:     NewFinanceHandler(svc.Finance),
		Grant:       NewGrantHandler(svc.Grant),
		Health:      NewHealthHandler(db),
		Ticket:      NewTicketHandler(svc.Ticket, svc.Permission),
		Topic:       NewTopicHandler(svc.Topic),
		Transaction: NewTransactionHandler(svc.Transaction),
		User:        NewUserHandler(svc.User),
	}
	return h
}
