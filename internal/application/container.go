package application

import (
	"github.com/linskybing/grant-tracker/internal/domain/permission"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/events"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/linskybing/grant-tracker/pkg/storage"
)

type Services struct {
	Audit       *AuditService
	Permission  *PermissionService
	Finance     *FinanceService
	Cluster     *ClusterService
	Transaction *TransactionService
	Grant       *GrantService
	Topic       *TopicService
	Ticket      *TicketService
	Document    *DocumentService
	User        *UserService
}

func New(repos *repository.Repos, lifecycle *ticket.Lifecycle, store storage.ObjectStore, pub events.Publisher) *Services {
	if lifecycle == nil {
		lifecycle = ticket.DefaultLifecycle()
	}
	if pub == nil {
		pub = events.Nop{}
	}
	resolver := permission.NewResolver(lifecycle)
	perms := NewPermissionService(repos, resolver)
	fin := NewFinanceService(repos)
	clusters := NewClusterService(repos, lifecycle, pub)

	return &Services{
		Audit:       NewAuditService(repos),
		Permission:  perms,
		Finance:     fin,
		Cluster:     clusters,
		Transaction: NewTransactionService(repos, clusters, pub),
		Grant:       NewGrantService(repos, fin),
		Topic:       NewTopicService(repos, resolver, fin),
		Ticket:      NewTicketService(repos, lifecycle, perms, clusters, pub),
		Document:    NewDocumentService(repos, perms, store, pub),
		User:        NewUserService(repos),
	}
}
