package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Grant       GrantRepo
	Topic       TopicRepo
	Ticket      TicketRepo
	Ack         AckRepo
	Document    DocumentRepo
	Transaction TransactionRepo
	Cluster     ClusterRepo
	User        UserRepo
	Audit       AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Grant:       NewGrantRepo(db),
		Topic:       NewTopicRepo(db),
		Ticket:      NewTicketRepo(db),
		Ack:         NewAckRepo(db),
		Document:    NewDocumentRepo(db),
		Transaction: NewTransactionRepo(db),
		Cluster:     NewClusterRepo(db),
		User:        NewUserRepo(db),
		Audit:       NewAuditRepo(db),
		db:          db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Grant:       r.Grant.WithTx(tx),
		Topic:       r.Topic.WithTx(tx),
		Ticket:      r.Ticket.WithTx(tx),
		Ack:         r.Ack.WithTx(tx),
		Document:    r.Document.WithTx(tx),
		Transaction: r.Transaction.WithTx(tx),
		Cluster:     r.Cluster.WithTx(tx),
		User:        r.User.WithTx(tx),
		Audit:       r.Audit.WithTx(tx),
		db:          tx,
	}
}

// ExecTx runs fn inside one database transaction. Repos built without a
// database (tests wiring mocks) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
