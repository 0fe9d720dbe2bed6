package application

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/domain/audit"
	"github.com/linskybing/grant-tracker/internal/domain/finance"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/transaction"
	"github.com/linskybing/grant-tracker/internal/events"
	"github.com/linskybing/grant-tracker/internal/metrics"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/linskybing/grant-tracker/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ClusterService struct {
	Repos     *repository.Repos
	Lifecycle *ticket.Lifecycle
	Events    events.Publisher
}

func NewClusterService(repos *repository.Repos, lifecycle *ticket.Lifecycle, pub events.Publisher) *ClusterService {
	return &ClusterService{
		Repos:     repos,
		Lifecycle: lifecycle,
		Events:    pub,
	}
}

type ClusterDetail struct {
	Cluster       transaction.Cluster  `json:"cluster"`
	PaymentStatus ticket.PaymentStatus `json:"payment_status"`
	Accepted      decimal.Decimal      `json:"accepted"`
	Paid          decimal.Decimal      `json:"paid"`
	Overpaid      decimal.Decimal      `json:"overpaid"`
	Unpaid        decimal.Decimal      `json:"unpaid"`
	// RedirectedFrom is set when the lookup id named a ticket rather than a cluster.
	RedirectedFrom *uint `json:"redirected_from,omitempty"`
}

// RebuildClusters recomputes the ticket/transaction components from scratch and
// settles every ticket against its new cluster. It returns the cluster count.
func (s *ClusterService) RebuildClusters(c *gin.Context) (int, error) {
	var count int
	err := s.Repos.ExecTx(func(r *repository.Repos) error {
		n, err := s.rebuild(r)
		count = n
		return err
	})
	if err != nil {
		return 0, err
	}

	metrics.ClusterCount.Set(float64(count))
	s.Events.Publish(events.Event{Kind: events.ClustersRebuilt, At: time.Now()})
	recordAudit(c, s.Repos, audit.Entry{
		Action:     audit.ActionRebuild,
		Resource:   audit.ResourceCluster,
		After:      map[string]int{"clusters": count},
	})
	return count, nil
}

// rebuild runs inside the caller's transaction.
func (s *ClusterService) rebuild(r *repository.Repos) (int, error) {
	ids, err := r.Ticket.ListTicketIDs()
	if err != nil {
		return 0, err
	}
	links, err := r.Transaction.ListLinks()
	if err != nil {
		return 0, err
	}
	components := finance.BuildClusters(ids, links)

	if err := r.Cluster.Reset(); err != nil {
		return 0, err
	}
	for _, comp := range components {
		if err := r.Cluster.SaveComponent(comp); err != nil {
			return 0, err
		}
	}
	for _, comp := range components {
		if err := s.reconcile(r, comp.ID); err != nil {
			return 0, err
		}
	}
	return len(components), nil
}

// reconcile moves every ticket of the cluster to the status and payment
// status implied by the cluster balance.
func (s *ClusterService) reconcile(r *repository.Repos, clusterID uint) error {
	cl, err := r.Cluster.GetClusterByID(clusterID)
	if err != nil {
		return err
	}
	bal := finance.ClusterBalance(cl.Tickets, cl.Transactions)
	payment := bal.PaymentStatus()
	log := logger.L()

	for _, t := range cl.Tickets {
		from := t.Status
		target := bal.ReconciledStatus(t.Status)
		if err := s.Lifecycle.Transition(&t, target); err != nil {
			log.Warn("ticket status left unchanged by reconciliation",
				zap.Uint("ticket_id", t.ID),
				zap.String("from", string(from)),
				zap.String("to", string(target)),
				zap.Error(err))
		}
		if t.Status == from && t.PaymentStatus == payment {
			continue
		}
		if err := r.Ticket.UpdateSettlement(t.ID, t.Status, payment); err != nil {
			return err
		}
		if t.Status != from {
			metrics.TicketStatusTransitions.WithLabelValues(string(from), string(t.Status)).Inc()
		}
	}
	return nil
}

// ReconcileTicket settles the cluster the ticket belongs to.
func (s *ClusterService) ReconcileTicket(r *repository.Repos, t ticket.Ticket) error {
	if t.ClusterID == nil {
		return nil
	}
	return s.reconcile(r, *t.ClusterID)
}

// GetCluster returns the cluster with its balance. An id that is not a
// cluster but a ticket resolves to that ticket's cluster.
func (s *ClusterService) GetCluster(id uint) (ClusterDetail, error) {
	cl, err := s.Repos.Cluster.GetClusterByID(id)
	var redirected *uint
	if errors.Is(err, repository.ErrNotFound) {
		t, terr := s.Repos.Ticket.GetTicketByID(id)
		if terr != nil && !errors.Is(terr, repository.ErrNotFound) {
			return ClusterDetail{}, terr
		}
		if terr != nil || t.ClusterID == nil {
			return ClusterDetail{}, notFound(err, "cluster", id)
		}
		from := id
		redirected = &from
		cl, err = s.Repos.Cluster.GetClusterByID(*t.ClusterID)
	}
	if err != nil {
		return ClusterDetail{}, notFound(err, "cluster", id)
	}

	bal := finance.ClusterBalance(cl.Tickets, cl.Transactions)
	return ClusterDetail{
		Cluster:        cl,
		PaymentStatus:  bal.PaymentStatus(),
		Accepted:       bal.Tickets,
		Paid:           bal.Paid(),
		Overpaid:       bal.Overpaid(),
		Unpaid:         bal.Unpaid(),
		RedirectedFrom: redirected,
	}, nil
}
