package application

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/domain/audit"
	"github.com/linskybing/grant-tracker/internal/domain/finance"
	"github.com/linskybing/grant-tracker/internal/domain/permission"
	"github.com/linskybing/grant-tracker/internal/domain/transaction"
	"github.com/linskybing/grant-tracker/internal/events"
	"github.com/linskybing/grant-tracker/internal/metrics"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/linskybing/grant-tracker/pkg/csvexport"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type TransactionService struct {
	Repos    *repository.Repos
	Clusters *ClusterService
	Events   events.Publisher
}

func NewTransactionService(repos *repository.Repos, clusters *ClusterService, pub events.Publisher) *TransactionService {
	return &TransactionService{
		Repos:    repos,
		Clusters: clusters,
		Events:   pub,
	}
}

func (s *TransactionService) ListTransactions() (transaction.TransactionListDTO, error) {
	txs, err := s.Repos.Transaction.ListTransactions()
	if err != nil {
		return transaction.TransactionListDTO{}, err
	}
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return transaction.TransactionListDTO{Transactions: txs, Total: total}, nil
}

func (s *TransactionService) GetTransaction(id uint) (transaction.Transaction, error) {
	tx, err := s.Repos.Transaction.GetTransactionByID(id)
	if err != nil {
		return transaction.Transaction{}, notFound(err, "transaction", id)
	}
	return tx, nil
}

// ExportCSV writes every transaction in the semicolon separated format the
// accounting office imports.
func (s *TransactionService) ExportCSV(w io.Writer, currency string) error {
	txs, err := s.Repos.Transaction.ListTransactions()
	if err != nil {
		return err
	}
	return csvexport.WriteTransactions(w, currency, txs)
}

func (s *TransactionService) CreateTransaction(c *gin.Context, actor permission.Actor, input transaction.TransactionInput) (transaction.Transaction, error) {
	if !actor.Supervisor {
		return transaction.Transaction{}, ErrPermissionDenied
	}
	var tx transaction.Transaction
	if err := s.apply(&tx, input); err != nil {
		return transaction.Transaction{}, err
	}

	err := s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Transaction.CreateTransaction(&tx); err != nil {
			return err
		}
		if err := r.Transaction.ReplaceTickets(&tx, input.TicketIDs); err != nil {
			return err
		}
		_, err := s.Clusters.rebuild(r)
		return err
	})
	if err != nil {
		return transaction.Transaction{}, err
	}

	s.saved(c, audit.ActionCreate, nil, tx)
	return tx, nil
}

func (s *TransactionService) UpdateTransaction(c *gin.Context, actor permission.Actor, id uint, input transaction.TransactionInput) (transaction.Transaction, error) {
	if !actor.Supervisor {
		return transaction.Transaction{}, ErrPermissionDenied
	}
	tx, err := s.Repos.Transaction.GetTransactionByID(id)
	if err != nil {
		return transaction.Transaction{}, notFound(err, "transaction", id)
	}
	old := tx
	if err := s.apply(&tx, input); err != nil {
		return transaction.Transaction{}, err
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Transaction.UpdateTransaction(&tx); err != nil {
			return err
		}
		if err := r.Transaction.ReplaceTickets(&tx, input.TicketIDs); err != nil {
			return err
		}
		_, err := s.Clusters.rebuild(r)
		return err
	})
	if err != nil {
		return transaction.Transaction{}, err
	}

	s.saved(c, audit.ActionUpdate, old, tx)
	return tx, nil
}

func (s *TransactionService) DeleteTransaction(c *gin.Context, actor permission.Actor, id uint) error {
	if !actor.Supervisor {
		return ErrPermissionDenied
	}
	old, err := s.Repos.Transaction.GetTransactionByID(id)
	if err != nil {
		return notFound(err, "transaction", id)
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Transaction.DeleteTransaction(id); err != nil {
			return notFound(err, "transaction", id)
		}
		_, err := s.Clusters.rebuild(r)
		return err
	})
	if err != nil {
		return err
	}

	metrics.TransactionOperationsCounter.WithLabelValues("delete").Inc()
	s.Events.Publish(events.Event{Kind: events.TransactionDeleted, ID: id, At: time.Now()})
	recordAudit(c, s.Repos, audit.Entry{
		Action:     audit.ActionDelete,
		Resource:   audit.ResourceTransaction,
		ResourceID: id,
		Before:     old,
	})
	return nil
}

// apply validates input and copies it onto tx. Linked tickets and the other
// party must exist.
func (s *TransactionService) apply(tx *transaction.Transaction, input transaction.TransactionInput) error {
	verr := &ValidationError{}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		verr.Add("date", "Enter a valid date.")
	}
	if !finance.AmountFits(input.Amount) {
		verr.Add("amount", amountTooLarge)
	}
	if input.OtherPartyID == nil && input.OtherPartyText == "" {
		verr.Add("other_party", "Either a user or a free-form other party is required.")
	}
	if input.OtherPartyID != nil {
		if _, err := s.Repos.User.GetUserByID(*input.OtherPartyID); err != nil {
			if !isNotFound(err) {
				return err
			}
			verr.Add("other_party_id", fmt.Sprintf("User %d does not exist.", *input.OtherPartyID))
		}
	}
	if len(input.TicketIDs) > 0 {
		found, err := s.Repos.Ticket.ListTickets(repository.TicketFilter{IDs: input.TicketIDs})
		if err != nil {
			return err
		}
		known := make(map[uint]bool, len(found))
		for _, t := range found {
			known[t.ID] = true
		}
		for _, id := range input.TicketIDs {
			if !known[id] {
				verr.Add("ticket_ids", fmt.Sprintf("Ticket %d does not exist.", id))
				break
			}
		}
	}
	if err := verr.orNil(); err != nil {
		return err
	}

	tx.Date = datatypes.Date(date)
	tx.OtherPartyID = input.OtherPartyID
	tx.OtherPartyText = input.OtherPartyText
	tx.Amount = input.Amount.Round(2)
	tx.Description = input.Description
	tx.AccountingInfo = input.AccountingInfo
	return nil
}

func (s *TransactionService) saved(c *gin.Context, op audit.Action, before any, tx transaction.Transaction) {
	metrics.TransactionOperationsCounter.WithLabelValues(string(op)).Inc()
	s.Events.Publish(events.Event{Kind: events.TransactionSaved, ID: tx.ID, At: time.Now()})
	recordAudit(c, s.Repos, audit.Entry{
		Action:     op,
		Resource:   audit.ResourceTransaction,
		ResourceID: tx.ID,
		Before:     before,
		After:      tx,
	})
}
