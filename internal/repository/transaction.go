package repository

import (
	"github.com/linskybing/grant-tracker/internal/domain/finance"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/transaction"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TransactionRepo interface {
	ListTransactions() ([]transaction.Transaction, error)
	ListTransactionsByTicketIDs(ticketIDs []uint) ([]transaction.Transaction, error)
	ListTransactionsByCluster(clusterID uint) ([]transaction.Transaction, error)
	GetTransactionByID(id uint) (transaction.Transaction, error)
	CreateTransaction(tx *transaction.Transaction) error
	UpdateTransaction(tx *transaction.Transaction) error
	ReplaceTickets(tx *transaction.Transaction, ticketIDs []uint) error
	DeleteTransaction(id uint) error
	SumAmounts() (decimal.Decimal, error)
	ListLinks() ([]finance.Link, error)
	WithTx(tx *gorm.DB) TransactionRepo
}

type DBTransactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) *DBTransactionRepo {
	return &DBTransactionRepo{
		db: db,
	}
}

func (r *DBTransactionRepo) preloaded() *gorm.DB {
	return r.db.Preload("OtherParty").
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order("tickets.id")
		}).
		Preload("Tickets.Topic.Grant")
}

func (r *DBTransactionRepo) ListTransactions() ([]transaction.Transaction, error) {
	var txs []transaction.Transaction
	err := r.preloaded().Order("date, id").Find(&txs).Error
	return txs, err
}

// ListTransactionsByTicketIDs returns every transaction linked to at least one
// of the tickets, with all of its links loaded.
func (r *DBTransactionRepo) ListTransactionsByTicketIDs(ticketIDs []uint) ([]transaction.Transaction, error) {
	var txs []transaction.Transaction
	if len(ticketIDs) == 0 {
		return txs, nil
	}
	sub := r.db.Table("transaction_tickets").Select("transaction_id").Where("ticket_id IN ?", ticketIDs)
	err := r.preloaded().Where("id IN (?)", sub).Order("date, id").Find(&txs).Error
	return txs, err
}

func (r *DBTransactionRepo) ListTransactionsByCluster(clusterID uint) ([]transaction.Transaction, error) {
	var txs []transaction.Transaction
	err := r.preloaded().Where("cluster_id = ?", clusterID).Order("date, id").Find(&txs).Error
	return txs, err
}

func (r *DBTransactionRepo) GetTransactionByID(id uint) (transaction.Transaction, error) {
	var tx transaction.Transaction
	err := r.preloaded().First(&tx, id).Error
	return tx, notFound(err)
}

func (r *DBTransactionRepo) CreateTransaction(tx *transaction.Transaction) error {
	return r.db.Omit(clause.Associations).Create(tx).Error
}

func (r *DBTransactionRepo) UpdateTransaction(tx *transaction.Transaction) error {
	return r.db.Omit(clause.Associations).Save(tx).Error
}

func (r *DBTransactionRepo) ReplaceTickets(tx *transaction.Transaction, ticketIDs []uint) error {
	tickets := make([]ticket.Ticket, 0, len(ticketIDs))
	for _, id := range ticketIDs {
		tickets = append(tickets, ticket.Ticket{ID: id})
	}
	if len(tickets) == 0 {
		return r.db.Model(tx).Association("Tickets").Clear()
	}
	return r.db.Model(tx).Omit("Tickets.*").Association("Tickets").Replace(tickets)
}

func (r *DBTransactionRepo) DeleteTransaction(id uint) error {
	tx := transaction.Transaction{ID: id}
	if err := r.db.Model(&tx).Association("Tickets").Clear(); err != nil {
		return err
	}
	res := r.db.Delete(&transaction.Transaction{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DBTransactionRepo) SumAmounts() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&transaction.Transaction{}).Select("COALESCE(SUM(amount), 0)").Row().Scan(&total)
	return total, err
}

func (r *DBTransactionRepo) ListLinks() ([]finance.Link, error) {
	var links []finance.Link
	err := r.db.Table("transaction_tickets").
		Select("ticket_id, transaction_id").
		Order("transaction_id, ticket_id").
		Scan(&links).Error
	return links, err
}

func (r *DBTransactionRepo) WithTx(tx *gorm.DB) TransactionRepo {
	if tx == nil {
		return r
	}
	return &DBTransactionRepo{
		db: tx,
	}
}
