package repository

import (
	"github.com/linskybing/grant-tracker/internal/domain/finance"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/transaction"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClusterRepo interface {
	ListClusters() ([]transaction.Cluster, error)
	GetClusterByID(id uint) (transaction.Cluster, error)
	Reset() error
	SaveComponent(c finance.Component) error
	WithTx(tx *gorm.DB) ClusterRepo
}

type DBClusterRepo struct {
	db *gorm.DB
}

func NewClusterRepo(db *gorm.DB) *DBClusterRepo {
	return &DBClusterRepo{
		db: db,
	}
}

func (r *DBClusterRepo) preloaded() *gorm.DB {
	return r.db.
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order("tickets.id")
		}).
		Preload("Tickets.Expeditures").
		Preload("Tickets.Topic").
		Preload("Tickets.RequestedUser").
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("transactions.date, transactions.id")
		}).
		Preload("Transactions.OtherParty")
}

func (r *DBClusterRepo) ListClusters() ([]transaction.Cluster, error) {
	var clusters []transaction.Cluster
	err := r.preloaded().Order("id").Find(&clusters).Error
	return clusters, err
}

func (r *DBClusterRepo) GetClusterByID(id uint) (transaction.Cluster, error) {
	var c transaction.Cluster
	err := r.preloaded().First(&c, id).Error
	return c, notFound(err)
}

// Reset detaches every ticket and transaction and drops all clusters.
func (r *DBClusterRepo) Reset() error {
	if err := r.db.Model(&ticket.Ticket{}).Where("cluster_id IS NOT NULL").
		UpdateColumn("cluster_id", nil).Error; err != nil {
		return err
	}
	if err := r.db.Model(&transaction.Transaction{}).Where("cluster_id IS NOT NULL").
		UpdateColumn("cluster_id", nil).Error; err != nil {
		return err
	}
	return r.db.Where("1 = 1").Delete(&transaction.Cluster{}).Error
}

// SaveComponent stores c as a cluster and points its members at it.
func (r *DBClusterRepo) SaveComponent(c finance.Component) error {
	row := transaction.Cluster{ID: c.ID}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&row).Error; err != nil {
		return err
	}
	if len(c.TicketIDs) > 0 {
		if err := r.db.Model(&ticket.Ticket{}).Where("id IN ?", c.TicketIDs).
			UpdateColumn("cluster_id", c.ID).Error; err != nil {
			return err
		}
	}
	if len(c.TransactionIDs) > 0 {
		if err := r.db.Model(&transaction.Transaction{}).Where("id IN ?", c.TransactionIDs).
			UpdateColumn("cluster_id", c.ID).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *DBClusterRepo) WithTx(tx *gorm.DB) ClusterRepo {
	if tx == nil {
		return r
	}
	return &DBClusterRepo{
		db: tx,
	}
}
