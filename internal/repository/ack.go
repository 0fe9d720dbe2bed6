package repository

import (
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"gorm.io/gorm"
)

type AckRepo interface {
	ListAcks(ticketID uint) ([]ticket.TicketAck, error)
	GetAck(ticketID, ackID uint) (ticket.TicketAck, error)
	CreateAck(a *ticket.TicketAck) error
	DeleteAck(id uint) error
	WithTx(tx *gorm.DB) AckRepo
}

type DBAckRepo struct {
	db *gorm.DB
}

func NewAckRepo(db *gorm.DB) *DBAckRepo {
	return &DBAckRepo{
		db: db,
	}
}

func (r *DBAckRepo) ListAcks(ticketID uint) ([]ticket.TicketAck, error) {
	var acks []ticket.TicketAck
	err := r.db.Preload("AddedBy").Where("ticket_id = ?", ticketID).Order("created_at").Find(&acks).Error
	return acks, err
}

// GetAck looks the acknowledgement up within its ticket so that an id from
// another ticket reads as missing.
func (r *DBAckRepo) GetAck(ticketID, ackID uint) (ticket.TicketAck, error) {
	var a ticket.TicketAck
	err := r.db.Where("ticket_id = ? AND id = ?", ticketID, ackID).First(&a).Error
	return a, notFound(err)
}

func (r *DBAckRepo) CreateAck(a *ticket.TicketAck) error {
	return r.db.Omit("AddedBy").Create(a).Error
}

func (r *DBAckRepo) DeleteAck(id uint) error {
	return r.db.Delete(&ticket.TicketAck{}, id).Error
}

func (r *DBAckRepo) WithTx(tx *gorm.DB) AckRepo {
	if tx == nil {
		return r
	}
	return &DBAckRepo{
		db: tx,
	}
}
