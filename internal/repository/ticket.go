package repository

import (
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TicketFilter narrows ListTickets. Zero values do not filter.
type TicketFilter struct {
	TopicIDs        []uint
	GrantID         *uint
	RequestedUserID *uint
	Unassigned      bool
	IDs             []uint
	ClusterID       *uint
}

type TicketRepo interface {
	ListTickets(f TicketFilter) ([]ticket.Ticket, error)
	ListTicketIDs() ([]uint, error)
	GetTicketByID(id uint) (ticket.Ticket, error)
	CreateTicket(t *ticket.Ticket) error
	UpdateTicket(t *ticket.Ticket) error
	ReplaceMediaInfo(ticketID uint, rows []ticket.MediaInfo) error
	ReplaceExpeditures(ticketID uint, rows []ticket.Expediture) error
	UpdateSettlement(id uint, status ticket.Status, payment ticket.PaymentStatus) error
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{
		db: db,
	}
}

func (r *DBTicketRepo) ListTickets(f TicketFilter) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	q := r.db.Model(&ticket.Ticket{}).
		Preload("Topic.Grant").
		Preload("RequestedUser").
		Preload("MediaInfos").
		Preload("Expeditures")

	if len(f.TopicIDs) > 0 {
		q = q.Where("tickets.topic_id IN ?", f.TopicIDs)
	}
	if f.GrantID != nil {
		q = q.Joins("JOIN topics tp ON tp.id = tickets.topic_id").Where("tp.grant_id = ?", *f.GrantID)
	}
	if f.RequestedUserID != nil {
		q = q.Where("tickets.requested_user_id = ?", *f.RequestedUserID)
	}
	if f.Unassigned {
		q = q.Where("tickets.requested_user_id IS NULL")
	}
	if len(f.IDs) > 0 {
		q = q.Where("tickets.id IN ?", f.IDs)
	}
	if f.ClusterID != nil {
		q = q.Where("tickets.cluster_id = ?", *f.ClusterID)
	}

	err := q.Order("tickets.sort_date DESC, tickets.id DESC").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListTicketIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&ticket.Ticket{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (r *DBTicketRepo) GetTicketByID(id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.
		Preload("Topic.Grant").
		Preload("Topic.Admins").
		Preload("RequestedUser").
		Preload("MediaInfos").
		Preload("Expeditures").
		Preload("Acks", func(db *gorm.DB) *gorm.DB {
			return db.Order("ticket_acks.created_at")
		}).
		Preload("Acks.AddedBy").
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("ticket_documents.filename")
		}).
		First(&t, id).Error
	return t, notFound(err)
}

// CreateTicket inserts the ticket together with its media and expense rows.
func (r *DBTicketRepo) CreateTicket(t *ticket.Ticket) error {
	return r.db.Omit("Topic", "RequestedUser", "Acks", "Documents").Create(t).Error
}

// UpdateTicket saves the ticket row only. Child rows go through the Replace
// methods.
func (r *DBTicketRepo) UpdateTicket(t *ticket.Ticket) error {
	return r.db.Omit(clause.Associations).Save(t).Error
}

func (r *DBTicketRepo) ReplaceMediaInfo(ticketID uint, rows []ticket.MediaInfo) error {
	if err := r.db.Where("ticket_id = ?", ticketID).Delete(&ticket.MediaInfo{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].ID = 0
		rows[i].TicketID = ticketID
	}
	return r.db.Create(&rows).Error
}

func (r *DBTicketRepo) ReplaceExpeditures(ticketID uint, rows []ticket.Expediture) error {
	if err := r.db.Where("ticket_id = ?", ticketID).Delete(&ticket.Expediture{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].ID = 0
		rows[i].TicketID = ticketID
	}
	return r.db.Create(&rows).Error
}

func (r *DBTicketRepo) UpdateSettlement(id uint, status ticket.Status, payment ticket.PaymentStatus) error {
	res := r.db.Model(&ticket.Ticket{}).Where("id = ?", id).UpdateColumns(map[string]any{
		"status":         status,
		"payment_status": payment,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{
		db: tx,
	}
}
