package ticket

import (
	"time"

	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/user"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentNotApplicable PaymentStatus = "n_a"
	PaymentUnpaid        PaymentStatus = "unpaid"
	PaymentPartial       PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
	PaymentOverpaid      PaymentStatus = "overpaid"
)

// Ticket is a single request for support filed against a topic.
// A nil RequestedUserID marks an unassigned ticket; RequestedText then holds
// the free-form name of whoever asked.
// SupervisorNotes never leave the service on the model itself; callers that
// are allowed to read them copy the field onto their own response type.
type Ticket struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time     `json:"created"`
	UpdatedAt        time.Time     `json:"updated"`
	SortDate         time.Time     `gorm:"index" json:"sort_date"`
	EventDate        *time.Time    `gorm:"type:date" json:"event_date,omitempty"`
	Summary          string        `gorm:"size:100;not null" json:"summary"`
	Description      string        `gorm:"type:text" json:"description"`
	TopicID          *uint         `gorm:"index" json:"topic_id"`
	Topic            *grant.Topic  `gorm:"foreignKey:TopicID" json:"topic,omitempty"`
	RequestedUserID  *uint         `gorm:"index" json:"requested_user_id"`
	RequestedUser    *user.User    `gorm:"foreignKey:RequestedUserID;references:UID" json:"requested_user,omitempty"`
	RequestedText    string        `gorm:"size:30" json:"requested_text,omitempty"`
	Status           Status        `gorm:"size:20;not null;default:'new'" json:"status"`
	RatingPercentage *int          `json:"rating_percentage"`
	FuzzyRating      bool          `gorm:"default:false" json:"fuzzy_rating"`
	SupervisorNotes  string        `gorm:"type:text" json:"-"`
	ClusterID        *uint         `gorm:"index" json:"cluster_id"`
	PaymentStatus    PaymentStatus `gorm:"size:20;not null;default:'n_a'" json:"payment_status"`

	MediaInfos  []MediaInfo  `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"media_info,omitempty"`
	Expeditures []Expediture `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"expeditures,omitempty"`
	Acks        []TicketAck  `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"acks,omitempty"`
	Documents   []Document   `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// RequestedBy is the display name of the requester.
func (t Ticket) RequestedBy() string {
	if t.RequestedUser != nil {
		return t.RequestedUser.Username
	}
	return t.RequestedText
}

func (t Ticket) IsRequester(uid uint) bool {
	return uid != 0 && t.RequestedUserID != nil && *t.RequestedUserID == uid
}

type MediaInfo struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	TicketID    uint   `gorm:"not null;index" json:"ticket_id"`
	URL         string `gorm:"size:255" json:"url"`
	Description string `gorm:"size:255" json:"description"`
	Count       *int   `json:"count"`
}

func (MediaInfo) TableName() string {
	return "ticket_media_info"
}

type Expediture struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	TicketID    uint            `gorm:"not null;index" json:"ticket_id"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
}

func (Expediture) TableName() string {
	return "ticket_expeditures"
}

// Document is a file attached to a ticket. The payload lives in the object
// store under ObjectKey.
type Document struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TicketID    uint      `gorm:"not null;uniqueIndex:idx_ticket_filename" json:"ticket_id"`
	Filename    string    `gorm:"size:120;not null;uniqueIndex:idx_ticket_filename" json:"filename"`
	Size        int64     `json:"size"`
	ContentType string    `gorm:"size:64" json:"content_type"`
	Description string    `gorm:"size:255" json:"description"`
	ObjectKey   string    `gorm:"size:300;not null" json:"-"`
	CreatedAt   time.Time `json:"created"`
}

func (Document) TableName() string {
	return "ticket_documents"
}
