package ticket

import (
	"strings"
	"time"

	"github.com/linskybing/grant-tracker/internal/domain/user"
)

type AckType string

const (
	AckUserPrecontent AckType = "user_precontent"
	AckPrecontent     AckType = "precontent"
	AckUserContent    AckType = "user_content"
	AckContent        AckType = "content"
	AckUserDocs       AckType = "user_docs"
	AckDocs           AckType = "docs"
	AckArchive        AckType = "archive"
	AckClose          AckType = "close"
)

var ackLabels = map[AckType]string{
	AckUserPrecontent: "presubmitted",
	AckPrecontent:     "precontent confirmed",
	AckUserContent:    "content submitted",
	AckContent:        "content confirmed",
	AckUserDocs:       "documents submitted",
	AckDocs:           "documents confirmed",
	AckArchive:        "archived",
	AckClose:          "closed",
}

func (a AckType) Valid() bool {
	_, ok := ackLabels[a]
	return ok
}

func (a AckType) Label() string {
	if l, ok := ackLabels[a]; ok {
		return l
	}
	return string(a)
}

// UserRemovable reports whether the requester may take the acknowledgement
// back. Only the user_* confirmations qualify.
func (a AckType) UserRemovable() bool {
	return strings.HasPrefix(string(a), "user_")
}

type TicketAck struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	TicketID  uint       `gorm:"not null;index" json:"ticket_id"`
	AckType   AckType    `gorm:"size:32;not null" json:"ack_type"`
	Comment   string     `gorm:"size:255" json:"comment"`
	AddedByID *uint      `json:"added_by_id"`
	AddedBy   *user.User `gorm:"foreignKey:AddedByID;references:UID" json:"added_by,omitempty"`
	CreatedAt time.Time  `json:"created"`
}

func (TicketAck) TableName() string {
	return "ticket_acks"
}

func (a TicketAck) UserRemovable() bool {
	return a.AckType.UserRemovable()
}
