package grant

import "github.com/linskybing/grant-tracker/internal/domain/user"

// Grant is a funding source. Topics are the activities it pays for.
type Grant struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FullName  string  `gorm:"size:80;not null" json:"full_name"`
	ShortName string  `gorm:"size:16;not null" json:"short_name"`
	Slug      string  `gorm:"size:64;not null;uniqueIndex" json:"slug"`
	Topics    []Topic `gorm:"foreignKey:GrantID" json:"topics,omitempty"`
}

func (Grant) TableName() string {
	return "grants"
}

// Topic is what tickets are filed against. The flags decide whether new
// tickets may target it and which child records those tickets carry.
type Topic struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	Name            string      `gorm:"size:80;not null" json:"name"`
	GrantID         uint        `gorm:"not null;index" json:"grant_id"`
	Grant           *Grant      `gorm:"foreignKey:GrantID" json:"grant,omitempty"`
	Description     string      `gorm:"type:text" json:"description"`
	FormDescription string      `gorm:"type:text" json:"form_description"`
	OpenForTickets  bool        `gorm:"default:false" json:"open_for_tickets"`
	TicketMedia     bool        `gorm:"default:false" json:"ticket_media"`
	TicketExpenses  bool        `gorm:"default:false" json:"ticket_expenses"`
	Admins          []user.User `gorm:"many2many:topic_admins;joinForeignKey:TopicID;joinReferences:UserID" json:"admins,omitempty"`
}

func (Topic) TableName() string {
	return "topics"
}

// AdminIDs returns the ids of the topic administrators loaded with the topic.
func (t Topic) AdminIDs() []uint {
	ids := make([]uint, 0, len(t.Admins))
	for _, a := range t.Admins {
		ids = append(ids, a.UID)
	}
	return ids
}
