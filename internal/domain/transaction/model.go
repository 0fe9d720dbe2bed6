package transaction

import (
	"strings"
	"time"

	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/user"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Transaction is a movement on the grant bank account. Its amount is
// attributed to whatever tickets it is linked to.
type Transaction struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Date           datatypes.Date  `gorm:"not null;index" json:"date"`
	OtherPartyID   *uint           `json:"other_party_id"`
	OtherParty     *user.User      `gorm:"foreignKey:OtherPartyID;references:UID" json:"other_party,omitempty"`
	OtherPartyText string          `gorm:"size:60" json:"other_party_text,omitempty"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Description    string          `gorm:"size:255" json:"description"`
	AccountingInfo string          `gorm:"size:255" json:"accounting_info"`
	ClusterID      *uint           `gorm:"index" json:"cluster_id"`
	Tickets        []ticket.Ticket `gorm:"many2many:transaction_tickets;joinForeignKey:TransactionID;joinReferences:TicketID" json:"tickets,omitempty"`
	CreatedAt      time.Time       `json:"created"`
	UpdatedAt      time.Time       `json:"updated"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// OtherPartyName is the user's display name when the counterparty is a
// tracker user, otherwise the free text.
func (t Transaction) OtherPartyName() string {
	if t.OtherParty != nil {
		return t.OtherParty.DisplayName()
	}
	return t.OtherPartyText
}

func (t Transaction) TicketIDs() []uint {
	ids := make([]uint, 0, len(t.Tickets))
	for _, tk := range t.Tickets {
		ids = append(ids, tk.ID)
	}
	return ids
}

// Grants lists the distinct grants of the linked tickets' topics, in the
// order they are first seen. Tickets must be loaded with Topic.Grant.
func (t Transaction) Grants() []grant.Grant {
	seen := map[uint]bool{}
	var out []grant.Grant
	for _, tk := range t.Tickets {
		if tk.Topic == nil || tk.Topic.Grant == nil {
			continue
		}
		g := *tk.Topic.Grant
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		out = append(out, g)
	}
	return out
}

func (t Transaction) GrantShortNames() string {
	names := make([]string, 0, len(t.Tickets))
	for _, g := range t.Grants() {
		names = append(names, g.ShortName)
	}
	return strings.Join(names, " ")
}

// Cluster groups tickets and transactions that settle together: any two
// tickets sharing a transaction end up in the same cluster. The id equals the
// smallest member ticket id.
type Cluster struct {
	ID           uint            `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Tickets      []ticket.Ticket `gorm:"foreignKey:ClusterID" json:"tickets,omitempty"`
	Transactions []Transaction   `gorm:"foreignKey:ClusterID" json:"transactions,omitempty"`
}

func (Cluster) TableName() string {
	return "clusters"
}
