package audit

import (
	"time"

	"gorm.io/datatypes"
)

// Resource names the kind of tracker record an audit row is about.
type Resource string

const (
	ResourceTicket      Resource = "ticket"
	ResourceTicketAck   Resource = "ticket_ack"
	ResourceDocument    Resource = "document"
	ResourceTransaction Resource = "transaction"
	ResourceTopic       Resource = "topic"
	ResourceGrant       Resource = "grant"
	ResourceUserDetails Resource = "user_details"
	ResourceCluster     Resource = "cluster"
)

var resources = []Resource{
	ResourceTicket,
	ResourceTicketAck,
	ResourceDocument,
	ResourceTransaction,
	ResourceTopic,
	ResourceGrant,
	ResourceUserDetails,
	ResourceCluster,
}

// ParseResource accepts only the resource names the tracker writes.
func ParseResource(s string) (Resource, bool) {
	for _, r := range resources {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

type Action string

const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionReview  Action = "review"
	ActionRebuild Action = "rebuild"
)

// Entry is what a service hands over to be audited. Before and After are
// stored as JSON.
type Entry struct {
	Action      Action
	Resource    Resource
	ResourceID  uint
	Before      any
	After       any
	Description string
}

// AuditLog records who changed what. OldData and NewData hold the JSON form
// of the resource before and after the change.
type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"index" json:"user_id"`
	Action       Action         `gorm:"size:32;not null;index" json:"action"`
	ResourceType Resource       `gorm:"size:32;not null;index:idx_audit_resource" json:"resource_type"`
	ResourceID   uint           `gorm:"index:idx_audit_resource" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty"`
	NewData      datatypes.JSON `json:"new_data,omitempty"`
	IPAddress    string         `gorm:"size:64" json:"ip_address"`
	UserAgent    string         `gorm:"size:255" json:"user_agent"`
	Description  string         `gorm:"type:text" json:"description"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
