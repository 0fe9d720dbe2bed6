package permission

import (
	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/user"
)

// Actor is the user a permission check is made for. The zero value is an
// anonymous visitor.
type Actor struct {
	UserID     uint
	Staff      bool
	Supervisor bool
}

func ActorFromUser(u *user.User) Actor {
	if u == nil {
		return Actor{}
	}
	return Actor{UserID: u.UID, Staff: u.IsStaff, Supervisor: u.IsSupervisor}
}

func (a Actor) Anonymous() bool {
	return a.UserID == 0
}

type Permissions struct {
	CanEdit          bool `json:"can_edit"`
	CanSeeDocuments  bool `json:"can_see_documents"`
	CanEditDocuments bool `json:"can_edit_documents"`
	IsTopicAdmin     bool `json:"is_topic_admin"`
	IsSupervisor     bool `json:"is_supervisor"`
	CanAdminister    bool `json:"can_administer"`
}

// IsAdmin is true for topic administrators and supervisors alike.
func (p Permissions) IsAdmin() bool {
	return p.IsTopicAdmin || p.IsSupervisor
}

type Resolver struct {
	Lifecycle *ticket.Lifecycle
}

func NewResolver(l *ticket.Lifecycle) *Resolver {
	if l == nil {
		l = ticket.DefaultLifecycle()
	}
	return &Resolver{Lifecycle: l}
}

// ForTicket resolves what the actor may do with t. adminIDs is the admin set
// of the ticket's topic.
func (r *Resolver) ForTicket(a Actor, t ticket.Ticket, adminIDs []uint) Permissions {
	if a.Anonymous() {
		return Permissions{}
	}
	p := r.base(a, adminIDs)
	admin := p.IsAdmin()
	requester := t.IsRequester(a.UserID)

	switch {
	case admin:
		p.CanEdit = !r.Lifecycle.IsTerminal(t.Status)
		p.CanSeeDocuments = true
		p.CanEditDocuments = true
	case requester:
		p.CanEdit = r.Lifecycle.RequesterCanEdit(t.Status)
		p.CanSeeDocuments = true
		p.CanEditDocuments = r.Lifecycle.RequesterCanEditDocuments(t.Status)
	}
	return p
}

// ForTopic resolves the topic-level rights. Edit and document rights follow
// administration of the topic.
func (r *Resolver) ForTopic(a Actor, t grant.Topic) Permissions {
	if a.Anonymous() {
		return Permissions{}
	}
	p := r.base(a, t.AdminIDs())
	if p.IsAdmin() {
		p.CanEdit = true
		p.CanSeeDocuments = true
		p.CanEditDocuments = true
	}
	return p
}

func (r *Resolver) base(a Actor, adminIDs []uint) Permissions {
	p := Permissions{
		IsSupervisor: a.Supervisor,
		IsTopicAdmin: a.Supervisor || contains(adminIDs, a.UserID),
	}
	p.CanAdminister = a.Staff && p.IsAdmin()
	return p
}

func contains(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
