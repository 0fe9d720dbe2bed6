package permission

import (
	"testing"

	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

const (
	requesterID uint = 10
	adminID     uint = 20
	strangerID  uint = 30
	bossID      uint = 40
)

var allStatuses = []ticket.Status{
	ticket.StatusNew,
	ticket.StatusSubmitted,
	ticket.StatusAccepted,
	ticket.StatusPartiallyPaid,
	ticket.StatusPaid,
	ticket.StatusRejected,
}

func ticketIn(s ticket.Status) ticket.Ticket {
	uid := requesterID
	return ticket.Ticket{ID: 1, Status: s, RequestedUserID: &uid}
}

func TestForTicket_Requester(t *testing.T) {
	r := NewResolver(nil)
	a := Actor{UserID: requesterID}
	want := map[ticket.Status]Permissions{
		ticket.StatusNew:           {CanEdit: true, CanSeeDocuments: true, CanEditDocuments: true},
		ticket.StatusSubmitted:     {CanEdit: true, CanSeeDocuments: true, CanEditDocuments: true},
		ticket.StatusAccepted:      {CanSeeDocuments: true, CanEditDocuments: true},
		ticket.StatusPartiallyPaid: {CanSeeDocuments: true, CanEditDocuments: true},
		ticket.StatusPaid:          {CanSeeDocuments: true},
		ticket.StatusRejected:      {CanSeeDocuments: true},
	}
	for s, p := range want {
		assert.Equal(t, p, r.ForTicket(a, ticketIn(s), []uint{adminID}), "status %s", s)
	}
}

func TestForTicket_TopicAdmin(t *testing.T) {
	r := NewResolver(nil)
	a := Actor{UserID: adminID}
	for _, s := range allStatuses {
		p := r.ForTicket(a, ticketIn(s), []uint{adminID})
		assert.True(t, p.IsTopicAdmin, s)
		assert.False(t, p.IsSupervisor, s)
		assert.True(t, p.CanSeeDocuments, s)
		assert.True(t, p.CanEditDocuments, s)
		assert.Equal(t, !r.Lifecycle.IsTerminal(s), p.CanEdit, s)
		assert.False(t, p.CanAdminister, "non-staff admin %s", s)
	}
}

func TestForTicket_AdminOfOtherTopic(t *testing.T) {
	r := NewResolver(nil)
	p := r.ForTicket(Actor{UserID: strangerID, Staff: true}, ticketIn(ticket.StatusSubmitted), []uint{adminID})
	assert.Equal(t, Permissions{}, p)
}

func TestForTicket_Supervisor(t *testing.T) {
	r := NewResolver(nil)
	a := Actor{UserID: bossID, Staff: true, Supervisor: true}
	p := r.ForTicket(a, ticketIn(ticket.StatusAccepted), nil)
	assert.Equal(t, Permissions{
		CanEdit:          true,
		CanSeeDocuments:  true,
		CanEditDocuments: true,
		IsTopicAdmin:     true,
		IsSupervisor:     true,
		CanAdminister:    true,
	}, p)

	p = r.ForTicket(a, ticketIn(ticket.StatusRejected), nil)
	assert.False(t, p.CanEdit)
	assert.True(t, p.CanEditDocuments)
}

func TestForTicket_Anonymous(t *testing.T) {
	r := NewResolver(nil)
	for _, s := range allStatuses {
		assert.Equal(t, Permissions{}, r.ForTicket(Actor{}, ticketIn(s), []uint{0, adminID}))
	}
}

func TestForTicket_UnassignedTicket(t *testing.T) {
	r := NewResolver(nil)
	tk := ticket.Ticket{ID: 2, Status: ticket.StatusSubmitted, RequestedText: "someone"}
	assert.Equal(t, Permissions{}, r.ForTicket(Actor{UserID: requesterID}, tk, nil))
}

func TestForTicket_RequesterWhoIsAdmin(t *testing.T) {
	r := NewResolver(nil)
	a := Actor{UserID: requesterID, Staff: true}
	p := r.ForTicket(a, ticketIn(ticket.StatusAccepted), []uint{requesterID})
	assert.True(t, p.CanEdit)
	assert.True(t, p.CanAdminister)
}

func TestForTicket_CustomLifecycle(t *testing.T) {
	l, err := ticket.ParseLifecycle([]byte(`
new: {transitions: [submitted], requester_edit: true, requester_docs_edit: true}
submitted: {transitions: [accepted, rejected]}
accepted: {transitions: [paid]}
partially_paid: {transitions: [paid]}
paid: {terminal: true}
rejected: {terminal: true}
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	r := NewResolver(l)
	p := r.ForTicket(Actor{UserID: requesterID}, ticketIn(ticket.StatusSubmitted), nil)
	assert.False(t, p.CanEdit)
	assert.False(t, p.CanEditDocuments)
	assert.True(t, p.CanSeeDocuments)
}

func TestForTopic(t *testing.T) {
	r := NewResolver(nil)
	topic := grant.Topic{ID: 3, Admins: []user.User{{UID: adminID}}}

	p := r.ForTopic(Actor{UserID: adminID, Staff: true}, topic)
	assert.True(t, p.IsTopicAdmin)
	assert.True(t, p.CanEdit)
	assert.True(t, p.CanAdminister)

	p = r.ForTopic(Actor{UserID: bossID, Supervisor: true}, topic)
	assert.True(t, p.IsTopicAdmin)
	assert.True(t, p.IsSupervisor)
	assert.False(t, p.CanAdminister)

	assert.Equal(t, Permissions{}, r.ForTopic(Actor{UserID: strangerID, Staff: true}, topic))
	assert.Equal(t, Permissions{}, r.ForTopic(Actor{}, topic))
}

func TestActorFromUser(t *testing.T) {
	assert.True(t, ActorFromUser(nil).Anonymous())
	a := ActorFromUser(&user.User{UID: 5, IsStaff: true, IsSupervisor: true})
	assert.Equal(t, Actor{UserID: 5, Staff: true, Supervisor: true}, a)
}
