package application

import (
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/grant-tracker/internal/domain/audit"
	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/permission"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/transaction"
	"github.com/linskybing/grant-tracker/internal/domain/user"
	"github.com/linskybing/grant-tracker/internal/events"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/linskybing/grant-tracker/internal/repository/mock"
	"github.com/linskybing/grant-tracker/pkg/storage"
	"github.com/linskybing/grant-tracker/pkg/utils"
	"github.com/shopspring/decimal"
)

type repoMocks struct {
	grant       *mock.MockGrantRepo
	topic       *mock.MockTopicRepo
	ticket      *mock.MockTicketRepo
	ack         *mock.MockAckRepo
	document    *mock.MockDocumentRepo
	transaction *mock.MockTransactionRepo
	cluster     *mock.MockClusterRepo
	user        *mock.MockUserRepo
	audit       *mock.MockAuditRepo
}

type recordedEvents struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordedEvents) Publish(e events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordedEvents) kinds() []events.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Kind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

func setupServiceMocks(t *testing.T) (*Services, *repoMocks, *recordedEvents, *storage.MemoryStore, *gin.Context) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &repoMocks{
		grant:       mock.NewMockGrantRepo(ctrl),
		topic:       mock.NewMockTopicRepo(ctrl),
		ticket:      mock.NewMockTicketRepo(ctrl),
		ack:         mock.NewMockAckRepo(ctrl),
		document:    mock.NewMockDocumentRepo(ctrl),
		transaction: mock.NewMockTransactionRepo(ctrl),
		cluster:     mock.NewMockClusterRepo(ctrl),
		user:        mock.NewMockUserRepo(ctrl),
		audit:       mock.NewMockAuditRepo(ctrl),
	}
	repos := &repository.Repos{
		Grant:       m.grant,
		Topic:       m.topic,
		Ticket:      m.ticket,
		Ack:         m.ack,
		Document:    m.document,
		Transaction: m.transaction,
		Cluster:     m.cluster,
		User:        m.user,
		Audit:       m.audit,
	}

	// override utils
	oldAudit := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(*gin.Context, audit.Entry, repository.AuditRepo) {}
	t.Cleanup(func() { utils.LogAuditWithConsole = oldAudit })

	rec := &recordedEvents{}
	store := storage.NewMemoryStore()
	svcs := New(repos, ticket.DefaultLifecycle(), store, rec)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", "/", nil)
	return svcs, m, rec, store, ctx
}

// --- fixtures ---

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func uintPtr(v uint) *uint {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

var (
	supervisor = permission.Actor{UserID: 1, Staff: true, Supervisor: true}
	topicAdmin = permission.Actor{UserID: 2, Staff: true}
	requester  = permission.Actor{UserID: 3}
	stranger   = permission.Actor{UserID: 4}
)

func openTopic(id uint) grant.Topic {
	return grant.Topic{
		ID:             id,
		Name:           "Photography",
		GrantID:        1,
		OpenForTickets: true,
		TicketMedia:    true,
		TicketExpenses: true,
		Admins:         []user.User{{UID: topicAdmin.UserID, Username: "admin", IsStaff: true}},
	}
}

func ticketFixture(id uint, status ticket.Status, rating int, amounts ...string) ticket.Ticket {
	topic := openTopic(10)
	t := ticket.Ticket{
		ID:               id,
		Summary:          "Trip",
		TopicID:          &topic.ID,
		Topic:            &topic,
		RequestedUserID:  uintPtr(requester.UserID),
		Status:           status,
		RatingPercentage: intPtr(rating),
		ClusterID:        uintPtr(id),
		PaymentStatus:    ticket.PaymentNotApplicable,
	}
	for _, a := range amounts {
		t.Expeditures = append(t.Expeditures, ticket.Expediture{TicketID: id, Description: "train", Amount: dec(a)})
	}
	return t
}

func txFixture(id uint, amount string, ticketIDs ...uint) transaction.Transaction {
	tx := transaction.Transaction{ID: id, Amount: dec(amount), OtherPartyText: "Alice"}
	for _, tid := range ticketIDs {
		tx.Tickets = append(tx.Tickets, ticket.Ticket{ID: tid})
	}
	return tx
}

func anonymousActor() permission.Actor {
	return permission.Actor{}
}
