package application

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/grant-tracker/internal/domain/audit"
	"github.com/linskybing/grant-tracker/internal/domain/finance"
	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/transaction"
	"github.com/linskybing/grant-tracker/internal/events"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/linskybing/grant-tracker/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- CreateTicket ----------

func TestCreateTicket_Success(t *testing.T) {
	svcs, m, rec, _, ctx := setupServiceMocks(t)

	topic := openTopic(10)
	topic.TicketMedia = false
	m.topic.EXPECT().GetTopicByID(uint(10)).Return(topic, nil)
	m.ticket.EXPECT().CreateTicket(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
		tk.ID = 7
		return nil
	})
	m.cluster.EXPECT().SaveComponent(finance.Component{ID: 7, TicketIDs: []uint{7}}).Return(nil)

	got, err := svcs.Ticket.CreateTicket(ctx, requester, ticket.CreateTicketDTO{
		Summary:     "Photos of the castle",
		TopicID:     10,
		EventDate:   "2024-05-01",
		MediaInfo:   []ticket.MediaInfoInput{{URL: "http://example.org/a.jpg", Count: intPtr(3)}},
		Expeditures: []ticket.ExpeditureInput{{Description: "train", Amount: dec("120.456")}},
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusSubmitted, got.Status)
	assert.Equal(t, uint(7), *got.ClusterID)
	assert.Equal(t, requester.UserID, *got.RequestedUserID)
	assert.Empty(t, got.MediaInfos)
	require.Len(t, got.Expeditures, 1)
	assertDec(t, "120.46", got.Expeditures[0].Amount)
	assert.Equal(t, "2024-05-01", got.SortDate.Format("2006-01-02"))
	assert.Equal(t, []events.Kind{events.TicketCreated}, rec.kinds())
}

func TestCreateTicket_AmountOutOfRange(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.topic.EXPECT().GetTopicByID(uint(10)).Return(openTopic(10), nil)

	_, err := svcs.Ticket.CreateTicket(ctx, requester, ticket.CreateTicketDTO{
		Summary: "Expensive trip",
		TopicID: 10,
		Expeditures: []ticket.ExpeditureInput{
			{Description: "train", Amount: dec("12.50")},
			{Description: "yacht", Amount: dec("123456789012345.00")},
		},
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "expeditures[1].amount")
	assert.NotContains(t, verr.Fields, "expeditures[0].amount")
}

func TestCreateTicket_ClosedTopic(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	topic := openTopic(10)
	topic.OpenForTickets = false
	m.topic.EXPECT().GetTopicByID(uint(10)).Return(topic, nil)

	_, err := svcs.Ticket.CreateTicket(ctx, requester, ticket.CreateTicketDTO{Summary: "x", TopicID: 10})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "topic_id")
}

func TestCreateTicket_UnknownTopic(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.topic.EXPECT().GetTopicByID(uint(11)).Return(grant.Topic{}, repository.ErrNotFound)

	_, err := svcs.Ticket.CreateTicket(ctx, requester, ticket.CreateTicketDTO{Summary: "x", TopicID: 11})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestCreateTicket_Anonymous(t *testing.T) {
	svcs, _, _, _, ctx := setupServiceMocks(t)

	_, err := svcs.Ticket.CreateTicket(ctx, anonymousActor(), ticket.CreateTicketDTO{Summary: "x", TopicID: 10})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

// ---------- UpdateTicket ----------

func TestUpdateTicket_RequesterLockedAfterAccept(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusAccepted, 100, "10"), nil)

	_, err := svcs.Ticket.UpdateTicket(ctx, requester, 1, ticket.UpdateTicketDTO{Summary: strPtr("changed")})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUpdateTicket_ReplacesExpensesAndSettles(t *testing.T) {
	svcs, m, rec, _, ctx := setupServiceMocks(t)

	tk := ticketFixture(1, ticket.StatusSubmitted, 0, "10")
	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(tk, nil)
	m.ticket.EXPECT().UpdateTicket(gomock.Any()).Return(nil)
	m.ticket.EXPECT().ReplaceExpeditures(uint(1), gomock.Any()).DoAndReturn(func(_ uint, rows []ticket.Expediture) error {
		require.Len(t, rows, 2)
		return nil
	})
	m.cluster.EXPECT().GetClusterByID(uint(1)).Return(transaction.Cluster{ID: 1, Tickets: []ticket.Ticket{tk}}, nil)

	exps := []ticket.ExpeditureInput{{Description: "bus", Amount: dec("4")}, {Description: "food", Amount: dec("6")}}
	got, err := svcs.Ticket.UpdateTicket(ctx, requester, 1, ticket.UpdateTicketDTO{
		Summary:     strPtr("changed"),
		Expeditures: &exps,
	})
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Summary)
	assert.Len(t, got.Expeditures, 2)
	assert.Equal(t, []events.Kind{events.TicketUpdated}, rec.kinds())
}

func TestUpdateTicket_NegativeAmountOutOfRange(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusSubmitted, 0, "10"), nil)

	exps := []ticket.ExpeditureInput{{Description: "refund", Amount: dec("-10000000000")}}
	_, err := svcs.Ticket.UpdateTicket(ctx, requester, 1, ticket.UpdateTicketDTO{Expeditures: &exps})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "expeditures[0].amount")
}

func TestUpdateTicket_MoveToTopicWithoutMedia(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	tk := ticketFixture(1, ticket.StatusSubmitted, 0)
	tk.MediaInfos = []ticket.MediaInfo{{ID: 1, TicketID: 1, URL: "u"}}
	target := openTopic(12)
	target.TicketMedia = false
	target.TicketExpenses = false

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(tk, nil)
	m.topic.EXPECT().GetTopicByID(uint(12)).Return(target, nil)
	m.ticket.EXPECT().UpdateTicket(gomock.Any()).Return(nil)
	m.ticket.EXPECT().ReplaceMediaInfo(uint(1), []ticket.MediaInfo(nil)).Return(nil)

	got, err := svcs.Ticket.UpdateTicket(ctx, requester, 1, ticket.UpdateTicketDTO{TopicID: uintPtr(12)})
	require.NoError(t, err)
	assert.Equal(t, uint(12), *got.TopicID)
	assert.Empty(t, got.MediaInfos)
}

// ---------- ReviewTicket ----------

func TestReviewTicket_AcceptSettlesCluster(t *testing.T) {
	svcs, m, rec, _, ctx := setupServiceMocks(t)

	tk := ticketFixture(1, ticket.StatusSubmitted, 0, "200")
	tk.RatingPercentage = nil
	reviewed := ticketFixture(1, ticket.StatusAccepted, 50, "200")

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(tk, nil)
	m.ticket.EXPECT().UpdateTicket(gomock.Any()).DoAndReturn(func(got *ticket.Ticket) error {
		assert.Equal(t, ticket.StatusAccepted, got.Status)
		assert.Equal(t, 50, *got.RatingPercentage)
		return nil
	})
	m.cluster.EXPECT().GetClusterByID(uint(1)).Return(transaction.Cluster{
		ID:           1,
		Tickets:      []ticket.Ticket{reviewed},
		Transactions: []transaction.Transaction{txFixture(1, "100", 1)},
	}, nil)
	m.ticket.EXPECT().UpdateSettlement(uint(1), ticket.StatusPaid, ticket.PaymentPaid).Return(nil)

	got, err := svcs.Ticket.ReviewTicket(ctx, topicAdmin, 1, ticket.ReviewTicketDTO{
		Status:           ticket.StatusAccepted,
		RatingPercentage: intPtr(50),
		SupervisorNotes:  strPtr("half of the trip was private"),
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusAccepted, got.Status)
	assert.Equal(t, []events.Kind{events.TicketReviewed}, rec.kinds())
}

func TestReviewTicket_RejectsPaymentStatus(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusSubmitted, 0), nil)

	_, err := svcs.Ticket.ReviewTicket(ctx, topicAdmin, 1, ticket.ReviewTicketDTO{Status: ticket.StatusPaid})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "status")
}

func TestReviewTicket_InvalidTransition(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusNew, 0), nil)

	_, err := svcs.Ticket.ReviewTicket(ctx, supervisor, 1, ticket.ReviewTicketDTO{Status: ticket.StatusAccepted})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestReviewTicket_ClosedTicketsAreFrozen(t *testing.T) {
	svcs, m, rec, _, ctx := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(7)).Return(ticketFixture(7, ticket.StatusPaid, 100, "50"), nil)
	m.ticket.EXPECT().GetTicketByID(uint(8)).Return(ticketFixture(8, ticket.StatusRejected, 0), nil)

	_, err := svcs.Ticket.ReviewTicket(ctx, topicAdmin, 7, ticket.ReviewTicketDTO{
		Status:           ticket.StatusPaid,
		RatingPercentage: intPtr(10),
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svcs.Ticket.ReviewTicket(ctx, supervisor, 8, ticket.ReviewTicketDTO{
		Status:          ticket.StatusRejected,
		SupervisorNotes: strPtr("changed my mind"),
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Empty(t, rec.kinds())
}

func TestReviewTicket_RequesterDenied(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusSubmitted, 0), nil)

	_, err := svcs.Ticket.ReviewTicket(ctx, requester, 1, ticket.ReviewTicketDTO{Status: ticket.StatusAccepted})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

// ---------- Acks ----------

func TestAddAck(t *testing.T) {
	svcs, m, rec, _, ctx := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusAccepted, 100), nil).Times(2)
	m.ack.EXPECT().CreateAck(gomock.Any()).DoAndReturn(func(a *ticket.TicketAck) error {
		a.ID = 3
		return nil
	})

	ack, err := svcs.Ticket.AddAck(ctx, topicAdmin, 1, ticket.AddAckDTO{AckType: ticket.AckDocs, Comment: "ok"})
	require.NoError(t, err)
	assert.Equal(t, topicAdmin.UserID, *ack.AddedByID)
	assert.Equal(t, []events.Kind{events.AckAdded}, rec.kinds())

	_, err = svcs.Ticket.AddAck(ctx, topicAdmin, 1, ticket.AddAckDTO{AckType: "bogus"})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestRemoveAck_Requester(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusSubmitted, 0), nil).Times(2)
	m.ack.EXPECT().GetAck(uint(1), uint(5)).Return(ticket.TicketAck{ID: 5, TicketID: 1, AckType: ticket.AckDocs}, nil)
	m.ack.EXPECT().GetAck(uint(1), uint(6)).Return(ticket.TicketAck{ID: 6, TicketID: 1, AckType: ticket.AckUserDocs}, nil)
	m.ack.EXPECT().DeleteAck(uint(6)).Return(nil)

	err := svcs.Ticket.RemoveAck(ctx, requester, 1, 5, false)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = svcs.Ticket.RemoveAck(ctx, requester, 1, 6, false)
	assert.NoError(t, err)
}

func TestRemoveAck_AdminRoute(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusPaid, 100), nil).Times(2)
	m.ack.EXPECT().GetAck(uint(1), uint(5)).Return(ticket.TicketAck{ID: 5, TicketID: 1, AckType: ticket.AckClose}, nil).Times(2)
	m.ack.EXPECT().DeleteAck(uint(5)).Return(nil)

	err := svcs.Ticket.RemoveAck(ctx, requester, 1, 5, true)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = svcs.Ticket.RemoveAck(ctx, topicAdmin, 1, 5, true)
	assert.NoError(t, err)
}

// ---------- Detail / lists ----------

func TestGetTicketDetail_HidesDocumentsFromStrangers(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	tk := ticketFixture(1, ticket.StatusAccepted, 50, "200")
	tk.Description = "**bold**"
	tk.SupervisorNotes = "internal"
	tk.Documents = []ticket.Document{{ID: 1, TicketID: 1, Filename: "bill.pdf"}}
	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(tk, nil).Times(2)
	m.transaction.EXPECT().ListTransactionsByTicketIDs([]uint{1}).Return(nil, nil).Times(2)

	d, err := svcs.Ticket.GetTicketDetail(stranger, 1)
	require.NoError(t, err)
	assert.Empty(t, d.Ticket.Documents)
	assert.Empty(t, d.SupervisorNotes)
	assert.Contains(t, d.DescriptionHTML, "<strong>bold</strong>")
	assertDec(t, "100", d.AcceptedExpeditures)

	d, err = svcs.Ticket.GetTicketDetail(requester, 1)
	require.NoError(t, err)
	assert.Len(t, d.Ticket.Documents, 1)
	assert.True(t, d.Permissions.CanSeeDocuments)
	assert.True(t, d.Permissions.CanEditDocuments)
	assert.False(t, d.Permissions.CanEdit)
}

func TestGetTicketDetail_NotesForAdminsOnly(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	tk := ticketFixture(1, ticket.StatusAccepted, 50, "200")
	tk.SupervisorNotes = "internal"
	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(tk, nil).Times(2)
	m.transaction.EXPECT().ListTransactionsByTicketIDs([]uint{1}).Return(nil, nil).Times(2)

	d, err := svcs.Ticket.GetTicketDetail(topicAdmin, 1)
	require.NoError(t, err)
	assert.Equal(t, "internal", d.SupervisorNotes)
	assert.Empty(t, d.Ticket.SupervisorNotes)

	d, err = svcs.Ticket.GetTicketDetail(requester, 1)
	require.NoError(t, err)
	assert.Empty(t, d.SupervisorNotes)
}

func TestReviewTicket_AuditKeepsNotes(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	var entries []audit.Entry
	utils.LogAuditWithConsole = func(_ *gin.Context, e audit.Entry, _ repository.AuditRepo) {
		entries = append(entries, e)
	}

	tk := ticketFixture(1, ticket.StatusSubmitted, 0)
	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(tk, nil)
	m.ticket.EXPECT().UpdateTicket(gomock.Any()).Return(nil)
	m.cluster.EXPECT().GetClusterByID(uint(1)).Return(transaction.Cluster{ID: 1, Tickets: []ticket.Ticket{tk}}, nil)
	m.ticket.EXPECT().UpdateSettlement(uint(1), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := svcs.Ticket.ReviewTicket(ctx, topicAdmin, 1, ticket.ReviewTicketDTO{
		Status:          ticket.StatusRejected,
		SupervisorNotes: strPtr("duplicate of #4"),
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ResourceTicket, entries[0].Resource)
	assert.Equal(t, audit.ActionReview, entries[0].Action)
	after, ok := entries[0].After.(reviewState)
	require.True(t, ok)
	assert.Equal(t, ticket.StatusRejected, after.Status)
	assert.Equal(t, "duplicate of #4", after.SupervisorNotes)
}

func TestListAdminTickets(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	m.topic.EXPECT().ListTopicsByAdmin(topicAdmin.UserID).Return([]grant.Topic{openTopic(10), openTopic(11)}, nil)
	reviewed := ticketFixture(1, ticket.StatusAccepted, 50, "10")
	reviewed.SupervisorNotes = "checked"
	m.ticket.EXPECT().ListTickets(repository.TicketFilter{TopicIDs: []uint{10, 11}}).
		Return([]ticket.Ticket{reviewed}, nil)
	m.ticket.EXPECT().ListTickets(repository.TicketFilter{}).Return(nil, nil)

	items, err := svcs.Ticket.ListAdminTickets(topicAdmin)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assertDec(t, "5", items[0].AcceptedExpeditures)
	assert.Equal(t, "checked", items[0].SupervisorNotes)

	_, err = svcs.Ticket.ListAdminTickets(supervisor)
	require.NoError(t, err)

	_, err = svcs.Ticket.ListAdminTickets(requester)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
