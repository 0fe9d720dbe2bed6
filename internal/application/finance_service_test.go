package application

import (
	"errors"
	"testing"

	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/transaction"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDec(t *testing.T, want string, got interface{ String() string }) {
	t.Helper()
	assert.Equal(t, dec(want).String(), got.String())
}

func TestTopicPaymentSummary_PartialThenOverpaid(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	tk := ticketFixture(1, ticket.StatusAccepted, 50, "200")
	m.topic.EXPECT().GetTopicByID(uint(10)).Return(openTopic(10), nil).Times(2)
	m.ticket.EXPECT().ListTickets(repository.TicketFilter{TopicIDs: []uint{10}}).Return([]ticket.Ticket{tk}, nil).Times(2)
	first := m.transaction.EXPECT().ListTransactionsByTicketIDs([]uint{1}).
		Return([]transaction.Transaction{txFixture(1, "60", 1)}, nil)
	m.transaction.EXPECT().ListTransactionsByTicketIDs([]uint{1}).
		Return([]transaction.Transaction{txFixture(1, "60", 1), txFixture(2, "50", 1)}, nil).After(first)

	sum, err := svcs.Finance.TopicPaymentSummary(10)
	require.NoError(t, err)
	assertDec(t, "100", sum.Accepted)
	assertDec(t, "60", sum.Paid)
	assertDec(t, "0", sum.Overpaid)
	assertDec(t, "40", sum.Unpaid)
	assert.False(t, sum.Fuzzy)

	sum, err = svcs.Finance.TopicPaymentSummary(10)
	require.NoError(t, err)
	assertDec(t, "110", sum.Paid)
	assertDec(t, "10", sum.Overpaid)
	assertDec(t, "0", sum.Unpaid)
}

func TestTopicPaymentSummary_NotFound(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	m.topic.EXPECT().GetTopicByID(uint(99)).Return(grant.Topic{}, repository.ErrNotFound)

	_, err := svcs.Finance.TopicPaymentSummary(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTopicPaymentSummary_NoTickets(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	m.topic.EXPECT().GetTopicByID(uint(10)).Return(openTopic(10), nil)
	m.ticket.EXPECT().ListTickets(repository.TicketFilter{TopicIDs: []uint{10}}).Return(nil, nil)

	sum, err := svcs.Finance.TopicPaymentSummary(10)
	require.NoError(t, err)
	assert.True(t, sum.Accepted.IsZero())
	assert.True(t, sum.Paid.IsZero())
	assert.False(t, sum.Fuzzy)
}

func expectTwoTopicGrant(m *repoMocks) grant.Grant {
	t10, t11 := openTopic(10), openTopic(11)
	m.ticket.EXPECT().ListTickets(repository.TicketFilter{TopicIDs: []uint{10}}).
		Return([]ticket.Ticket{ticketFixture(1, ticket.StatusAccepted, 100, "10")}, nil)
	m.ticket.EXPECT().ListTickets(repository.TicketFilter{TopicIDs: []uint{11}}).
		Return([]ticket.Ticket{ticketFixture(2, ticket.StatusPaid, 100, "20")}, nil)
	m.transaction.EXPECT().ListTransactionsByTicketIDs([]uint{1}).
		Return([]transaction.Transaction{txFixture(1, "5", 1)}, nil)
	m.transaction.EXPECT().ListTransactionsByTicketIDs([]uint{2}).
		Return([]transaction.Transaction{txFixture(2, "20", 2)}, nil)
	return grant.Grant{ID: 1, FullName: "Culture fund", ShortName: "CF", Slug: "cf", Topics: []grant.Topic{t10, t11}}
}

func TestGrantPaymentSummary_SumsTopics(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	g := expectTwoTopicGrant(m)
	m.grant.EXPECT().GetGrantByID(uint(1)).Return(g, nil)

	sum, err := svcs.Finance.GrantPaymentSummary(1)
	require.NoError(t, err)
	assertDec(t, "30", sum.Accepted)
	assertDec(t, "25", sum.Paid)
	assertDec(t, "0", sum.Overpaid)
	assertDec(t, "5", sum.Unpaid)
}

func TestFinanceOverview(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	g := expectTwoTopicGrant(m)
	m.grant.EXPECT().ListGrants().Return([]grant.Grant{g}, nil)
	m.cluster.EXPECT().ListClusters().Return([]transaction.Cluster{
		{
			ID:           1,
			Tickets:      []ticket.Ticket{ticketFixture(1, ticket.StatusAccepted, 100, "10")},
			Transactions: []transaction.Transaction{txFixture(1, "5", 1)},
		},
		{
			ID:           2,
			Tickets:      []ticket.Ticket{ticketFixture(2, ticket.StatusPaid, 100, "20")},
			Transactions: []transaction.Transaction{txFixture(2, "25", 2)},
		},
	}, nil)

	out, err := svcs.Finance.FinanceOverview()
	require.NoError(t, err)
	require.Len(t, out.Grants, 1)
	assert.Nil(t, out.Grants[0].Grant.Topics)
	assert.Len(t, out.Grants[0].Topics, 2)
	assertDec(t, "25", out.ClusterSums.Paid)
	assertDec(t, "5", out.ClusterSums.Overpaid)
	assertDec(t, "5", out.ClusterSums.Unpaid)
	assertDec(t, "30", out.TotalTransactions)
	assert.False(t, out.HaveFuzzy)
}

func TestTicketAcceptedExpeditures(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusAccepted, 75, "10.01", "3"), nil)
	m.ticket.EXPECT().GetTicketByID(uint(2)).Return(ticket.Ticket{}, errors.New("db down"))

	got, err := svcs.Finance.TicketAcceptedExpeditures(1)
	require.NoError(t, err)
	assertDec(t, "9.76", got)

	_, err = svcs.Finance.TicketAcceptedExpeditures(2)
	assert.EqualError(t, err, "db down")
}
