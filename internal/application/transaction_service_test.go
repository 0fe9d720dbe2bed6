package application

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/grant-tracker/internal/domain/finance"
	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/transaction"
	"github.com/linskybing/grant-tracker/internal/events"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCreateTransaction_SupervisorOnly(t *testing.T) {
	svcs, _, _, _, ctx := setupServiceMocks(t)

	_, err := svcs.Transaction.CreateTransaction(ctx, topicAdmin, transaction.TransactionInput{Date: "2024-01-02"})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCreateTransaction_Validation(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.ticket.EXPECT().ListTickets(repository.TicketFilter{IDs: []uint{1, 9}}).
		Return([]ticket.Ticket{{ID: 1}}, nil)

	_, err := svcs.Transaction.CreateTransaction(ctx, supervisor, transaction.TransactionInput{
		Date:      "02.01.2024",
		Amount:    dec("10"),
		TicketIDs: []uint{1, 9},
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "date")
	assert.Contains(t, verr.Fields, "ticket_ids")
	assert.Contains(t, verr.Fields, "other_party")
}

func TestCreateTransaction_AmountOutOfRange(t *testing.T) {
	svcs, _, _, _, ctx := setupServiceMocks(t)

	_, err := svcs.Transaction.CreateTransaction(ctx, supervisor, transaction.TransactionInput{
		Date:           "2024-01-02",
		Amount:         dec("123456789012345.00"),
		OtherPartyText: "Alice",
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "amount")
	assert.Len(t, verr.Fields, 1)
}

func TestCreateTransaction_LinksAndSettles(t *testing.T) {
	svcs, m, rec, _, ctx := setupServiceMocks(t)

	tk := ticketFixture(1, ticket.StatusAccepted, 100, "50")
	m.ticket.EXPECT().ListTickets(repository.TicketFilter{IDs: []uint{1}}).Return([]ticket.Ticket{tk}, nil)
	m.transaction.EXPECT().CreateTransaction(gomock.Any()).DoAndReturn(func(tx *transaction.Transaction) error {
		assert.Equal(t, "2024-01-02", time.Time(tx.Date).Format("2006-01-02"))
		tx.ID = 10
		return nil
	})
	m.transaction.EXPECT().ReplaceTickets(gomock.Any(), []uint{1}).Return(nil)
	m.ticket.EXPECT().ListTicketIDs().Return([]uint{1}, nil)
	m.transaction.EXPECT().ListLinks().Return([]finance.Link{{TicketID: 1, TransactionID: 10}}, nil)
	m.cluster.EXPECT().Reset().Return(nil)
	m.cluster.EXPECT().SaveComponent(finance.Component{ID: 1, TicketIDs: []uint{1}, TransactionIDs: []uint{10}}).Return(nil)
	m.cluster.EXPECT().GetClusterByID(uint(1)).Return(transaction.Cluster{
		ID:           1,
		Tickets:      []ticket.Ticket{tk},
		Transactions: []transaction.Transaction{txFixture(10, "50", 1)},
	}, nil)
	m.ticket.EXPECT().UpdateSettlement(uint(1), ticket.StatusPaid, ticket.PaymentPaid).Return(nil)

	tx, err := svcs.Transaction.CreateTransaction(ctx, supervisor, transaction.TransactionInput{
		Date:           "2024-01-02",
		OtherPartyText: "Alice",
		Amount:         dec("50"),
		TicketIDs:      []uint{1},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(10), tx.ID)
	assert.Equal(t, []events.Kind{events.TransactionSaved}, rec.kinds())
}

func TestDeleteTransaction(t *testing.T) {
	svcs, m, rec, _, ctx := setupServiceMocks(t)

	m.transaction.EXPECT().GetTransactionByID(uint(10)).Return(txFixture(10, "5"), nil)
	m.transaction.EXPECT().DeleteTransaction(uint(10)).Return(nil)
	m.ticket.EXPECT().ListTicketIDs().Return(nil, nil)
	m.transaction.EXPECT().ListLinks().Return(nil, nil)
	m.cluster.EXPECT().Reset().Return(nil)

	require.NoError(t, svcs.Transaction.DeleteTransaction(ctx, supervisor, 10))
	assert.Equal(t, []events.Kind{events.TransactionDeleted}, rec.kinds())
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.transaction.EXPECT().GetTransactionByID(uint(10)).Return(transaction.Transaction{}, repository.ErrNotFound)

	err := svcs.Transaction.DeleteTransaction(ctx, supervisor, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListTransactions_Total(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	m.transaction.EXPECT().ListTransactions().Return([]transaction.Transaction{txFixture(1, "10.50"), txFixture(2, "-0.25")}, nil)

	out, err := svcs.Transaction.ListTransactions()
	require.NoError(t, err)
	assert.Len(t, out.Transactions, 2)
	assertDec(t, "10.25", out.Total)
}

func TestExportCSV(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	g := &grant.Grant{ID: 1, ShortName: "CF"}
	tx := txFixture(1, "12.5")
	tx.Date = datatypes.Date(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	tx.Description = "train; return"
	tx.Tickets = []ticket.Ticket{{ID: 3, Topic: &grant.Topic{Grant: g}}, {ID: 4, Topic: &grant.Topic{Grant: g}}}
	m.transaction.EXPECT().ListTransactions().Return([]transaction.Transaction{tx}, nil)

	var buf bytes.Buffer
	require.NoError(t, svcs.Transaction.ExportCSV(&buf, "CZK"))
	lines := strings.Split(buf.String(), "\r\n")
	assert.Equal(t, "DATE;OTHER PARTY;AMOUNT CZK;DESCRIPTION;TICKETS;GRANTS;ACCOUNTING INFO", lines[0])
	assert.Equal(t, "2024-03-04;Alice;12.50;train, return;3 4;CF;", lines[1])
}
