package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/grant-tracker/internal/domain/audit"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketHistory(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusAccepted, 100), nil)
	m.audit.EXPECT().ResourceHistory(audit.ResourceTicket, uint(1)).Return([]audit.AuditLog{
		{ID: 1, Action: audit.ActionCreate, ResourceType: audit.ResourceTicket, ResourceID: 1},
		{ID: 2, Action: audit.ActionReview, ResourceType: audit.ResourceTicket, ResourceID: 1},
	}, nil)

	logs, err := svcs.Audit.TicketHistory(1)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, audit.ActionReview, logs[1].Action)
}

func TestTicketHistory_UnknownTicket(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(9)).Return(ticket.Ticket{}, repository.ErrNotFound)

	_, err := svcs.Audit.TicketHistory(9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCleanupOldLogs(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	m.audit.EXPECT().PurgeAuditLogsBefore(gomock.Any()).DoAndReturn(func(cutoff time.Time) (int64, error) {
		assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), cutoff, time.Minute)
		return 4, nil
	})

	n, err := svcs.Audit.CleanupOldLogs(30)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	_, err = svcs.Audit.CleanupOldLogs(0)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}
