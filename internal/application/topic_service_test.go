package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/user"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicTable(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	t10, t11 := openTopic(10), openTopic(11)
	t10.FormDescription = "Link your photos."
	t11.TicketMedia = false
	m.topic.EXPECT().ListTopics().Return([]grant.Topic{t10, t11}, nil)

	table, err := svcs.Topic.TopicTable()
	require.NoError(t, err)
	assert.Equal(t, grant.TopicFormInfo{FormDescription: "Link your photos.", TicketMedia: true, TicketExpenses: true}, table[10])
	assert.False(t, table[11].TicketMedia)
}

func TestGetTopic(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	tk := ticketFixture(1, ticket.StatusAccepted, 100, "40")
	m.topic.EXPECT().GetTopicByID(uint(10)).Return(openTopic(10), nil)
	m.ticket.EXPECT().ListTickets(repository.TicketFilter{TopicIDs: []uint{10}}).Return([]ticket.Ticket{tk}, nil)
	m.transaction.EXPECT().ListTransactionsByTicketIDs([]uint{1}).Return(nil, nil)

	d, err := svcs.Topic.GetTopic(topicAdmin, 10)
	require.NoError(t, err)
	assert.Len(t, d.Tickets, 1)
	assertDec(t, "40", d.Finance.Unpaid)
	assert.True(t, d.Permissions.CanAdminister)
}

func TestCreateTopic(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.grant.EXPECT().GetGrantByID(uint(1)).Return(grant.Grant{ID: 1}, nil).Times(2)
	m.user.EXPECT().ListUsersByIDs([]uint{2}).Return([]user.User{{UID: 2}}, nil)
	m.user.EXPECT().ListUsersByIDs([]uint{2, 8}).Return([]user.User{{UID: 2}}, nil)
	m.topic.EXPECT().CreateTopic(gomock.Any()).DoAndReturn(func(tp *grant.Topic) error {
		tp.ID = 12
		return nil
	})
	m.topic.EXPECT().ReplaceAdmins(gomock.Any(), []user.User{{UID: 2}}).Return(nil)

	tp, err := svcs.Topic.CreateTopic(ctx, supervisor, grant.CreateTopicDTO{Name: "Maps", GrantID: 1, AdminIDs: []uint{2}})
	require.NoError(t, err)
	assert.Equal(t, uint(12), tp.ID)
	assert.Equal(t, []uint{2}, tp.AdminIDs())

	_, err = svcs.Topic.CreateTopic(ctx, supervisor, grant.CreateTopicDTO{Name: "Maps", GrantID: 1, AdminIDs: []uint{2, 8}})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	_, err = svcs.Topic.CreateTopic(ctx, topicAdmin, grant.CreateTopicDTO{Name: "Maps", GrantID: 1})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUpdateTopic_AdminCannotMoveOrReassign(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.topic.EXPECT().GetTopicByID(uint(10)).Return(openTopic(10), nil).Times(4)
	m.topic.EXPECT().UpdateTopic(gomock.Any()).Return(nil)

	_, err := svcs.Topic.UpdateTopic(ctx, topicAdmin, 10, grant.UpdateTopicDTO{GrantID: uintPtr(2)})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	admins := []uint{2, 3}
	_, err = svcs.Topic.UpdateTopic(ctx, topicAdmin, 10, grant.UpdateTopicDTO{AdminIDs: &admins})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svcs.Topic.UpdateTopic(ctx, requester, 10, grant.UpdateTopicDTO{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	closed := false
	tp, err := svcs.Topic.UpdateTopic(ctx, topicAdmin, 10, grant.UpdateTopicDTO{OpenForTickets: &closed, Name: strPtr("Photos")})
	require.NoError(t, err)
	assert.False(t, tp.OpenForTickets)
	assert.Equal(t, "Photos", tp.Name)
}

func TestUpdateTopic_SupervisorReassigns(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.topic.EXPECT().GetTopicByID(uint(10)).Return(openTopic(10), nil)
	m.grant.EXPECT().GetGrantByID(uint(2)).Return(grant.Grant{ID: 2}, nil)
	m.user.EXPECT().ListUsersByIDs([]uint{5}).Return([]user.User{{UID: 5}}, nil)
	m.topic.EXPECT().UpdateTopic(gomock.Any()).Return(nil)
	m.topic.EXPECT().ReplaceAdmins(gomock.Any(), []user.User{{UID: 5}}).Return(nil)

	admins := []uint{5}
	tp, err := svcs.Topic.UpdateTopic(ctx, supervisor, 10, grant.UpdateTopicDTO{GrantID: uintPtr(2), AdminIDs: &admins})
	require.NoError(t, err)
	assert.Equal(t, uint(2), tp.GrantID)
	assert.Equal(t, []uint{5}, tp.AdminIDs())
}

func TestListAdministeredTopics(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	m.topic.EXPECT().ListTopics().Return([]grant.Topic{openTopic(10), openTopic(11)}, nil)
	m.topic.EXPECT().ListTopicsByAdmin(topicAdmin.UserID).Return([]grant.Topic{openTopic(10)}, nil)

	all, err := svcs.Topic.ListAdministeredTopics(supervisor)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svcs.Topic.ListAdministeredTopics(topicAdmin)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
