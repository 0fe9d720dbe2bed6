package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGrant_DefaultSlug(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.grant.EXPECT().GetGrantBySlug("cf").Return(grant.Grant{}, repository.ErrNotFound)
	m.grant.EXPECT().CreateGrant(gomock.Any()).DoAndReturn(func(g *grant.Grant) error {
		g.ID = 3
		return nil
	})

	g, err := svcs.Grant.CreateGrant(ctx, supervisor, grant.CreateGrantDTO{FullName: "Culture fund", ShortName: "CF"})
	require.NoError(t, err)
	assert.Equal(t, "cf", g.Slug)
	assert.Equal(t, uint(3), g.ID)
}

func TestCreateGrant_Rejects(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.grant.EXPECT().GetGrantBySlug("cf").Return(grant.Grant{ID: 1, Slug: "cf"}, nil)

	_, err := svcs.Grant.CreateGrant(ctx, topicAdmin, grant.CreateGrantDTO{FullName: "x", ShortName: "CF"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	var verr *ValidationError
	_, err = svcs.Grant.CreateGrant(ctx, supervisor, grant.CreateGrantDTO{FullName: "x", ShortName: "CF"})
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "slug")

	_, err = svcs.Grant.CreateGrant(ctx, supervisor, grant.CreateGrantDTO{FullName: "x", ShortName: "C F"})
	require.True(t, errors.As(err, &verr))
}

func TestGetGrantBySlug(t *testing.T) {
	svcs, m, _, _, _ := setupServiceMocks(t)

	g := expectTwoTopicGrant(m)
	m.grant.EXPECT().GetGrantBySlug("cf").Return(g, nil)
	m.grant.EXPECT().GetGrantBySlug("nope").Return(grant.Grant{}, repository.ErrNotFound)

	d, err := svcs.Grant.GetGrantBySlug("cf")
	require.NoError(t, err)
	assert.Len(t, d.Topics, 2)
	assertDec(t, "30", d.Finance.Accepted)

	_, err = svcs.Grant.GetGrantBySlug("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
