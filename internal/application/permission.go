package application

import (
	"errors"

	"github.com/linskybing/grant-tracker/internal/domain/permission"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/repository"
)

type PermissionService struct {
	Repos    *repository.Repos
	Resolver *permission.Resolver
}

func NewPermissionService(repos *repository.Repos, resolver *permission.Resolver) *PermissionService {
	return &PermissionService{
		Repos:    repos,
		Resolver: resolver,
	}
}

// Actor loads uid as an actor. A zero or unknown uid is anonymous.
func (s *PermissionService) Actor(uid uint) (permission.Actor, error) {
	if uid == 0 {
		return permission.Actor{}, nil
	}
	u, err := s.Repos.User.GetUserByID(uid)
	if errors.Is(err, repository.ErrNotFound) {
		return permission.Actor{}, nil
	}
	if err != nil {
		return permission.Actor{}, err
	}
	return permission.ActorFromUser(&u), nil
}

func (s *PermissionService) ResolveTicketPermissions(actor permission.Actor, ticketID uint) (permission.Permissions, error) {
	t, err := s.Repos.Ticket.GetTicketByID(ticketID)
	if err != nil {
		return permission.Permissions{}, notFound(err, "ticket", ticketID)
	}
	return s.forTicket(actor, t)
}

func (s *PermissionService) ResolveTopicPermissions(actor permission.Actor, topicID uint) (permission.Permissions, error) {
	t, err := s.Repos.Topic.GetTopicByID(topicID)
	if err != nil {
		return permission.Permissions{}, notFound(err, "topic", topicID)
	}
	return s.Resolver.ForTopic(actor, t), nil
}

// forTicket resolves against the topic admins loaded with t, fetching them
// when the topic was not preloaded.
func (s *PermissionService) forTicket(actor permission.Actor, t ticket.Ticket) (permission.Permissions, error) {
	var adminIDs []uint
	switch {
	case t.Topic != nil:
		adminIDs = t.Topic.AdminIDs()
	case t.TopicID != nil:
		ids, err := s.Repos.Topic.GetAdminIDs(*t.TopicID)
		if err != nil {
			return permission.Permissions{}, err
		}
		adminIDs = ids
	}
	return s.Resolver.ForTicket(actor, t, adminIDs), nil
}
