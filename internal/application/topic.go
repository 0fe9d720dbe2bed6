package application

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/domain/audit"
	"github.com/linskybing/grant-tracker/internal/domain/finance"
	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/permission"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/user"
	"github.com/linskybing/grant-tracker/internal/repository"
)

type TopicService struct {
	Repos    *repository.Repos
	Resolver *permission.Resolver
	Finance  *FinanceService
}

func NewTopicService(repos *repository.Repos, resolver *permission.Resolver, fin *FinanceService) *TopicService {
	return &TopicService{
		Repos:    repos,
		Resolver: resolver,
		Finance:  fin,
	}
}

type TopicDetail struct {
	Topic       grant.Topic            `json:"topic"`
	Tickets     []ticket.Ticket        `json:"tickets"`
	Finance     finance.Summary        `json:"finance"`
	Permissions permission.Permissions `json:"permissions"`
}

func (s *TopicService) ListTopics() ([]grant.Topic, error) {
	return s.Repos.Topic.ListTopics()
}

// TopicTable is what the ticket form needs to know about every topic.
func (s *TopicService) TopicTable() (map[uint]grant.TopicFormInfo, error) {
	topics, err := s.Repos.Topic.ListTopics()
	if err != nil {
		return nil, err
	}
	table := make(map[uint]grant.TopicFormInfo, len(topics))
	for _, t := range topics {
		table[t.ID] = grant.TopicFormInfo{
			FormDescription: t.FormDescription,
			TicketMedia:     t.TicketMedia,
			TicketExpenses:  t.TicketExpenses,
		}
	}
	return table, nil
}

func (s *TopicService) GetTopic(actor permission.Actor, id uint) (TopicDetail, error) {
	t, err := s.Repos.Topic.GetTopicByID(id)
	if err != nil {
		return TopicDetail{}, notFound(err, "topic", id)
	}
	tickets, err := s.Repos.Ticket.ListTickets(repository.TicketFilter{TopicIDs: []uint{id}})
	if err != nil {
		return TopicDetail{}, err
	}
	sum, err := s.Finance.summaryFor(tickets)
	if err != nil {
		return TopicDetail{}, err
	}
	return TopicDetail{
		Topic:       t,
		Tickets:     tickets,
		Finance:     sum,
		Permissions: s.Resolver.ForTopic(actor, t),
	}, nil
}

// ListAdministeredTopics is every topic for supervisors and the topics the
// actor administers otherwise.
func (s *TopicService) ListAdministeredTopics(actor permission.Actor) ([]grant.Topic, error) {
	if actor.Supervisor {
		return s.Repos.Topic.ListTopics()
	}
	return s.Repos.Topic.ListTopicsByAdmin(actor.UserID)
}

func (s *TopicService) CreateTopic(c *gin.Context, actor permission.Actor, input grant.CreateTopicDTO) (grant.Topic, error) {
	if !actor.Supervisor {
		return grant.Topic{}, ErrPermissionDenied
	}
	if _, err := s.Repos.Grant.GetGrantByID(input.GrantID); err != nil {
		if isNotFound(err) {
			return grant.Topic{}, NewValidationError("grant_id", fmt.Sprintf("Grant %d does not exist.", input.GrantID))
		}
		return grant.Topic{}, err
	}
	admins, err := s.admins(input.AdminIDs)
	if err != nil {
		return grant.Topic{}, err
	}

	t := grant.Topic{
		Name:            input.Name,
		GrantID:         input.GrantID,
		Description:     input.Description,
		FormDescription: input.FormDescription,
		OpenForTickets:  input.OpenForTickets,
		TicketMedia:     input.TicketMedia,
		TicketExpenses:  input.TicketExpenses,
	}
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Topic.CreateTopic(&t); err != nil {
			return err
		}
		return r.Topic.ReplaceAdmins(&t, admins)
	})
	if err != nil {
		return grant.Topic{}, err
	}
	t.Admins = admins
	recordAudit(c, s.Repos, audit.Entry{
		Action:     audit.ActionCreate,
		Resource:   audit.ResourceTopic,
		ResourceID: t.ID,
		After:      t,
	})
	return t, nil
}

// UpdateTopic applies input for topic administrators. Moving the topic to a
// different grant or changing its admins is reserved to supervisors.
func (s *TopicService) UpdateTopic(c *gin.Context, actor permission.Actor, id uint, input grant.UpdateTopicDTO) (grant.Topic, error) {
	t, err := s.Repos.Topic.GetTopicByID(id)
	if err != nil {
		return grant.Topic{}, notFound(err, "topic", id)
	}
	if !s.Resolver.ForTopic(actor, t).CanAdminister {
		return grant.Topic{}, ErrPermissionDenied
	}
	if !actor.Supervisor && (input.GrantID != nil || input.AdminIDs != nil) {
		return grant.Topic{}, ErrPermissionDenied
	}
	old := t

	if input.Name != nil {
		t.Name = *input.Name
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.FormDescription != nil {
		t.FormDescription = *input.FormDescription
	}
	if input.OpenForTickets != nil {
		t.OpenForTickets = *input.OpenForTickets
	}
	if input.TicketMedia != nil {
		t.TicketMedia = *input.TicketMedia
	}
	if input.TicketExpenses != nil {
		t.TicketExpenses = *input.TicketExpenses
	}
	if input.GrantID != nil && *input.GrantID != t.GrantID {
		if _, err := s.Repos.Grant.GetGrantByID(*input.GrantID); err != nil {
			if isNotFound(err) {
				return grant.Topic{}, NewValidationError("grant_id", fmt.Sprintf("Grant %d does not exist.", *input.GrantID))
			}
			return grant.Topic{}, err
		}
		t.GrantID = *input.GrantID
		t.Grant = nil
	}
	var admins []user.User
	if input.AdminIDs != nil {
		if admins, err = s.admins(*input.AdminIDs); err != nil {
			return grant.Topic{}, err
		}
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Topic.UpdateTopic(&t); err != nil {
			return err
		}
		if input.AdminIDs == nil {
			return nil
		}
		return r.Topic.ReplaceAdmins(&t, admins)
	})
	if err != nil {
		return grant.Topic{}, err
	}
	if input.AdminIDs != nil {
		t.Admins = admins
	}
	recordAudit(c, s.Repos, audit.Entry{
		Action:     audit.ActionUpdate,
		Resource:   audit.ResourceTopic,
		ResourceID: t.ID,
		Before:     old,
		After:      t,
	})
	return t, nil
}

func (s *TopicService) admins(ids []uint) ([]user.User, error) {
	if len(ids) == 0 {
		return []user.User{}, nil
	}
	users, err := s.Repos.User.ListUsersByIDs(ids)
	if err != nil {
		return nil, err
	}
	known := make(map[uint]bool, len(users))
	for _, u := range users {
		known[u.UID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return nil, NewValidationError("admin_ids", fmt.Sprintf("User %d does not exist.", id))
		}
	}
	return users, nil
}
