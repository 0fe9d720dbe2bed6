package application

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/domain/audit"
	"github.com/linskybing/grant-tracker/internal/domain/finance"
	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/permission"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/transaction"
	"github.com/linskybing/grant-tracker/internal/events"
	"github.com/linskybing/grant-tracker/internal/metrics"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/linskybing/grant-tracker/pkg/logger"
	"github.com/linskybing/grant-tracker/pkg/markup"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	dateLayout     = "2006-01-02"
	amountTooLarge = "Amount must be smaller than 10 000 000 000 in absolute value."
)

type TicketService struct {
	Repos       *repository.Repos
	Lifecycle   *ticket.Lifecycle
	Permissions *PermissionService
	Clusters    *ClusterService
	Events      events.Publisher
}

func NewTicketService(repos *repository.Repos, lifecycle *ticket.Lifecycle, perms *PermissionService, clusters *ClusterService, pub events.Publisher) *TicketService {
	return &TicketService{
		Repos:       repos,
		Lifecycle:   lifecycle,
		Permissions: perms,
		Clusters:    clusters,
		Events:      pub,
	}
}

type TicketListItem struct {
	ticket.Ticket
	AcceptedExpeditures decimal.Decimal `json:"accepted_expeditures"`
	// SupervisorNotes is only filled on the admin listing.
	SupervisorNotes string `json:"supervisor_notes,omitempty"`
}

type TicketDetail struct {
	Ticket              ticket.Ticket             `json:"ticket"`
	SupervisorNotes     string                    `json:"supervisor_notes,omitempty"`
	DescriptionHTML     string                    `json:"description_html"`
	AcceptedExpeditures decimal.Decimal           `json:"accepted_expeditures"`
	Transactions        []transaction.Transaction `json:"transactions"`
	Permissions         permission.Permissions    `json:"permissions"`
}

func (s *TicketService) ListTickets(f repository.TicketFilter) ([]TicketListItem, error) {
	tickets, err := s.Repos.Ticket.ListTickets(f)
	if err != nil {
		return nil, err
	}
	return listItems(tickets), nil
}

// ListAdminTickets lists the tickets of the topics the actor administers, or
// every ticket for a supervisor.
func (s *TicketService) ListAdminTickets(actor permission.Actor) ([]TicketListItem, error) {
	if !actor.Staff {
		return nil, ErrPermissionDenied
	}
	f := repository.TicketFilter{}
	if !actor.Supervisor {
		topics, err := s.Repos.Topic.ListTopicsByAdmin(actor.UserID)
		if err != nil {
			return nil, err
		}
		if len(topics) == 0 {
			return []TicketListItem{}, nil
		}
		for _, t := range topics {
			f.TopicIDs = append(f.TopicIDs, t.ID)
		}
	}
	tickets, err := s.Repos.Ticket.ListTickets(f)
	if err != nil {
		return nil, err
	}
	items := listItems(tickets)
	for i := range items {
		items[i].SupervisorNotes = items[i].Ticket.SupervisorNotes
	}
	return items, nil
}

func listItems(tickets []ticket.Ticket) []TicketListItem {
	items := make([]TicketListItem, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, TicketListItem{Ticket: t, AcceptedExpeditures: finance.AcceptedExpeditures(t)})
	}
	return items
}

// GetTicketDetail returns the ticket as the actor may see it. Documents are
// withheld without document rights and supervisor notes from non-admins.
func (s *TicketService) GetTicketDetail(actor permission.Actor, id uint) (TicketDetail, error) {
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if err != nil {
		return TicketDetail{}, notFound(err, "ticket", id)
	}
	perms, err := s.Permissions.forTicket(actor, t)
	if err != nil {
		return TicketDetail{}, err
	}
	txs, err := s.Repos.Transaction.ListTransactionsByTicketIDs([]uint{id})
	if err != nil {
		return TicketDetail{}, err
	}
	html, err := markup.ToHTML(t.Description)
	if err != nil {
		return TicketDetail{}, err
	}

	if !perms.CanSeeDocuments {
		t.Documents = nil
	}
	var notes string
	if perms.IsAdmin() {
		notes = t.SupervisorNotes
	}
	t.SupervisorNotes = ""
	return TicketDetail{
		Ticket:              t,
		SupervisorNotes:     notes,
		DescriptionHTML:     html,
		AcceptedExpeditures: finance.AcceptedExpeditures(t),
		Transactions:        txs,
		Permissions:         perms,
	}, nil
}

func (s *TicketService) CreateTicket(c *gin.Context, actor permission.Actor, input ticket.CreateTicketDTO) (ticket.Ticket, error) {
	if actor.Anonymous() {
		return ticket.Ticket{}, ErrPermissionDenied
	}
	topic, err := s.openTopic(input.TopicID)
	if err != nil {
		return ticket.Ticket{}, err
	}

	uid := actor.UserID
	t := ticket.Ticket{
		Summary:         input.Summary,
		Description:     input.Description,
		TopicID:         &topic.ID,
		RequestedUserID: &uid,
		Status:          ticket.StatusNew,
		PaymentStatus:   ticket.PaymentNotApplicable,
	}
	if err := setEventDate(&t, input.EventDate); err != nil {
		return ticket.Ticket{}, err
	}
	t.SortDate = time.Now()
	if t.EventDate != nil {
		t.SortDate = *t.EventDate
	}
	if topic.TicketMedia {
		t.MediaInfos = mediaRows(input.MediaInfo)
	}
	if topic.TicketExpenses {
		if t.Expeditures, err = expeditureRows(input.Expeditures); err != nil {
			return ticket.Ticket{}, err
		}
	}
	if err := s.Lifecycle.Transition(&t, ticket.StatusSubmitted); err != nil {
		return ticket.Ticket{}, err
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Ticket.CreateTicket(&t); err != nil {
			return err
		}
		// a fresh ticket has no transactions and forms its own cluster
		if err := r.Cluster.SaveComponent(finance.Component{ID: t.ID, TicketIDs: []uint{t.ID}}); err != nil {
			return err
		}
		t.ClusterID = &t.ID
		return nil
	})
	if err != nil {
		return ticket.Ticket{}, err
	}

	metrics.TicketOperationsCounter.WithLabelValues("create").Inc()
	metrics.TicketStatusTransitions.WithLabelValues(string(ticket.StatusNew), string(t.Status)).Inc()
	s.Events.Publish(events.Event{Kind: events.TicketCreated, TicketID: t.ID, At: time.Now()})
	recordAudit(c, s.Repos, audit.Entry{
		Action:     audit.ActionCreate,
		Resource:   audit.ResourceTicket,
		ResourceID: t.ID,
		After:      t,
	})
	return t, nil
}

func (s *TicketService) UpdateTicket(c *gin.Context, actor permission.Actor, id uint, input ticket.UpdateTicketDTO) (ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if err != nil {
		return ticket.Ticket{}, notFound(err, "ticket", id)
	}
	perms, err := s.Permissions.forTicket(actor, t)
	if err != nil {
		return ticket.Ticket{}, err
	}
	if !perms.CanEdit {
		return ticket.Ticket{}, ErrPermissionDenied
	}
	old := t

	if input.Summary != nil {
		t.Summary = *input.Summary
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.EventDate != nil {
		if err := setEventDate(&t, *input.EventDate); err != nil {
			return ticket.Ticket{}, err
		}
		if t.EventDate != nil {
			t.SortDate = *t.EventDate
		} else {
			t.SortDate = t.CreatedAt
		}
	}
	var topic grant.Topic
	if t.Topic != nil {
		topic = *t.Topic
	}
	if input.TopicID != nil && (t.TopicID == nil || *input.TopicID != *t.TopicID) {
		if topic, err = s.openTopic(*input.TopicID); err != nil {
			return ticket.Ticket{}, err
		}
		t.TopicID = &topic.ID
		t.Topic = &topic
	}

	var media []ticket.MediaInfo
	replaceMedia := false
	switch {
	case !topic.TicketMedia:
		replaceMedia = len(t.MediaInfos) > 0
	case input.MediaInfo != nil:
		media, replaceMedia = mediaRows(*input.MediaInfo), true
	}
	var exps []ticket.Expediture
	replaceExps := false
	switch {
	case !topic.TicketExpenses:
		replaceExps = len(t.Expeditures) > 0
	case input.Expeditures != nil:
		if exps, err = expeditureRows(*input.Expeditures); err != nil {
			return ticket.Ticket{}, err
		}
		replaceExps = true
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Ticket.UpdateTicket(&t); err != nil {
			return err
		}
		if replaceMedia {
			if err := r.Ticket.ReplaceMediaInfo(t.ID, media); err != nil {
				return err
			}
			t.MediaInfos = media
		}
		if replaceExps {
			if err := r.Ticket.ReplaceExpeditures(t.ID, exps); err != nil {
				return err
			}
			t.Expeditures = exps
			return s.Clusters.ReconcileTicket(r, t)
		}
		return nil
	})
	if err != nil {
		return ticket.Ticket{}, err
	}

	metrics.TicketOperationsCounter.WithLabelValues("update").Inc()
	s.Events.Publish(events.Event{Kind: events.TicketUpdated, TicketID: t.ID, At: time.Now()})
	recordAudit(c, s.Repos, audit.Entry{
		Action:     audit.ActionUpdate,
		Resource:   audit.ResourceTicket,
		ResourceID: t.ID,
		Before:     old,
		After:      t,
	})
	return t, nil
}

// ReviewTicket records the admin decision on a ticket: accept or reject,
// the rating and the supervisor notes. The cluster is settled afterwards so
// payment states follow the new rating.
func (s *TicketService) ReviewTicket(c *gin.Context, actor permission.Actor, id uint, input ticket.ReviewTicketDTO) (ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if err != nil {
		return ticket.Ticket{}, notFound(err, "ticket", id)
	}
	perms, err := s.Permissions.forTicket(actor, t)
	if err != nil {
		return ticket.Ticket{}, err
	}
	if !perms.CanAdminister {
		return ticket.Ticket{}, ErrPermissionDenied
	}
	// paid and rejected tickets are closed, their rating included
	if s.Lifecycle.IsTerminal(t.Status) {
		return ticket.Ticket{}, ErrPermissionDenied
	}
	old := reviewOf(t)
	from := t.Status

	if input.Status != t.Status && input.Status != ticket.StatusAccepted && input.Status != ticket.StatusRejected {
		return ticket.Ticket{}, NewValidationError("status", "A review either accepts or rejects the ticket.")
	}
	if err := s.Lifecycle.Transition(&t, input.Status); err != nil {
		return ticket.Ticket{}, NewValidationError("status", err.Error())
	}
	if input.RatingPercentage != nil {
		r := *input.RatingPercentage
		if r < 0 || r > 100 {
			return ticket.Ticket{}, NewValidationError("rating_percentage", "Rating must be between 0 and 100.")
		}
		t.RatingPercentage = &r
	}
	if input.FuzzyRating != nil {
		t.FuzzyRating = *input.FuzzyRating
	}
	if input.SupervisorNotes != nil {
		t.SupervisorNotes = *input.SupervisorNotes
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Ticket.UpdateTicket(&t); err != nil {
			return err
		}
		return s.Clusters.ReconcileTicket(r, t)
	})
	if err != nil {
		return ticket.Ticket{}, err
	}

	if from != t.Status {
		metrics.TicketStatusTransitions.WithLabelValues(string(from), string(t.Status)).Inc()
	}
	metrics.TicketOperationsCounter.WithLabelValues("review").Inc()
	s.Events.Publish(events.Event{Kind: events.TicketReviewed, TicketID: t.ID, At: time.Now()})
	recordAudit(c, s.Repos, audit.Entry{
		Action:     audit.ActionReview,
		Resource:   audit.ResourceTicket,
		ResourceID: t.ID,
		Before:     old,
		After:      reviewOf(t),
	})
	return t, nil
}

func (s *TicketService) AddAck(c *gin.Context, actor permission.Actor, id uint, input ticket.AddAckDTO) (ticket.TicketAck, error) {
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if err != nil {
		return ticket.TicketAck{}, notFound(err, "ticket", id)
	}
	perms, err := s.Permissions.forTicket(actor, t)
	if err != nil {
		return ticket.TicketAck{}, err
	}
	if !perms.CanAdminister {
		return ticket.TicketAck{}, ErrPermissionDenied
	}
	if !input.AckType.Valid() {
		return ticket.TicketAck{}, NewValidationError("ack_type", fmt.Sprintf("Unknown acknowledgement %q.", input.AckType))
	}

	uid := actor.UserID
	ack := ticket.TicketAck{
		TicketID:  t.ID,
		AckType:   input.AckType,
		Comment:   input.Comment,
		AddedByID: &uid,
	}
	if err := s.Repos.Ack.CreateAck(&ack); err != nil {
		return ticket.TicketAck{}, err
	}

	metrics.TicketOperationsCounter.WithLabelValues("ack_add").Inc()
	s.Events.Publish(events.Event{Kind: events.AckAdded, TicketID: t.ID, ID: ack.ID, At: time.Now()})
	recordAudit(c, s.Repos, audit.Entry{
		Action:     audit.ActionCreate,
		Resource:   audit.ResourceTicketAck,
		ResourceID: ack.ID,
		After:      ack,
	})
	return ack, nil
}

// RemoveAck deletes an acknowledgement. Through the admin route any ack may
// go; the requester may only take back the user_* ones while the ticket is
// still editable.
func (s *TicketService) RemoveAck(c *gin.Context, actor permission.Actor, id, ackID uint, admin bool) error {
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if err != nil {
		return notFound(err, "ticket", id)
	}
	perms, err := s.Permissions.forTicket(actor, t)
	if err != nil {
		return err
	}
	ack, err := s.Repos.Ack.GetAck(id, ackID)
	if err != nil {
		return notFound(err, "acknowledgement", ackID)
	}
	if admin {
		if !perms.CanAdminister {
			return ErrPermissionDenied
		}
	} else if !perms.CanEdit || !ack.UserRemovable() {
		return ErrPermissionDenied
	}

	if err := s.Repos.Ack.DeleteAck(ack.ID); err != nil {
		return notFound(err, "acknowledgement", ackID)
	}

	metrics.TicketOperationsCounter.WithLabelValues("ack_remove").Inc()
	s.Events.Publish(events.Event{Kind: events.AckRemoved, TicketID: t.ID, ID: ack.ID, At: time.Now()})
	recordAudit(c, s.Repos, audit.Entry{
		Action:     audit.ActionDelete,
		Resource:   audit.ResourceTicketAck,
		ResourceID: ack.ID,
		Before:     ack,
	})
	logger.L().Debug("ack removed", zap.Uint("ticket_id", t.ID), zap.String("ack_type", string(ack.AckType)))
	return nil
}

// openTopic loads a topic that accepts new tickets.
func (s *TicketService) openTopic(id uint) (grant.Topic, error) {
	topic, err := s.Repos.Topic.GetTopicByID(id)
	if err != nil {
		if isNotFound(err) {
			return grant.Topic{}, NewValidationError("topic_id", fmt.Sprintf("Topic %d does not exist.", id))
		}
		return grant.Topic{}, err
	}
	if !topic.OpenForTickets {
		return grant.Topic{}, NewValidationError("topic_id", "This topic does not accept new tickets.")
	}
	return topic, nil
}

func setEventDate(t *ticket.Ticket, value string) error {
	if value == "" {
		t.EventDate = nil
		return nil
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return NewValidationError("event_date", "Enter a valid date.")
	}
	t.EventDate = &d
	return nil
}

func mediaRows(in []ticket.MediaInfoInput) []ticket.MediaInfo {
	rows := make([]ticket.MediaInfo, 0, len(in))
	for _, m := range in {
		if m.URL == "" && m.Description == "" && m.Count == nil {
			continue
		}
		rows = append(rows, ticket.MediaInfo{URL: m.URL, Description: m.Description, Count: m.Count})
	}
	return rows
}

func expeditureRows(in []ticket.ExpeditureInput) ([]ticket.Expediture, error) {
	verr := &ValidationError{}
	rows := make([]ticket.Expediture, 0, len(in))
	for i, e := range in {
		amount := e.Amount.Round(2)
		if !finance.AmountFits(amount) {
			verr.Add(fmt.Sprintf("expeditures[%d].amount", i), amountTooLarge)
			continue
		}
		rows = append(rows, ticket.Expediture{Description: e.Description, Amount: amount})
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return rows, nil
}

// reviewState is the audited part of a review. Supervisor notes are kept out
// of the ticket JSON, so they are listed here explicitly.
type reviewState struct {
	Status           ticket.Status `json:"status"`
	RatingPercentage *int          `json:"rating_percentage"`
	FuzzyRating      bool          `json:"fuzzy_rating"`
	SupervisorNotes  string        `json:"supervisor_notes"`
}

func reviewOf(t ticket.Ticket) reviewState {
	return reviewState{
		Status:           t.Status,
		RatingPercentage: t.RatingPercentage,
		FuzzyRating:      t.FuzzyRating,
		SupervisorNotes:  t.SupervisorNotes,
	}
}
