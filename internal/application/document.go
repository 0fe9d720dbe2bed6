package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/grant-tracker/internal/domain/audit"
	"github.com/linskybing/grant-tracker/internal/domain/permission"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/events"
	"github.com/linskybing/grant-tracker/internal/metrics"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/linskybing/grant-tracker/pkg/logger"
	"github.com/linskybing/grant-tracker/pkg/storage"
	"go.uber.org/zap"
)

var saneFilename = regexp.MustCompile(`^[-_\.A-Za-z0-9]+\.[A-Za-z0-9]+$`)

type DocumentService struct {
	Repos       *repository.Repos
	Permissions *PermissionService
	Store       storage.ObjectStore
	Events      events.Publisher
}

func NewDocumentService(repos *repository.Repos, perms *PermissionService, store storage.ObjectStore, pub events.Publisher) *DocumentService {
	return &DocumentService{
		Repos:       repos,
		Permissions: perms,
		Store:       store,
		Events:      pub,
	}
}

// Upload is one incoming document payload.
type Upload struct {
	Filename    string
	Description string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (s *DocumentService) ListDocuments(actor permission.Actor, ticketID uint) ([]ticket.Document, error) {
	if _, err := s.permitted(actor, ticketID, false); err != nil {
		return nil, err
	}
	return s.Repos.Document.ListDocuments(ticketID)
}

func (s *DocumentService) UploadDocument(c *gin.Context, actor permission.Actor, ticketID uint, up Upload) (ticket.Document, error) {
	if _, err := s.permitted(actor, ticketID, true); err != nil {
		return ticket.Document{}, err
	}
	if !saneFilename.MatchString(up.Filename) {
		return ticket.Document{}, NewValidationError("name", "We need a sane file name, such as my-invoice123.jpg")
	}
	if _, err := s.Repos.Document.GetDocument(ticketID, up.Filename); err == nil {
		return ticket.Document{}, NewValidationError("name", "This ticket already has a document with that name.")
	} else if !isNotFound(err) {
		return ticket.Document{}, err
	}

	doc := ticket.Document{
		TicketID:    ticketID,
		Filename:    up.Filename,
		Size:        up.Size,
		ContentType: up.ContentType,
		Description: up.Description,
		ObjectKey:   fmt.Sprintf("tickets/%d/%s-%s", ticketID, uuid.NewString(), up.Filename),
	}
	ctx := requestContext(c)
	if err := s.Store.Put(ctx, doc.ObjectKey, doc.ContentType, up.Body, up.Size); err != nil {
		return ticket.Document{}, err
	}
	if err := s.Repos.Document.CreateDocument(&doc); err != nil {
		if derr := s.Store.Delete(ctx, doc.ObjectKey); derr != nil {
			logger.L().Warn("orphaned document object", zap.String("key", doc.ObjectKey), zap.Error(derr))
		}
		return ticket.Document{}, err
	}

	metrics.DocumentBytesUploaded.Add(float64(up.Size))
	s.Events.Publish(events.Event{Kind: events.DocumentsChanged, TicketID: ticketID, ID: doc.ID, At: time.Now()})
	recordAudit(c, s.Repos, audit.Entry{
		Action:     audit.ActionCreate,
		Resource:   audit.ResourceDocument,
		ResourceID: doc.ID,
		After:      doc,
	})
	return doc, nil
}

// UpdateDocuments applies description edits and deletions in one go. Every
// named document must exist.
func (s *DocumentService) UpdateDocuments(c *gin.Context, actor permission.Actor, ticketID uint, input ticket.UpdateDocumentsDTO) ([]ticket.Document, error) {
	if _, err := s.permitted(actor, ticketID, true); err != nil {
		return nil, err
	}

	docs := make([]ticket.Document, 0, len(input.Documents))
	for _, ch := range input.Documents {
		d, err := s.Repos.Document.GetDocument(ticketID, ch.Filename)
		if err != nil {
			if isNotFound(err) {
				return nil, NewValidationError("documents", fmt.Sprintf("No document named %q.", ch.Filename))
			}
			return nil, err
		}
		docs = append(docs, d)
	}

	var removed []string
	err := s.Repos.ExecTx(func(r *repository.Repos) error {
		for i, ch := range input.Documents {
			d := docs[i]
			if ch.Delete {
				if err := r.Document.DeleteDocument(d.ID); err != nil {
					return err
				}
				removed = append(removed, d.ObjectKey)
				continue
			}
			if ch.Description != nil && *ch.Description != d.Description {
				d.Description = *ch.Description
				if err := r.Document.UpdateDocument(&d); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ctx := requestContext(c)
	for _, key := range removed {
		if err := s.Store.Delete(ctx, key); err != nil {
			logger.L().Warn("document object not removed", zap.String("key", key), zap.Error(err))
		}
	}

	s.Events.Publish(events.Event{Kind: events.DocumentsChanged, TicketID: ticketID, At: time.Now()})
	recordAudit(c, s.Repos, audit.Entry{
		Action:      audit.ActionUpdate,
		Resource:    audit.ResourceTicket,
		ResourceID:  ticketID,
		Before:      docs,
		After:       input,
		Description: "documents",
	})
	return s.Repos.Document.ListDocuments(ticketID)
}

// Download opens the stored payload. The caller closes the reader.
func (s *DocumentService) Download(c *gin.Context, actor permission.Actor, ticketID uint, filename string) (ticket.Document, io.ReadCloser, error) {
	if _, err := s.permitted(actor, ticketID, false); err != nil {
		return ticket.Document{}, nil, err
	}
	doc, err := s.Repos.Document.GetDocument(ticketID, filename)
	if err != nil {
		return ticket.Document{}, nil, notFound(err, "document", filename)
	}
	body, err := s.Store.Get(requestContext(c), doc.ObjectKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return ticket.Document{}, nil, fmt.Errorf("document %s: %w", filename, ErrNotFound)
		}
		return ticket.Document{}, nil, err
	}
	return doc, body, nil
}

func (s *DocumentService) permitted(actor permission.Actor, ticketID uint, write bool) (permission.Permissions, error) {
	perms, err := s.Permissions.ResolveTicketPermissions(actor, ticketID)
	if err != nil {
		return permission.Permissions{}, err
	}
	if write && !perms.CanEditDocuments || !write && !perms.CanSeeDocuments {
		return permission.Permissions{}, ErrPermissionDenied
	}
	return perms, nil
}

func requestContext(c *gin.Context) context.Context {
	if c == nil || c.Request == nil {
		return context.Background()
	}
	return c.Request.Context()
}
