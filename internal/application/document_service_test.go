package application

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upload(name, body string) Upload {
	return Upload{
		Filename:    name,
		Description: "receipt",
		ContentType: "text/plain",
		Size:        int64(len(body)),
		Body:        strings.NewReader(body),
	}
}

func TestUploadDocument_RoundTrip(t *testing.T) {
	svcs, m, rec, store, ctx := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusSubmitted, 0), nil).Times(2)
	m.document.EXPECT().GetDocument(uint(1), "bill-01.txt").Return(ticket.Document{}, repository.ErrNotFound)
	var stored ticket.Document
	m.document.EXPECT().CreateDocument(gomock.Any()).DoAndReturn(func(d *ticket.Document) error {
		d.ID = 5
		stored = *d
		return nil
	})

	doc, err := svcs.Document.UploadDocument(ctx, requester, 1, upload("bill-01.txt", "total 12"))
	require.NoError(t, err)
	assert.Equal(t, uint(5), doc.ID)
	assert.True(t, strings.HasPrefix(doc.ObjectKey, "tickets/1/"))
	assert.True(t, strings.HasSuffix(doc.ObjectKey, "-bill-01.txt"))
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 1, len(rec.kinds()))

	m.document.EXPECT().GetDocument(uint(1), "bill-01.txt").Return(stored, nil)
	got, body, err := svcs.Document.Download(ctx, requester, 1, "bill-01.txt")
	require.NoError(t, err)
	defer body.Close()
	data, _ := io.ReadAll(body)
	assert.Equal(t, "total 12", string(data))
	assert.Equal(t, "text/plain", got.ContentType)
}

func TestUploadDocument_InsaneFilename(t *testing.T) {
	svcs, m, _, store, ctx := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusSubmitted, 0), nil).Times(2)

	for _, name := range []string{"my bill.pdf", "noextension"} {
		_, err := svcs.Document.UploadDocument(ctx, requester, 1, upload(name, "x"))
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), name)
		assert.Equal(t, "We need a sane file name, such as my-invoice123.jpg", verr.Fields["name"])
	}
	assert.Zero(t, store.Len())
}

func TestUploadDocument_RemovesObjectWhenRowFails(t *testing.T) {
	svcs, m, _, store, ctx := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusSubmitted, 0), nil)
	m.document.EXPECT().GetDocument(uint(1), "a.pdf").Return(ticket.Document{}, repository.ErrNotFound)
	m.document.EXPECT().CreateDocument(gomock.Any()).Return(errors.New("insert failed"))

	_, err := svcs.Document.UploadDocument(ctx, requester, 1, upload("a.pdf", "x"))
	assert.EqualError(t, err, "insert failed")
	assert.Zero(t, store.Len())
}

func TestUploadDocument_Denied(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusPaid, 100), nil).Times(2)

	_, err := svcs.Document.UploadDocument(ctx, requester, 1, upload("a.pdf", "x"))
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svcs.Document.ListDocuments(stranger, 1)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUpdateDocuments(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	a := ticket.Document{ID: 1, TicketID: 1, Filename: "a.pdf", ObjectKey: "tickets/1/x-a.pdf"}
	b := ticket.Document{ID: 2, TicketID: 1, Filename: "b.pdf", Description: "old", ObjectKey: "tickets/1/x-b.pdf"}
	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusAccepted, 100), nil)
	m.document.EXPECT().GetDocument(uint(1), "a.pdf").Return(a, nil)
	m.document.EXPECT().GetDocument(uint(1), "b.pdf").Return(b, nil)
	m.document.EXPECT().DeleteDocument(uint(1)).Return(nil)
	m.document.EXPECT().UpdateDocument(gomock.Any()).DoAndReturn(func(d *ticket.Document) error {
		assert.Equal(t, "new", d.Description)
		return nil
	})
	b.Description = "new"
	m.document.EXPECT().ListDocuments(uint(1)).Return([]ticket.Document{b}, nil)

	docs, err := svcs.Document.UpdateDocuments(ctx, topicAdmin, 1, ticket.UpdateDocumentsDTO{
		Documents: []ticket.DocumentChange{
			{Filename: "a.pdf", Delete: true},
			{Filename: "b.pdf", Description: strPtr("new")},
		},
	})
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestDownload_MissingDocument(t *testing.T) {
	svcs, m, _, _, ctx := setupServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(1)).Return(ticketFixture(1, ticket.StatusAccepted, 100), nil)
	m.document.EXPECT().GetDocument(uint(1), "gone.pdf").Return(ticket.Document{}, repository.ErrNotFound)

	_, _, err := svcs.Document.Download(ctx, supervisor, 1, "gone.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}
