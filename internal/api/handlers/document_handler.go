package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/api/middleware"
	"github.com/linskybing/grant-tracker/internal/application"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/pkg/response"
)

// maxUploadSize bounds the multipart form held in memory.
const maxUploadSize = 32 << 20

type DocumentHandler struct {
	svc *application.DocumentService
}

func NewDocumentHandler(svc *application.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// ListDocuments godoc
// @Summary Documents attached to a ticket
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {array} ticket.Document
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /tickets/{id}/docs [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	id, ok := parseID(c, "id", "ticket")
	if !ok {
		return
	}
	docs, err := h.svc.ListDocuments(middleware.ActorFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// UploadDocument godoc
// @Summary Attach a document to a ticket
// @Tags documents
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Ticket ID"
// @Param name formData string true "File name, e.g. my-invoice123.jpg"
// @Param description formData string false "Description"
// @Param file formData file true "Payload"
// @Success 201 {object} ticket.Document
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /tickets/{id}/docs [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	id, ok := parseID(c, "id", "ticket")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	var input ticket.UploadDocumentDTO
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
			Error:  "Invalid input",
			Fields: map[string]string{"file": "file is required"},
		})
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	doc, err := h.svc.UploadDocument(c, middleware.ActorFrom(c), id, application.Upload{
		Filename:    input.Name,
		Description: input.Description,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// UpdateDocuments godoc
// @Summary Change document descriptions or delete documents
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.UpdateDocumentsDTO true "Changes"
// @Success 200 {array} ticket.Document
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Router /tickets/{id}/docs [put]
func (h *DocumentHandler) UpdateDocuments(c *gin.Context) {
	id, ok := parseID(c, "id", "ticket")
	if !ok {
		return
	}
	var input ticket.UpdateDocumentsDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	docs, err := h.svc.UpdateDocuments(c, middleware.ActorFrom(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Download godoc
// @Summary Download a document
// @Tags documents
// @Security BearerAuth
// @Produce octet-stream
// @Param id path int true "Ticket ID"
// @Param filename path string true "File name"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorResponse "Document not found"
// @Router /tickets/{id}/docs/{filename} [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	id, ok := parseID(c, "id", "ticket")
	if !ok {
		return
	}
	doc, body, err := h.svc.Download(c, middleware.ActorFrom(c), id, c.Param("filename"))
	if err != nil {
		respondError(c, err)
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, doc.Size, doc.ContentType, body, map[string]string{
		"Content-Disposition": fmt.Sprintf(`inline; filename="%s"`, doc.Filename),
	})
}
