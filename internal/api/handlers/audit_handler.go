package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/application"
	"github.com/linskybing/grant-tracker/internal/domain/audit"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/linskybing/grant-tracker/pkg/response"
	"github.com/linskybing/grant-tracker/pkg/utils"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary      Query audit logs
// @Description  Retrieve audit logs filtered by user, resource, action and time range, with pagination.
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        user_id       query     uint     false  "User ID to filter logs by user" example(12)
// @Param        resource_type query     string   false  "Resource type: ticket, ticket_ack, document, transaction, topic, grant, user_details or cluster" example("ticket")
// @Param        resource_id   query     uint     false  "Resource ID to filter" example(5)
// @Param        action        query     string   false  "Action type to filter" example("review")
// @Param        start_time    query     string   false  "Start time in RFC3339 format" example("2024-01-01T00:00:00Z")
// @Param        end_time      query     string   false  "End time in RFC3339 format" example("2024-02-01T00:00:00Z")
// @Param        limit         query     int      false  "Max number of records to return (default 100, max 1000)" example(100)
// @Param        offset        query     int      false  "Offset for pagination (default 0)" example(0)
// @Success      200 {array}   audit.AuditLog
// @Failure      400 {object}  response.ErrorResponse "Invalid query parameters"
// @Failure      500 {object}  response.ErrorResponse "Internal server error"
// @Router       /admin/audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var f repository.AuditFilter

	if uid, err := utils.ParseQueryUintParam(c, "user_id"); err != nil {
		if !errors.Is(err, utils.ErrEmptyParameter) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user_id"})
			return
		}
	} else {
		f.UserID = &uid
	}

	if rt := c.Query("resource_type"); rt != "" {
		r, ok := audit.ParseResource(rt)
		if !ok {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid resource_type"})
			return
		}
		f.Resource = r
	}
	if rid, err := utils.ParseQueryUintParam(c, "resource_id"); err != nil {
		if !errors.Is(err, utils.ErrEmptyParameter) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid resource_id"})
			return
		}
	} else {
		f.ResourceID = &rid
	}
	f.Action = audit.Action(c.Query("action"))

	if start := c.Query("start_time"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid start_time"})
			return
		}
		f.Since = &t
	}
	if end := c.Query("end_time"); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid end_time"})
			return
		}
		f.Until = &t
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}
	f.Limit = limit
	f.Offset = offset

	logs, err := h.svc.QueryAuditLogs(f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// TicketHistory godoc
// @Summary      Ticket change history
// @Description  Every audited change of one ticket, its reviews and document edits included, oldest first.
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      uint  true  "Ticket ID"
// @Success      200 {array}   audit.AuditLog
// @Failure      403 {object}  response.ErrorResponse
// @Failure      404 {object}  response.ErrorResponse
// @Router       /admin/tickets/{id}/history [get]
func (h *AuditHandler) TicketHistory(c *gin.Context) {
	id, ok := parseID(c, "id", "ticket")
	if !ok {
		return
	}
	logs, err := h.svc.TicketHistory(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
