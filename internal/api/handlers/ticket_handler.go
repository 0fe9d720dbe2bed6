package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/api/middleware"
	"github.com/linskybing/grant-tracker/internal/application"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/linskybing/grant-tracker/pkg/response"
	"github.com/linskybing/grant-tracker/pkg/utils"
)

type TicketHandler struct {
	svc   *application.TicketService
	perms *application.PermissionService
}

func NewTicketHandler(svc *application.TicketService, perms *application.PermissionService) *TicketHandler {
	return &TicketHandler{svc: svc, perms: perms}
}

// ListTickets godoc
// @Summary List tickets
// @Tags tickets
// @Produce json
// @Param topic_id query int false "Only tickets of this topic"
// @Param grant_id query int false "Only tickets of this grant"
// @Param user_id query int false "Only tickets requested by this user"
// @Param unassigned query bool false "Only tickets without a requesting user"
// @Success 200 {array} application.TicketListItem
// @Failure 400 {object} response.ErrorResponse "Invalid query parameters"
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	var f repository.TicketFilter

	topicID, err := utils.OptionalQueryUint(c, "topic_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid topic_id"})
		return
	}
	if topicID != nil {
		f.TopicIDs = []uint{*topicID}
	}
	if f.GrantID, err = utils.OptionalQueryUint(c, "grant_id"); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid grant_id"})
		return
	}
	if f.RequestedUserID, err = utils.OptionalQueryUint(c, "user_id"); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user_id"})
		return
	}
	if v := c.Query("unassigned"); v != "" {
		if f.Unassigned, err = strconv.ParseBool(v); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid unassigned"})
			return
		}
	}

	items, err := h.svc.ListTickets(f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetTicket godoc
// @Summary Ticket detail as the caller may see it
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} application.TicketDetail
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, ok := parseID(c, "id", "ticket")
	if !ok {
		return
	}
	detail, err := h.svc.GetTicketDetail(middleware.ActorFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetPermissions godoc
// @Summary What the caller may do with a ticket
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} permission.Permissions
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /tickets/{id}/permissions [get]
func (h *TicketHandler) GetPermissions(c *gin.Context) {
	id, ok := parseID(c, "id", "ticket")
	if !ok {
		return
	}
	perms, err := h.perms.ResolveTicketPermissions(middleware.ActorFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, perms)
}

// CreateTicket godoc
// @Summary File a new ticket
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body ticket.CreateTicketDTO true "Ticket"
// @Success 201 {object} ticket.Ticket
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var input ticket.CreateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	t, err := h.svc.CreateTicket(c, middleware.ActorFrom(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateTicket godoc
// @Summary Edit a ticket
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.UpdateTicketDTO true "Changed fields"
// @Success 200 {object} ticket.Ticket
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, ok := parseID(c, "id", "ticket")
	if !ok {
		return
	}
	var input ticket.UpdateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	t, err := h.svc.UpdateTicket(c, middleware.ActorFrom(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// RemoveAck godoc
// @Summary Take back one of the requester's acknowledgements
// @Tags tickets
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param ack_id path int true "Acknowledgement ID"
// @Success 204 "No Content"
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /tickets/{id}/acks/{ack_id} [delete]
func (h *TicketHandler) RemoveAck(c *gin.Context) {
	h.removeAck(c, false)
}

// ListAdminTickets godoc
// @Summary Tickets of the topics the caller administers
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} application.TicketListItem
// @Failure 403 {object} response.ErrorResponse "Staff access required"
// @Router /admin/tickets [get]
func (h *TicketHandler) ListAdminTickets(c *gin.Context) {
	items, err := h.svc.ListAdminTickets(middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ReviewTicket godoc
// @Summary Accept or reject a ticket and set its rating
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.ReviewTicketDTO true "Review"
// @Success 200 {object} ticket.Ticket
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /admin/tickets/{id}/review [put]
func (h *TicketHandler) ReviewTicket(c *gin.Context) {
	id, ok := parseID(c, "id", "ticket")
	if !ok {
		return
	}
	var input ticket.ReviewTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	t, err := h.svc.ReviewTicket(c, middleware.ActorFrom(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// AddAck godoc
// @Summary Acknowledge a ticket
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.AddAckDTO true "Acknowledgement"
// @Success 201 {object} ticket.TicketAck
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Router /admin/tickets/{id}/acks [post]
func (h *TicketHandler) AddAck(c *gin.Context) {
	id, ok := parseID(c, "id", "ticket")
	if !ok {
		return
	}
	var input ticket.AddAckDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	ack, err := h.svc.AddAck(c, middleware.ActorFrom(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ack)
}

// AdminRemoveAck godoc
// @Summary Remove any acknowledgement
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param ack_id path int true "Acknowledgement ID"
// @Success 204 "No Content"
// @Router /admin/tickets/{id}/acks/{ack_id} [delete]
func (h *TicketHandler) AdminRemoveAck(c *gin.Context) {
	h.removeAck(c, true)
}

func (h *TicketHandler) removeAck(c *gin.Context, admin bool) {
	id, ok := parseID(c, "id", "ticket")
	if !ok {
		return
	}
	ackID, ok := parseID(c, "ack_id", "acknowledgement")
	if !ok {
		return
	}
	if err := h.svc.RemoveAck(c, middleware.ActorFrom(c), id, ackID, admin); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
