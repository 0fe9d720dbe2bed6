package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/application"
	"github.com/shopspring/decimal"
)

type FinanceHandler struct {
	svc *application.FinanceService
}

func NewFinanceHandler(svc *application.FinanceService) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

type AcceptedExpedituresResponse struct {
	TicketID            uint            `json:"ticket_id"`
	AcceptedExpeditures decimal.Decimal `json:"accepted_expeditures"`
}

// TicketAccepted godoc
// @Summary Accepted expeditures of one ticket
// @Tags finance
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} handlers.AcceptedExpedituresResponse
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /finance/tickets/{id} [get]
func (h *FinanceHandler) TicketAccepted(c *gin.Context) {
	id, ok := parseID(c, "id", "ticket")
	if !ok {
		return
	}
	amount, err := h.svc.TicketAcceptedExpeditures(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, AcceptedExpedituresResponse{TicketID: id, AcceptedExpeditures: amount})
}

// TopicSummary godoc
// @Summary Payment summary of a topic
// @Tags finance
// @Produce json
// @Param id path int true "Topic ID"
// @Success 200 {object} finance.Summary
// @Failure 404 {object} response.ErrorResponse "Topic not found"
// @Router /finance/topics/{id} [get]
func (h *FinanceHandler) TopicSummary(c *gin.Context) {
	id, ok := parseID(c, "id", "topic")
	if !ok {
		return
	}
	sum, err := h.svc.TopicPaymentSummary(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// GrantSummary godoc
// @Summary Payment summary of a grant
// @Tags finance
// @Produce json
// @Param id path int true "Grant ID"
// @Success 200 {object} finance.Summary
// @Failure 404 {object} response.ErrorResponse "Grant not found"
// @Router /finance/grants/{id} [get]
func (h *FinanceHandler) GrantSummary(c *gin.Context) {
	id, ok := parseID(c, "id", "grant")
	if !ok {
		return
	}
	sum, err := h.svc.GrantPaymentSummary(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// ClusterTotals godoc
// @Summary Paid, overpaid and unpaid sums across all clusters
// @Tags finance
// @Produce json
// @Success 200 {object} finance.ClusterSums
// @Router /finance/clusters [get]
func (h *FinanceHandler) ClusterTotals(c *gin.Context) {
	sums, err := h.svc.ClusterTotals()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sums)
}

// Overview godoc
// @Summary Grants, topics and their summaries in one page
// @Tags finance
// @Produce json
// @Success 200 {object} application.FinanceOverview
// @Router /topics/finance [get]
func (h *FinanceHandler) Overview(c *gin.Context) {
	overview, err := h.svc.FinanceOverview()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
