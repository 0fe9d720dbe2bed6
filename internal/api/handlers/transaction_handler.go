package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/api/middleware"
	"github.com/linskybing/grant-tracker/internal/application"
	"github.com/linskybing/grant-tracker/internal/config"
	"github.com/linskybing/grant-tracker/internal/domain/transaction"
)

type TransactionHandler struct {
	svc *application.TransactionService
}

func NewTransactionHandler(svc *application.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// ListTransactions godoc
// @Summary List transactions with their total
// @Tags transactions
// @Produce json
// @Success 200 {object} transaction.TransactionListDTO
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	list, err := h.svc.ListTransactions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} transaction.Transaction
// @Failure 404 {object} response.ErrorResponse "Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, ok := parseID(c, "id", "transaction")
	if !ok {
		return
	}
	tx, err := h.svc.GetTransaction(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// ExportCSV godoc
// @Summary Transactions as semicolon separated CSV
// @Tags transactions
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Router /transactions/transactions.csv [get]
func (h *TransactionHandler) ExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.svc.ExportCSV(&buf, config.Currency); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// CreateTransaction godoc
// @Summary Record a transaction
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body transaction.TransactionInput true "Transaction"
// @Success 201 {object} transaction.Transaction
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Supervisor access required"
// @Router /admin/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var input transaction.TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	tx, err := h.svc.CreateTransaction(c, middleware.ActorFrom(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// UpdateTransaction godoc
// @Summary Replace a transaction
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param input body transaction.TransactionInput true "Transaction"
// @Success 200 {object} transaction.Transaction
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Router /admin/transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, ok := parseID(c, "id", "transaction")
	if !ok {
		return
	}
	var input transaction.TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	tx, err := h.svc.UpdateTransaction(c, middleware.ActorFrom(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 204 "No Content"
// @Router /admin/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, ok := parseID(c, "id", "transaction")
	if !ok {
		return
	}
	if err := h.svc.DeleteTransaction(c, middleware.ActorFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
