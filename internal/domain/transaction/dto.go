package transaction

import "github.com/shopspring/decimal"

type TransactionInput struct {
	Date           string          `json:"date" binding:"required,datetime=2006-01-02"`
	OtherPartyID   *uint           `json:"other_party_id"`
	OtherPartyText string          `json:"other_party_text" binding:"max=60"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description" binding:"max=255"`
	AccountingInfo string          `json:"accounting_info" binding:"max=255"`
	TicketIDs      []uint          `json:"ticket_ids"`
}

type TransactionListDTO struct {
	Transactions []Transaction  `json:"transactions"`
	Total        decimal.Decimal `json:"total"`
}
