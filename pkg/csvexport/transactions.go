package csvexport

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/linskybing/grant-tracker/internal/domain/transaction"
)

func TransactionHeader(currency string) []string {
	return []string{
		"DATE",
		"OTHER PARTY",
		"AMOUNT " + currency,
		"DESCRIPTION",
		"TICKETS",
		"GRANTS",
		"ACCOUNTING INFO",
	}
}

// WriteTransactions writes the header and one row per transaction, in the
// order given. Transactions need their tickets loaded with Topic.Grant.
func WriteTransactions(out io.Writer, currency string, txs []transaction.Transaction) error {
	w := NewWriter(out)
	w.Write(TransactionHeader(currency)...)
	for _, tx := range txs {
		w.Write(
			time.Time(tx.Date).Format("2006-01-02"),
			tx.OtherPartyName(),
			tx.Amount.StringFixed(2),
			tx.Description,
			joinIDs(tx.TicketIDs()),
			tx.GrantShortNames(),
			tx.AccountingInfo,
		)
	}
	return w.Flush()
}

func joinIDs(ids []uint) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	return strings.Join(parts, " ")
}
