package finance

import (
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/transaction"
	"github.com/shopspring/decimal"
)

// AmountLimit is the smallest absolute amount a numeric(12,2) column cannot
// store.
var AmountLimit = decimal.New(1, 10)

// AmountFits reports whether amount, rounded to cents, can be stored.
func AmountFits(amount decimal.Decimal) bool {
	return amount.Round(2).Abs().LessThan(AmountLimit)
}

// Summary is the payment state of a topic or, summed, of a grant.
type Summary struct {
	Accepted decimal.Decimal `json:"accepted"`
	Paid     decimal.Decimal `json:"paid"`
	Overpaid decimal.Decimal `json:"overpaid"`
	Unpaid   decimal.Decimal `json:"unpaid"`
	Fuzzy    bool            `json:"fuzzy"`
}

// NewSummary derives overpaid and unpaid from accepted and paid.
func NewSummary(accepted, paid decimal.Decimal, fuzzy bool) Summary {
	return Summary{
		Accepted: accepted,
		Paid:     paid,
		Overpaid: positive(paid.Sub(accepted)),
		Unpaid:   positive(accepted.Sub(paid)),
		Fuzzy:    fuzzy,
	}
}

// Add sums field by field. Overpaid and unpaid are summed as they are, not
// recomputed, so a grant total keeps the overpayment of one topic visible
// next to the debt of another.
func (s Summary) Add(o Summary) Summary {
	return Summary{
		Accepted: s.Accepted.Add(o.Accepted),
		Paid:     s.Paid.Add(o.Paid),
		Overpaid: s.Overpaid.Add(o.Overpaid),
		Unpaid:   s.Unpaid.Add(o.Unpaid),
		Fuzzy:    s.Fuzzy || o.Fuzzy,
	}
}

func Sum(summaries ...Summary) Summary {
	var total Summary
	for _, s := range summaries {
		total = total.Add(s)
	}
	return total
}

func (s Summary) Equal(o Summary) bool {
	return s.Accepted.Equal(o.Accepted) &&
		s.Paid.Equal(o.Paid) &&
		s.Overpaid.Equal(o.Overpaid) &&
		s.Unpaid.Equal(o.Unpaid) &&
		s.Fuzzy == o.Fuzzy
}

var hundred = decimal.NewFromInt(100)

// AcceptedExpeditures is the part of the ticket's expenses the reviewers
// agreed to pay: the expense total scaled by the rating and rounded half away
// from zero to cents. Tickets that are not accepted or carry no positive
// rating contribute nothing.
func AcceptedExpeditures(t ticket.Ticket) decimal.Decimal {
	if !t.Status.IsAccepted() || t.RatingPercentage == nil || *t.RatingPercentage <= 0 {
		return decimal.Zero
	}
	return ExpeditureTotal(t).
		Mul(decimal.NewFromInt(int64(*t.RatingPercentage))).
		Div(hundred).
		Round(2)
}

func ExpeditureTotal(t ticket.Ticket) decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Expeditures {
		total = total.Add(e.Amount)
	}
	return total
}

// TicketsAccepted sums AcceptedExpeditures over tickets.
func TicketsAccepted(tickets []ticket.Ticket) decimal.Decimal {
	total := decimal.Zero
	for _, t := range tickets {
		total = total.Add(AcceptedExpeditures(t))
	}
	return total
}

// TopicSummary computes the payment summary of the topic owning tickets.
//
// A transaction counts once no matter how many of the topic's tickets it is
// linked to. Transactions not linked to any of the tickets are ignored, so the
// caller may pass a superset. Transactions must be loaded with their tickets.
//
// The summary is fuzzy when an accepted ticket is unrated or flagged as
// having an estimated rating, or when a counted transaction also pays tickets
// outside the topic (its amount can't be split exactly).
func TopicSummary(tickets []ticket.Ticket, transactions []transaction.Transaction) Summary {
	own := make(map[uint]bool, len(tickets))
	fuzzy := false
	for _, t := range tickets {
		own[t.ID] = true
		if t.Status.IsAccepted() && (t.FuzzyRating || t.RatingPercentage == nil) {
			fuzzy = true
		}
	}

	paid := decimal.Zero
	counted := map[uint]bool{}
	for _, tx := range transactions {
		if counted[tx.ID] {
			continue
		}
		linked, foreign := false, false
		for _, tk := range tx.Tickets {
			if own[tk.ID] {
				linked = true
			} else {
				foreign = true
			}
		}
		if !linked {
			continue
		}
		counted[tx.ID] = true
		paid = paid.Add(tx.Amount)
		if foreign {
			fuzzy = true
		}
	}

	return NewSummary(TicketsAccepted(tickets), paid, fuzzy)
}

func positive(d decimal.Decimal) decimal.Decimal {
	if d.IsPositive() {
		return d
	}
	return decimal.Zero
}
