package finance

import (
	"testing"

	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/transaction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rating(p int) *int {
	return &p
}

func ticketWith(id uint, status ticket.Status, r *int, amounts ...string) ticket.Ticket {
	t := ticket.Ticket{ID: id, Status: status, RatingPercentage: r}
	for _, a := range amounts {
		t.Expeditures = append(t.Expeditures, ticket.Expediture{TicketID: id, Amount: d(a)})
	}
	return t
}

func txFor(id uint, amount string, tickets ...ticket.Ticket) transaction.Transaction {
	return transaction.Transaction{ID: id, Amount: d(amount), Tickets: tickets}
}

func assertSummary(t *testing.T, want, got Summary) {
	t.Helper()
	if !want.Equal(got) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestAcceptedExpeditures(t *testing.T) {
	tests := []struct {
		name string
		t    ticket.Ticket
		want string
	}{
		{"half of 200", ticketWith(1, ticket.StatusAccepted, rating(50), "150.00", "50.00"), "100.00"},
		{"full rating", ticketWith(1, ticket.StatusPaid, rating(100), "12.34"), "12.34"},
		{"rounds half up", ticketWith(1, ticket.StatusAccepted, rating(50), "0.05"), "0.03"},
		{"rounds down below half", ticketWith(1, ticket.StatusAccepted, rating(33), "10.00"), "3.30"},
		{"zero rating", ticketWith(1, ticket.StatusAccepted, rating(0), "10.00"), "0"},
		{"unrated", ticketWith(1, ticket.StatusAccepted, nil, "10.00"), "0"},
		{"not accepted yet", ticketWith(1, ticket.StatusSubmitted, rating(100), "10.00"), "0"},
		{"rejected", ticketWith(1, ticket.StatusRejected, rating(100), "10.00"), "0"},
		{"partially paid counts", ticketWith(1, ticket.StatusPartiallyPaid, rating(80), "10.00"), "8.00"},
		{"no expeditures", ticketWith(1, ticket.StatusAccepted, rating(100)), "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AcceptedExpeditures(tt.t)
			assert.True(t, d(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestTopicSummary_ZeroTickets(t *testing.T) {
	got := TopicSummary(nil, nil)
	assertSummary(t, Summary{}, got)
	assert.False(t, got.Fuzzy)
}

func TestTopicSummary_OnlyUnreviewedTickets(t *testing.T) {
	tickets := []ticket.Ticket{
		ticketWith(1, ticket.StatusNew, rating(100), "10.00"),
		ticketWith(2, ticket.StatusSubmitted, rating(50), "99.99"),
	}
	got := TopicSummary(tickets, nil)
	assert.True(t, got.Accepted.IsZero())
	assert.False(t, got.Fuzzy)
}

func TestTopicSummary_NoTransactions(t *testing.T) {
	tk := ticketWith(1, ticket.StatusAccepted, rating(100), "42.00")
	got := TopicSummary([]ticket.Ticket{tk}, nil)
	assertSummary(t, NewSummary(d("42.00"), decimal.Zero, false), got)
	assert.True(t, got.Unpaid.Equal(got.Accepted))
	assert.True(t, got.Overpaid.IsZero())
}

func TestTopicSummary_PaymentScenario(t *testing.T) {
	tk := ticketWith(7, ticket.StatusAccepted, rating(50), "120.00", "80.00")
	tickets := []ticket.Ticket{tk}

	first := txFor(1, "60.00", tk)
	got := TopicSummary(tickets, []transaction.Transaction{first})
	assertSummary(t, Summary{
		Accepted: d("100.00"),
		Paid:     d("60.00"),
		Overpaid: decimal.Zero,
		Unpaid:   d("40.00"),
	}, got)

	second := txFor(2, "50.00", tk)
	got = TopicSummary(tickets, []transaction.Transaction{first, second})
	assertSummary(t, Summary{
		Accepted: d("100.00"),
		Paid:     d("110.00"),
		Overpaid: d("10.00"),
		Unpaid:   decimal.Zero,
	}, got)
}

func TestTopicSummary_TransactionCountedOnce(t *testing.T) {
	a := ticketWith(1, ticket.StatusAccepted, rating(100), "10.00")
	b := ticketWith(2, ticket.StatusAccepted, rating(100), "10.00")
	tx := txFor(5, "20.00", a, b)
	got := TopicSummary([]ticket.Ticket{a, b}, []transaction.Transaction{tx, tx})
	assert.True(t, d("20.00").Equal(got.Paid))
	assert.True(t, got.Unpaid.IsZero())
	assert.False(t, got.Fuzzy)
}

func TestTopicSummary_IgnoresUnlinkedTransactions(t *testing.T) {
	a := ticketWith(1, ticket.StatusAccepted, rating(100), "10.00")
	other := ticketWith(9, ticket.StatusAccepted, rating(100), "10.00")
	got := TopicSummary([]ticket.Ticket{a}, []transaction.Transaction{txFor(3, "99.00", other)})
	assert.True(t, got.Paid.IsZero())
	assert.False(t, got.Fuzzy)
}

func TestTopicSummary_Fuzzy(t *testing.T) {
	t.Run("flagged rating", func(t *testing.T) {
		tk := ticketWith(1, ticket.StatusAccepted, rating(50), "10.00")
		tk.FuzzyRating = true
		assert.True(t, TopicSummary([]ticket.Ticket{tk}, nil).Fuzzy)
	})
	t.Run("flag on unreviewed ticket is ignored", func(t *testing.T) {
		tk := ticketWith(1, ticket.StatusSubmitted, rating(50), "10.00")
		tk.FuzzyRating = true
		assert.False(t, TopicSummary([]ticket.Ticket{tk}, nil).Fuzzy)
	})
	t.Run("accepted but unrated", func(t *testing.T) {
		tk := ticketWith(1, ticket.StatusAccepted, nil, "10.00")
		assert.True(t, TopicSummary([]ticket.Ticket{tk}, nil).Fuzzy)
	})
	t.Run("transaction shared with another topic", func(t *testing.T) {
		own := ticketWith(1, ticket.StatusAccepted, rating(100), "10.00")
		foreign := ticketWith(2, ticket.StatusAccepted, rating(100), "10.00")
		got := TopicSummary([]ticket.Ticket{own}, []transaction.Transaction{txFor(1, "20.00", own, foreign)})
		assert.True(t, got.Fuzzy)
	})
}

func TestSummaryInvariants(t *testing.T) {
	cases := [][]string{{"100.00", "60.00"}, {"100.00", "110.00"}, {"0", "5.00"}, {"33.33", "33.33"}}
	for _, c := range cases {
		s := NewSummary(d(c[0]), d(c[1]), false)
		if s.Overpaid.IsZero() {
			assert.True(t, s.Paid.Add(s.Unpaid).Equal(s.Accepted), "%v", c)
		} else {
			assert.True(t, s.Paid.Sub(s.Accepted).Equal(s.Overpaid), "%v", c)
			assert.True(t, s.Unpaid.IsZero(), "%v", c)
		}
	}
}

func TestGrantSummary(t *testing.T) {
	a := Summary{Accepted: d("10"), Paid: d("5"), Overpaid: d("0"), Unpaid: d("5")}
	b := Summary{Accepted: d("20"), Paid: d("20"), Overpaid: d("0"), Unpaid: d("0")}
	want := Summary{Accepted: d("30"), Paid: d("25"), Overpaid: d("0"), Unpaid: d("5")}

	assertSummary(t, want, Sum(a, b))
	assertSummary(t, want, Sum(b, a))
	assertSummary(t, Sum(a, b, a), a.Add(b.Add(a)))
	assert.False(t, Sum(a, b).Fuzzy)

	b.Fuzzy = true
	assert.True(t, Sum(a, b).Fuzzy)
	assertSummary(t, Summary{}, Sum())
}

func TestGrantSummaryEqualsSumOfTopics(t *testing.T) {
	tk1 := ticketWith(1, ticket.StatusAccepted, rating(50), "200.00")
	tk2 := ticketWith(2, ticket.StatusPaid, rating(100), "30.10")
	tk3 := ticketWith(3, ticket.StatusSubmitted, nil, "5.00")
	topics := []grant.Topic{{ID: 1}, {ID: 2}}
	byTopic := map[uint][]ticket.Ticket{1: {tk1, tk3}, 2: {tk2}}
	txs := []transaction.Transaction{txFor(1, "60.00", tk1), txFor(2, "40.00", tk2)}

	var topicSummaries []Summary
	for _, tp := range topics {
		topicSummaries = append(topicSummaries, TopicSummary(byTopic[tp.ID], txs))
	}
	got := Sum(topicSummaries...)
	assert.True(t, d("130.10").Equal(got.Accepted))
	assert.True(t, d("100.00").Equal(got.Paid))
	assert.True(t, d("9.90").Equal(got.Overpaid))
	assert.True(t, d("40.00").Equal(got.Unpaid))
}

func TestAmountFits(t *testing.T) {
	assert.True(t, AmountFits(d("9999999999.99")))
	assert.True(t, AmountFits(d("-9999999999.99")))
	assert.False(t, AmountFits(d("10000000000")))
	assert.False(t, AmountFits(d("-123456789012345.00")))
	// rounds up to the limit
	assert.False(t, AmountFits(d("9999999999.995")))
}
