package finance

import (
	"sort"

	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/transaction"
	"github.com/shopspring/decimal"
)

// Link is one edge of the ticket/transaction graph.
type Link struct {
	TicketID      uint
	TransactionID uint
}

// Component is a connected set of tickets and transactions. ID is the
// smallest ticket id in the set.
type Component struct {
	ID             uint
	TicketIDs      []uint
	TransactionIDs []uint
}

// BuildClusters partitions the graph into connected components. Every ticket
// in ticketIDs ends up in exactly one component, alone if it has no links.
// Transactions linked to no known ticket are left out.
func BuildClusters(ticketIDs []uint, links []Link) []Component {
	uf := newUnionFind()
	for _, id := range ticketIDs {
		uf.add(id)
	}
	// Tickets are joined through the first ticket seen for each transaction.
	anchor := map[uint]uint{}
	for _, l := range links {
		if !uf.has(l.TicketID) {
			continue
		}
		if first, ok := anchor[l.TransactionID]; ok {
			uf.union(first, l.TicketID)
		} else {
			anchor[l.TransactionID] = l.TicketID
		}
	}

	byRoot := map[uint]*Component{}
	for _, id := range uf.members() {
		root := uf.find(id)
		c, ok := byRoot[root]
		if !ok {
			c = &Component{ID: id}
			byRoot[root] = c
		}
		if id < c.ID {
			c.ID = id
		}
		c.TicketIDs = append(c.TicketIDs, id)
	}
	for txID, tkID := range anchor {
		c := byRoot[uf.find(tkID)]
		c.TransactionIDs = append(c.TransactionIDs, txID)
	}

	out := make([]Component, 0, len(byRoot))
	for _, c := range byRoot {
		sortIDs(c.TicketIDs)
		sortIDs(c.TransactionIDs)
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Balance is what a cluster's tickets ask for against what its transactions
// paid.
type Balance struct {
	Tickets      decimal.Decimal `json:"total_tickets"`
	Transactions decimal.Decimal `json:"total_transactions"`
}

func ClusterBalance(tickets []ticket.Ticket, transactions []transaction.Transaction) Balance {
	tx := decimal.Zero
	for _, t := range transactions {
		tx = tx.Add(t.Amount)
	}
	return Balance{Tickets: TicketsAccepted(tickets), Transactions: tx}
}

func (b Balance) Paid() decimal.Decimal {
	return decimal.Min(b.Tickets, b.Transactions)
}

func (b Balance) Overpaid() decimal.Decimal {
	return positive(b.Transactions.Sub(b.Tickets))
}

func (b Balance) Unpaid() decimal.Decimal {
	return positive(b.Tickets.Sub(b.Transactions))
}

// PaymentStatus classifies the balance for display next to every ticket of
// the cluster.
func (b Balance) PaymentStatus() ticket.PaymentStatus {
	switch {
	case b.Tickets.IsZero() && b.Transactions.IsZero():
		return ticket.PaymentNotApplicable
	case b.Transactions.GreaterThan(b.Tickets):
		return ticket.PaymentOverpaid
	case b.Transactions.Equal(b.Tickets):
		return ticket.PaymentPaid
	case b.Transactions.IsPositive():
		return ticket.PaymentPartial
	default:
		return ticket.PaymentUnpaid
	}
}

// ReconciledStatus is the status an accepted ticket should have given the
// balance of its cluster. Tickets outside the accepted family keep theirs.
func (b Balance) ReconciledStatus(current ticket.Status) ticket.Status {
	if !current.IsAccepted() {
		return current
	}
	switch {
	case !b.Transactions.IsPositive():
		return ticket.StatusAccepted
	case b.Transactions.GreaterThanOrEqual(b.Tickets):
		return ticket.StatusPaid
	default:
		return ticket.StatusPartiallyPaid
	}
}

// ClusterSums is the system-wide reconciliation total.
type ClusterSums struct {
	Paid     decimal.Decimal `json:"paid"`
	Overpaid decimal.Decimal `json:"overpaid"`
	Unpaid   decimal.Decimal `json:"unpaid"`
}

func (s ClusterSums) TotalTransactions() decimal.Decimal {
	return s.Paid.Add(s.Overpaid)
}

func SumClusters(balances []Balance) ClusterSums {
	sums := ClusterSums{Paid: decimal.Zero, Overpaid: decimal.Zero, Unpaid: decimal.Zero}
	for _, b := range balances {
		sums.Paid = sums.Paid.Add(b.Paid())
		sums.Overpaid = sums.Overpaid.Add(b.Overpaid())
		sums.Unpaid = sums.Unpaid.Add(b.Unpaid())
	}
	return sums
}

func sortIDs(ids []uint) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

type unionFind struct {
	parent map[uint]uint
	order  []uint
}

func newUnionFind() *unionFind {
	return &unionFind{parent: map[uint]uint{}}
}

func (u *unionFind) add(id uint) {
	if _, ok := u.parent[id]; ok {
		return
	}
	u.parent[id] = id
	u.order = append(u.order, id)
}

func (u *unionFind) has(id uint) bool {
	_, ok := u.parent[id]
	return ok
}

func (u *unionFind) members() []uint {
	return u.order
}

func (u *unionFind) find(id uint) uint {
	for u.parent[id] != id {
		u.parent[id] = u.parent[u.parent[id]]
		id = u.parent[id]
	}
	return id
}

func (u *unionFind) union(a, b uint) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[rb] = ra
	}
}
