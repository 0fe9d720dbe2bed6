package application

import (
	"github.com/linskybing/grant-tracker/internal/domain/finance"
	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/shopspring/decimal"
)

type FinanceService struct {
	Repos *repository.Repos
}

func NewFinanceService(repos *repository.Repos) *FinanceService {
	return &FinanceService{
		Repos: repos,
	}
}

type TopicFinance struct {
	Topic   grant.Topic     `json:"topic"`
	Finance finance.Summary `json:"finance"`
}

type GrantFinance struct {
	Grant   grant.Grant     `json:"grant"`
	Topics  []TopicFinance  `json:"topics"`
	Finance finance.Summary `json:"finance"`
}

type FinanceOverview struct {
	Grants            []GrantFinance      `json:"grants"`
	ClusterSums       finance.ClusterSums `json:"cluster_sums"`
	TotalTransactions decimal.Decimal     `json:"total_transactions"`
	HaveFuzzy         bool                `json:"have_fuzzy"`
}

func (s *FinanceService) TicketAcceptedExpeditures(ticketID uint) (decimal.Decimal, error) {
	t, err := s.Repos.Ticket.GetTicketByID(ticketID)
	if err != nil {
		return decimal.Zero, notFound(err, "ticket", ticketID)
	}
	return finance.AcceptedExpeditures(t), nil
}

func (s *FinanceService) TopicPaymentSummary(topicID uint) (finance.Summary, error) {
	if _, err := s.Repos.Topic.GetTopicByID(topicID); err != nil {
		return finance.Summary{}, notFound(err, "topic", topicID)
	}
	return s.topicSummary(topicID)
}

func (s *FinanceService) GrantPaymentSummary(grantID uint) (finance.Summary, error) {
	g, err := s.Repos.Grant.GetGrantByID(grantID)
	if err != nil {
		return finance.Summary{}, notFound(err, "grant", grantID)
	}
	gf, err := s.grantFinance(g)
	if err != nil {
		return finance.Summary{}, err
	}
	return gf.Finance, nil
}

func (s *FinanceService) ClusterTotals() (finance.ClusterSums, error) {
	clusters, err := s.Repos.Cluster.ListClusters()
	if err != nil {
		return finance.ClusterSums{}, err
	}
	balances := make([]finance.Balance, 0, len(clusters))
	for _, c := range clusters {
		balances = append(balances, finance.ClusterBalance(c.Tickets, c.Transactions))
	}
	return finance.SumClusters(balances), nil
}

// FinanceOverview is the grants → topics finance table with the system-wide
// cluster totals.
func (s *FinanceService) FinanceOverview() (FinanceOverview, error) {
	grants, err := s.Repos.Grant.ListGrants()
	if err != nil {
		return FinanceOverview{}, err
	}
	out := FinanceOverview{Grants: make([]GrantFinance, 0, len(grants))}
	for _, g := range grants {
		gf, err := s.grantFinance(g)
		if err != nil {
			return FinanceOverview{}, err
		}
		out.Grants = append(out.Grants, gf)
		out.HaveFuzzy = out.HaveFuzzy || gf.Finance.Fuzzy
	}

	sums, err := s.ClusterTotals()
	if err != nil {
		return FinanceOverview{}, err
	}
	out.ClusterSums = sums
	out.TotalTransactions = sums.TotalTransactions()
	return out, nil
}

func (s *FinanceService) grantFinance(g grant.Grant) (GrantFinance, error) {
	topics := g.Topics
	g.Topics = nil
	gf := GrantFinance{Grant: g, Topics: make([]TopicFinance, 0, len(topics))}
	summaries := make([]finance.Summary, 0, len(topics))
	for _, t := range topics {
		sum, err := s.topicSummary(t.ID)
		if err != nil {
			return GrantFinance{}, err
		}
		gf.Topics = append(gf.Topics, TopicFinance{Topic: t, Finance: sum})
		summaries = append(summaries, sum)
	}
	gf.Finance = finance.Sum(summaries...)
	return gf, nil
}

func (s *FinanceService) topicSummary(topicID uint) (finance.Summary, error) {
	tickets, err := s.Repos.Ticket.ListTickets(repository.TicketFilter{TopicIDs: []uint{topicID}})
	if err != nil {
		return finance.Summary{}, err
	}
	return s.summaryFor(tickets)
}

// summaryFor is the topic summary over an already fetched ticket set.
func (s *FinanceService) summaryFor(tickets []ticket.Ticket) (finance.Summary, error) {
	if len(tickets) == 0 {
		return finance.Summary{}, nil
	}
	ids := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID)
	}
	txs, err := s.Repos.Transaction.ListTransactionsByTicketIDs(ids)
	if err != nil {
		return finance.Summary{}, err
	}
	return finance.TopicSummary(tickets, txs), nil
}
