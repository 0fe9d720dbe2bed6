package application

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/domain/audit"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/linskybing/grant-tracker/pkg/utils"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) QueryAuditLogs(f repository.AuditFilter) ([]audit.AuditLog, error) {
	return s.Repos.Audit.ListAuditLogs(f)
}

// TicketHistory is the audit trail of one ticket, oldest change first.
func (s *AuditService) TicketHistory(id uint) ([]audit.AuditLog, error) {
	if _, err := s.Repos.Ticket.GetTicketByID(id); err != nil {
		return nil, notFound(err, "ticket", id)
	}
	return s.Repos.Audit.ResourceHistory(audit.ResourceTicket, id)
}

// CleanupOldLogs drops rows older than days and reports how many went.
func (s *AuditService) CleanupOldLogs(days int) (int64, error) {
	if days <= 0 {
		return 0, NewValidationError("days", "retention must be positive")
	}
	return s.Repos.Audit.PurgeAuditLogsBefore(time.Now().AddDate(0, 0, -days))
}

// recordAudit writes an audit row for requests. Calls without a request
// context (trackerctl) are not audited.
func recordAudit(c *gin.Context, repos *repository.Repos, entry audit.Entry) {
	if c == nil {
		return
	}
	utils.LogAuditWithConsole(c, entry, repos.Audit)
}
