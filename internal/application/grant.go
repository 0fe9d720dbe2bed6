package application

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/domain/audit"
	"github.com/linskybing/grant-tracker/internal/domain/finance"
	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/permission"
	"github.com/linskybing/grant-tracker/internal/repository"
)

var slugPattern = regexp.MustCompile(`^[-a-z0-9_]+$`)

type GrantService struct {
	Repos   *repository.Repos
	Finance *FinanceService
}

func NewGrantService(repos *repository.Repos, fin *FinanceService) *GrantService {
	return &GrantService{
		Repos:   repos,
		Finance: fin,
	}
}

type GrantDetail struct {
	Grant   grant.Grant     `json:"grant"`
	Topics  []TopicFinance  `json:"topics"`
	Finance finance.Summary `json:"finance"`
}

func (s *GrantService) ListGrants() ([]grant.Grant, error) {
	return s.Repos.Grant.ListGrants()
}

// GetGrantBySlug returns the grant with the payment summary of each topic.
func (s *GrantService) GetGrantBySlug(slug string) (GrantDetail, error) {
	g, err := s.Repos.Grant.GetGrantBySlug(slug)
	if err != nil {
		return GrantDetail{}, notFound(err, "grant", slug)
	}
	gf, err := s.Finance.grantFinance(g)
	if err != nil {
		return GrantDetail{}, err
	}
	return GrantDetail{Grant: gf.Grant, Topics: gf.Topics, Finance: gf.Finance}, nil
}

func (s *GrantService) CreateGrant(c *gin.Context, actor permission.Actor, input grant.CreateGrantDTO) (grant.Grant, error) {
	if !actor.Supervisor {
		return grant.Grant{}, ErrPermissionDenied
	}
	slug := input.Slug
	if slug == "" {
		slug = strings.ToLower(input.ShortName)
	}
	if !slugPattern.MatchString(slug) {
		return grant.Grant{}, NewValidationError("slug", "Use lowercase letters, digits, dashes and underscores only.")
	}
	if _, err := s.Repos.Grant.GetGrantBySlug(slug); err == nil {
		return grant.Grant{}, NewValidationError("slug", "A grant with this slug already exists.")
	} else if !isNotFound(err) {
		return grant.Grant{}, err
	}

	g := grant.Grant{
		FullName:  input.FullName,
		ShortName: input.ShortName,
		Slug:      slug,
	}
	if err := s.Repos.Grant.CreateGrant(&g); err != nil {
		return grant.Grant{}, err
	}
	recordAudit(c, s.Repos, audit.Entry{
		Action:     audit.ActionCreate,
		Resource:   audit.ResourceGrant,
		ResourceID: g.ID,
		After:      g,
	})
	return g, nil
}
