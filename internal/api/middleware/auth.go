package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/permission"
	"github.com/linskybing/grant-tracker/internal/domain/user"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/linskybing/grant-tracker/pkg/response"
	"github.com/linskybing/grant-tracker/pkg/utils"
)

const actorKey = "actor"

// Auth handles authorization middleware
type Auth struct {
	repos    *repository.Repos
	resolver *permission.Resolver
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos, resolver *permission.Resolver) *Auth {
	return &Auth{repos: repos, resolver: resolver}
}

// --- Extractors ---

// TopicExtractor finds the topic a request is about.
type TopicExtractor func(c *gin.Context, repos *repository.Repos) (uint, error)

// TopicFromIDParam reads the topic id from the :id path parameter.
func TopicFromIDParam() TopicExtractor {
	return func(c *gin.Context, repos *repository.Repos) (uint, error) {
		return utils.ParseIDParam(c, "id")
	}
}

// TopicFromTicketParam resolves the topic of the ticket named by :id.
func TopicFromTicketParam() TopicExtractor {
	return func(c *gin.Context, repos *repository.Repos) (uint, error) {
		id, err := utils.ParseIDParam(c, "id")
		if err != nil {
			return 0, err
		}
		t, err := repos.Ticket.GetTicketByID(id)
		if err != nil {
			return 0, err
		}
		if t.TopicID == nil {
			return 0, nil
		}
		return *t.TopicID, nil
	}
}

// --- Actor ---

// LoadActor resolves the authenticated user into a permission.Actor. Role
// flags come from the database, not the token. Requests without claims get
// the anonymous actor.
func (a *Auth) LoadActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.Set(actorKey, permission.Actor{})
			c.Next()
			return
		}
		u, err := a.repos.User.GetUserByID(uid)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unknown user"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.Set(actorKey, permission.ActorFromUser(&u))
		c.Next()
	}
}

// ActorFrom returns the actor LoadActor stored, or the anonymous actor.
func ActorFrom(c *gin.Context) permission.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(permission.Actor); ok {
			return actor
		}
	}
	return permission.Actor{}
}

// --- Middleware Methods ---

// Staff admits staff users only.
func (a *Auth) Staff() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if actor.Anonymous() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}
		if !actor.Staff {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Staff access required"})
			return
		}
		c.Next()
	}
}

// Supervisor admits tracker supervisors only.
func (a *Auth) Supervisor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if actor.Anonymous() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}
		if !actor.Supervisor {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Supervisor access required"})
			return
		}
		c.Next()
	}
}

// TopicAdmin admits users who may administer the extracted topic.
// Supervisors pass without a lookup.
func (a *Auth) TopicAdmin(extractor TopicExtractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if actor.Anonymous() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}
		if actor.Supervisor && actor.Staff {
			c.Next()
			return
		}

		topicID, err := extractor(c, a.repos)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, response.ErrorResponse{Error: "Not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
			return
		}

		adminIDs, err := a.repos.Topic.GetAdminIDs(topicID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
			return
		}
		perms := a.resolver.ForTopic(actor, topicWithAdmins(topicID, adminIDs))
		if !perms.CanAdminister {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Permission denied for this topic"})
			return
		}
		c.Next()
	}
}

func topicWithAdmins(id uint, adminIDs []uint) grant.Topic {
	t := grant.Topic{ID: id}
	for _, uid := range adminIDs {
		t.Admins = append(t.Admins, user.User{UID: uid})
	}
	return t
}

// DocumentAccess guards document routes of the ticket named by :id.
type DocumentAccess int

const (
	DocumentsRead DocumentAccess = iota
	DocumentsWrite
)

// TicketDocuments checks document rights on the ticket before the handler
// runs.
func (a *Auth) TicketDocuments(access DocumentAccess) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if actor.Anonymous() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}
		id, err := utils.ParseIDParam(c, "id")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ticket id"})
			return
		}
		t, err := a.repos.Ticket.GetTicketByID(id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, response.ErrorResponse{Error: "Ticket not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
			return
		}
		var adminIDs []uint
		if t.Topic != nil {
			adminIDs = t.Topic.AdminIDs()
		}
		perms := a.resolver.ForTicket(actor, t, adminIDs)
		allowed := perms.CanSeeDocuments
		if access == DocumentsWrite {
			allowed = perms.CanEditDocuments
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "You cannot see this ticket's documents."})
			return
		}
		c.Next()
	}
}
