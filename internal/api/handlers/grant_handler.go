package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/api/middleware"
	"github.com/linskybing/grant-tracker/internal/application"
	"github.com/linskybing/grant-tracker/internal/domain/grant"
)

type GrantHandler struct {
	svc *application.GrantService
}

func NewGrantHandler(svc *application.GrantService) *GrantHandler {
	return &GrantHandler{svc: svc}
}

// ListGrants godoc
// @Summary List grants
// @Tags grants
// @Produce json
// @Success 200 {array} grant.Grant
// @Router /grants [get]
func (h *GrantHandler) ListGrants(c *gin.Context) {
	grants, err := h.svc.ListGrants()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grants)
}

// GetGrant godoc
// @Summary Grant with per-topic payment summaries
// @Tags grants
// @Produce json
// @Param slug path string true "Grant slug"
// @Success 200 {object} application.GrantDetail
// @Failure 404 {object} response.ErrorResponse "Grant not found"
// @Router /grants/{slug} [get]
func (h *GrantHandler) GetGrant(c *gin.Context) {
	detail, err := h.svc.GetGrantBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateGrant godoc
// @Summary Create a grant
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body grant.CreateGrantDTO true "Grant"
// @Success 201 {object} grant.Grant
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Supervisor access required"
// @Router /admin/grants [post]
func (h *GrantHandler) CreateGrant(c *gin.Context) {
	var input grant.CreateGrantDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	g, err := h.svc.CreateGrant(c, middleware.ActorFrom(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}
