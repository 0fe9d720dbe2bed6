package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/api/middleware"
	"github.com/linskybing/grant-tracker/internal/application"
	"github.com/linskybing/grant-tracker/internal/domain/grant"
)

type TopicHandler struct {
	svc *application.TopicService
}

func NewTopicHandler(svc *application.TopicService) *TopicHandler {
	return &TopicHandler{svc: svc}
}

// ListTopics godoc
// @Summary List topics
// @Tags topics
// @Produce json
// @Success 200 {array} grant.Topic
// @Router /topics [get]
func (h *TopicHandler) ListTopics(c *gin.Context) {
	topics, err := h.svc.ListTopics()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

// TopicTable godoc
// @Summary Ticket form hints keyed by topic id
// @Tags topics
// @Produce json
// @Success 200 {object} map[string]grant.TopicFormInfo
// @Router /topics/table [get]
func (h *TopicHandler) TopicTable(c *gin.Context) {
	table, err := h.svc.TopicTable()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// GetTopic godoc
// @Summary Topic with its tickets and payment summary
// @Tags topics
// @Produce json
// @Param id path int true "Topic ID"
// @Success 200 {object} application.TopicDetail
// @Failure 404 {object} response.ErrorResponse "Topic not found"
// @Router /topics/{id} [get]
func (h *TopicHandler) GetTopic(c *gin.Context) {
	id, ok := parseID(c, "id", "topic")
	if !ok {
		return
	}
	detail, err := h.svc.GetTopic(middleware.ActorFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListAdminTopics godoc
// @Summary Topics the caller administers
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} grant.Topic
// @Router /admin/topics [get]
func (h *TopicHandler) ListAdminTopics(c *gin.Context) {
	topics, err := h.svc.ListAdministeredTopics(middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

// CreateTopic godoc
// @Summary Create a topic
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body grant.CreateTopicDTO true "Topic"
// @Success 201 {object} grant.Topic
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Supervisor access required"
// @Router /admin/topics [post]
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var input grant.CreateTopicDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	t, err := h.svc.CreateTopic(c, middleware.ActorFrom(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateTopic godoc
// @Summary Edit a topic
// @Description Topic admins may edit everything except the grant and the admin set.
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Topic ID"
// @Param input body grant.UpdateTopicDTO true "Changed fields"
// @Success 200 {object} grant.Topic
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /admin/topics/{id} [put]
func (h *TopicHandler) UpdateTopic(c *gin.Context) {
	id, ok := parseID(c, "id", "topic")
	if !ok {
		return
	}
	var input grant.UpdateTopicDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	t, err := h.svc.UpdateTopic(c, middleware.ActorFrom(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
