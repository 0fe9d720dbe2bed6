package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/application"
)

type ClusterHandler struct {
	svc *application.ClusterService
}

func NewClusterHandler(svc *application.ClusterService) *ClusterHandler {
	return &ClusterHandler{svc: svc}
}

type RebuildResponse struct {
	Clusters int `json:"clusters"`
}

// GetCluster godoc
// @Summary Cluster with its tickets, transactions and balance
// @Description A ticket id redirects to the cluster holding that ticket.
// @Tags clusters
// @Produce json
// @Param id path int true "Cluster or ticket ID"
// @Success 200 {object} application.ClusterDetail
// @Success 302 "Redirect to the ticket's cluster"
// @Failure 404 {object} response.ErrorResponse "Cluster not found"
// @Router /clusters/{id} [get]
func (h *ClusterHandler) GetCluster(c *gin.Context) {
	id, ok := parseID(c, "id", "cluster")
	if !ok {
		return
	}
	detail, err := h.svc.GetCluster(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if detail.RedirectedFrom != nil {
		c.Redirect(http.StatusFound, fmt.Sprintf("/clusters/%d", detail.Cluster.ID))
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Rebuild godoc
// @Summary Recompute clusters and settle every ticket
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} handlers.RebuildResponse
// @Failure 403 {object} response.ErrorResponse "Supervisor access required"
// @Router /admin/clusters/rebuild [post]
func (h *ClusterHandler) Rebuild(c *gin.Context) {
	n, err := h.svc.RebuildClusters(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RebuildResponse{Clusters: n})
}
