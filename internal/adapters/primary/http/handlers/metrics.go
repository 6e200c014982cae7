package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eval-workbench/internal/core/domain"
)

type registerMetricRequest struct {
	MetricName   string `json:"metric_name" binding:"required"`
	ShowMetric   *bool  `json:"show_metric"`
	CreationUser string `json:"creation_user"`
}

func (h *Handler) ListMetrics(c *gin.Context) {
	metrics, err := h.lifecycleSvc.List(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": metrics, "total": len(metrics)})
}

func (h *Handler) RegisterMetric(c *gin.Context) {
	var req registerMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	show := true
	if req.ShowMetric != nil {
		show = *req.ShowMetric
	}
	metric := &domain.CustomMetric{
		MetricName:   req.MetricName,
		ShowMetric:   show,
		CreationUser: req.CreationUser,
	}
	if err := h.lifecycleSvc.Register(c.Request.Context(), metric); err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, metric)
}

// DeleteMetric runs the paired deletion and reports the tagged outcome.
// Benign outcomes (already absent, retried delete) are 200; only a store
// failure maps to an error status, with the row left untouched when the
// object store was the failing side.
func (h *Handler) DeleteMetric(c *gin.Context) {
	outcome, err := h.lifecycleSvc.Delete(c.Request.Context(), c.Param("name"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	status := http.StatusOK
	if outcome.Failed() {
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{
		"outcome": outcome,
		"message": outcome.Message(),
	})
}

func (h *Handler) AuditMetrics(c *gin.Context) {
	dangling, err := h.lifecycleSvc.Audit(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dangling": dangling, "total": len(dangling)})
}
