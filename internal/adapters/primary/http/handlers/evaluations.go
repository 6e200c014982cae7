package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eval-workbench/internal/core/domain"
)

type saveEvaluationRequest struct {
	Description       string                 `json:"description"`
	MetricNames       []string               `json:"metric_names"`
	SourceQuery       string                 `json:"source_query"`
	ParamAssignments  map[string]interface{} `json:"param_assignments"`
	AssociatedObjects map[string]interface{} `json:"associated_objects"`
	Models            map[string]interface{} `json:"models"`
}

func (h *Handler) ListSavedEvaluations(c *gin.Context) {
	h.listEvaluations(c, domain.EvaluationKindSaved)
}

func (h *Handler) ListAutoEvaluations(c *gin.Context) {
	h.listEvaluations(c, domain.EvaluationKindAuto)
}

func (h *Handler) listEvaluations(c *gin.Context, kind domain.EvaluationKind) {
	evals, err := h.catalogSvc.List(c.Request.Context(), kind)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": evals, "total": len(evals)})
}

func (h *Handler) GetSavedEvaluation(c *gin.Context) {
	h.getEvaluation(c, domain.EvaluationKindSaved)
}

func (h *Handler) GetAutoEvaluation(c *gin.Context) {
	h.getEvaluation(c, domain.EvaluationKindAuto)
}

func (h *Handler) getEvaluation(c *gin.Context, kind domain.EvaluationKind) {
	eval, err := h.catalogSvc.Get(c.Request.Context(), kind, c.Param("name"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, eval)
}

func (h *Handler) SaveSavedEvaluation(c *gin.Context) {
	h.saveEvaluation(c, domain.EvaluationKindSaved)
}

func (h *Handler) SaveAutoEvaluation(c *gin.Context) {
	h.saveEvaluation(c, domain.EvaluationKindAuto)
}

// saveEvaluation upserts by name; saving under an existing name overwrites.
func (h *Handler) saveEvaluation(c *gin.Context, kind domain.EvaluationKind) {
	var req saveEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eval := &domain.Evaluation{
		Name:              c.Param("name"),
		Description:       req.Description,
		MetricNames:       req.MetricNames,
		SourceQuery:       req.SourceQuery,
		ParamAssignments:  req.ParamAssignments,
		AssociatedObjects: req.AssociatedObjects,
		Models:            req.Models,
	}
	if err := h.catalogSvc.Save(c.Request.Context(), kind, eval); err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, eval)
}
