package handlers

import (
	"eval-workbench/internal/core/domain"
	ports "eval-workbench/internal/core/ports/output"
	"eval-workbench/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalogSvc   *services.EvaluationCatalogService
	lifecycleSvc *services.MetricLifecycleService
	bindingSvc   *services.AppBindingService
	syncSvc      *services.SyncService
	stage        ports.StageStore
	syncGroups   []domain.SyncGroup
	appName      string
}

func New(
	catalogSvc *services.EvaluationCatalogService,
	lifecycleSvc *services.MetricLifecycleService,
	bindingSvc *services.AppBindingService,
	syncSvc *services.SyncService,
	stage ports.StageStore,
	syncGroups []domain.SyncGroup,
	appName string,
) *Handler {
	return &Handler{
		catalogSvc:   catalogSvc,
		lifecycleSvc: lifecycleSvc,
		bindingSvc:   bindingSvc,
		syncSvc:      syncSvc,
		stage:        stage,
		syncGroups:   syncGroups,
		appName:      appName,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Saved / auto evaluations
	r.GET("/evaluations", h.ListSavedEvaluations)
	r.GET("/evaluations/:name", h.GetSavedEvaluation)
	r.PUT("/evaluations/:name", h.SaveSavedEvaluation)
	r.GET("/auto_evaluations", h.ListAutoEvaluations)
	r.GET("/auto_evaluations/:name", h.GetAutoEvaluation)
	r.PUT("/auto_evaluations/:name", h.SaveAutoEvaluation)

	// Custom metrics
	r.GET("/metrics", h.ListMetrics)
	r.POST("/metrics", h.RegisterMetric)
	r.GET("/metrics/audit", h.AuditMetrics)
	r.DELETE("/metrics/:name", h.DeleteMetric)

	// Stage + sync
	r.GET("/stage", h.ListStage)
	r.POST("/sync", h.RunSync)

	// Application binding
	r.GET("/binding", h.GetBinding)
}
