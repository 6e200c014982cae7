package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListStage(c *gin.Context) {
	objects, err := h.stage.List(c.Request.Context(), c.Query("prefix"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": objects, "total": len(objects)})
}

// RunSync refreshes the mirror and re-runs the declared sync groups.
func (h *Handler) RunSync(c *gin.Context) {
	results, err := h.syncSvc.Resync(c.Request.Context(), h.syncGroups)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": results})
}
