package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetBinding(c *gin.Context) {
	binding, err := h.bindingSvc.Get(c.Request.Context(), h.appName)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, binding)
}
