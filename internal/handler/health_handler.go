package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	svc TaskService
}

func NewHealthHandler(svc TaskService) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Check godoc
// @Summary      Liveness probe
// @Description  Reports whether the service is up and whether a task store is configured
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"store_configured": h.svc.Configured(),
	})
}
