package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feeddigital/cursos-api/internal/types/responses"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health godoc
// @Summary      Health check
// @Description  Checks if the server is running
// @Tags         health
// @Produce      json
// @Success      200  {object}  responses.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthResponse{Status: "ok"})
}

// Root godoc
// @Summary      Liveness text
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "server ok"
// @Router       / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "server ok")
}
