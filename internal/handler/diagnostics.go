package handler

import (
	"net/http"

	"travelbot/internal/service"

	"github.com/gin-gonic/gin"
)

// DiagnosticsHandler reports on backend and storage availability
type DiagnosticsHandler struct {
	diagnostics *service.DiagnosticsService
}

// NewDiagnosticsHandler creates a new diagnostics handler
func NewDiagnosticsHandler(diagnostics *service.DiagnosticsService) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		diagnostics: diagnostics,
	}
}

// Test handles GET /test. It always answers 200; problems are in the body.
func (h *DiagnosticsHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, h.diagnostics.Report(c.Request.Context()))
}
