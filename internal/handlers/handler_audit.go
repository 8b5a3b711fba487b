package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
	"github.com/subsadmin/subsadmin_backend/internal/middleware"
)

// auditLogHandler handles HTTP requests related to the audit trail.
type auditLogHandler struct {
	auditService portssvc.AuditSvcFacade
}

// newAuditLogHandler creates a new auditLogHandler.
func newAuditLogHandler(as portssvc.AuditSvcFacade) *auditLogHandler {
	return &auditLogHandler{
		auditService: as,
	}
}

// registerAuditLogRoutes registers routes related to the audit trail.
func registerAuditLogRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditLogHandler(auditService)

	auditLogs := rg.Group("/audit-logs")
	{
		auditLogs.GET("", h.listAuditLogs)
	}
}

// listAuditLogs godoc
// @Summary List audit entries
// @Description Retrieves a paginated list of audit entries, newest first, optionally filtered by module
// @Tags audit-logs
// @Produce  json
// @Param   module query string false "Filter by module (e.g. purchases)"
// @Param   page query int false "Page number" default(1)
// @Param   pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.AuditLogListResponse
// @Failure 500 {object} map[string]string "Failed to list audit entries"
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *auditLogHandler) listAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	module := c.Query("module")
	page, pageSize := pageParams(c)

	entries, total, err := h.auditService.ListAuditLogs(c.Request.Context(), module, page, pageSize)
	if err != nil {
		logger.Error("Failed to list audit entries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAuditLogListResponse(entries, page, pageSize, total))
}
