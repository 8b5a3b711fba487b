package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// auditPathsToSkip contains paths that should not produce audit entries.
var auditPathsToSkip = map[string]bool{
	"/health": true,
}

// auditMethodActions maps HTTP verbs to audit actions. Reads are not audited.
var auditMethodActions = map[string]string{
	http.MethodPost:   "CREATE",
	http.MethodPut:    "UPDATE",
	http.MethodPatch:  "UPDATE",
	http.MethodDelete: "DELETE",
}

// AuditRecorder is the narrow slice of the audit service the middleware needs.
type AuditRecorder interface {
	Record(ctx *gin.Context, entry domain.AuditLog)
}

// AuditMiddleware creates a Gin middleware handler that appends an audit log
// entry for every successful mutating request.
func AuditMiddleware(recorder AuditRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if recorder == nil || auditPathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		action, mutating := auditMethodActions[c.Request.Method]

		// Process request first
		c.Next()

		if !mutating {
			return
		}

		// Skip if the request failed
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		module := moduleFromRoute(c.FullPath())
		if module == "" {
			return
		}

		recorder.Record(c, domain.AuditLog{
			AuditLogID: uuid.NewString(),
			UserID:     userID,
			Action:     action,
			Module:     module,
			Details:    c.Request.Method + " " + c.Request.URL.Path,
			IPAddress:  c.ClientIP(),
			URL:        c.Request.URL.Path,
			UserAgent:  c.Request.UserAgent(),
			Timestamp:  time.Now(),
		})
	}
}

// moduleFromRoute extracts the module name from a route path
// (e.g. "/api/v1/purchases/:purchaseID" -> "purchases").
func moduleFromRoute(routePath string) string {
	trimmed := strings.TrimPrefix(routePath, "/api/v1/")
	if trimmed == routePath || trimmed == "" {
		return ""
	}
	if idx := strings.Index(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return trimmed
}
