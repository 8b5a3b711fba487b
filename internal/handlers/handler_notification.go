package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
	"github.com/subsadmin/subsadmin_backend/internal/middleware"
)

// markNotificationSentRequest reports the delivery outcome for a queued
// notification.
type markNotificationSentRequest struct {
	Delivered bool `json:"delivered"`
}

// notificationHandler handles HTTP requests related to notifications.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

// newNotificationHandler creates a new notificationHandler.
func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{
		notificationService: ns,
	}
}

// registerNotificationRoutes registers routes related to notifications.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.POST("", h.enqueueNotification)
		notifications.GET("", h.listNotifications)
		notifications.PATCH("/:notificationID/status", h.markNotificationSent)
	}
}

// enqueueNotification godoc
// @Summary Queue a notification
// @Description Queues a notification for delivery over the chosen channel
// @Tags notifications
// @Accept  json
// @Produce  json
// @Param   notification body dto.EnqueueNotificationRequest true "Notification details"
// @Success 201 {object} dto.NotificationResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown recipient"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to queue notification"
// @Security BearerAuth
// @Router /notifications [post]
func (h *notificationHandler) enqueueNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EnqueueNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for EnqueueNotification", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notification, err := h.notificationService.Enqueue(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error queuing notification", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to queue notification in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue notification"})
		}
		return
	}

	logger.Info("Notification queued",
		slog.String("notification_id", notification.NotificationID),
		slog.String("channel", string(notification.Channel)))
	c.JSON(http.StatusCreated, dto.ToNotificationResponse(notification))
}

// markNotificationSent godoc
// @Summary Report a notification delivery outcome
// @Description Marks a queued notification as sent or failed
// @Tags notifications
// @Accept  json
// @Produce  json
// @Param   notificationID path string true "Notification ID"
// @Param   outcome body markNotificationSentRequest true "Delivery outcome"
// @Success 204 "Outcome recorded"
// @Failure 404 {object} map[string]string "Notification not found"
// @Failure 500 {object} map[string]string "Failed to update notification"
// @Security BearerAuth
// @Router /notifications/{notificationID}/status [patch]
func (h *notificationHandler) markNotificationSent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	notificationID := c.Param("notificationID")

	var req markNotificationSentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for MarkNotificationSent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	err := h.notificationService.MarkSent(c.Request.Context(), notificationID, req.Delivered)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Notification not found", slog.String("notification_id", notificationID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		} else {
			logger.Error("Failed to update notification in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		}
		return
	}

	logger.Info("Notification delivery outcome recorded",
		slog.String("notification_id", notificationID),
		slog.Bool("delivered", req.Delivered))
	c.Status(http.StatusNoContent)
}

// listNotifications godoc
// @Summary List a recipient's notifications
// @Description Retrieves a paginated list of notifications for a recipient, newest first
// @Tags notifications
// @Produce  json
// @Param   recipientID query string true "Recipient user ID"
// @Param   page query int false "Page number" default(1)
// @Param   pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.NotificationListResponse
// @Failure 400 {object} map[string]string "Missing recipient ID"
// @Failure 500 {object} map[string]string "Failed to list notifications"
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recipientID := c.Query("recipientID")
	if recipientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipientID query parameter is required"})
		return
	}
	page, pageSize := pageParams(c)

	notifications, total, err := h.notificationService.ListNotifications(c.Request.Context(), recipientID, page, pageSize)
	if err != nil {
		logger.Error("Failed to list notifications from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notifications"})
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications, page, pageSize, total))
}
