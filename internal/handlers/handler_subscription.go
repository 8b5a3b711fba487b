package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
	"github.com/subsadmin/subsadmin_backend/internal/middleware"
)

// subscriptionHandler handles HTTP requests related to subscriptions.
// Subscriptions are created through the purchase endpoint, so only reads
// are exposed here.
type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
}

// newSubscriptionHandler creates a new subscriptionHandler.
func newSubscriptionHandler(ss portssvc.SubscriptionSvcFacade) *subscriptionHandler {
	return &subscriptionHandler{
		subscriptionService: ss,
	}
}

// registerSubscriptionRoutes registers routes related to subscriptions.
func registerSubscriptionRoutes(rg *gin.RouterGroup, subscriptionService portssvc.SubscriptionSvcFacade) {
	h := newSubscriptionHandler(subscriptionService)

	subscriptions := rg.Group("/subscriptions")
	{
		subscriptions.GET("", h.listSubscriptions)
		subscriptions.GET("/:subscriptionID", h.getSubscription)
	}
}

// getSubscription godoc
// @Summary Get a subscription by ID
// @Description Retrieves a subscription with status, next billing date and progress evaluated at read time
// @Tags subscriptions
// @Produce  json
// @Param   subscriptionID path string true "Subscription ID"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 404 {object} map[string]string "Subscription not found"
// @Failure 500 {object} map[string]string "Failed to retrieve subscription"
// @Security BearerAuth
// @Router /subscriptions/{subscriptionID} [get]
func (h *subscriptionHandler) getSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	subscriptionID := c.Param("subscriptionID")

	subscription, err := h.subscriptionService.GetSubscription(c.Request.Context(), subscriptionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Subscription not found", slog.String("subscription_id", subscriptionID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		} else {
			logger.Error("Failed to get subscription from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve subscription"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(subscription, time.Now()))
}

// listSubscriptions godoc
// @Summary List subscriptions
// @Description Retrieves a paginated list of subscriptions, optionally filtered by client
// @Tags subscriptions
// @Produce  json
// @Param   clientID query string false "Filter by client ID"
// @Param   page query int false "Page number" default(1)
// @Param   pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.SubscriptionListResponse
// @Failure 500 {object} map[string]string "Failed to list subscriptions"
// @Security BearerAuth
// @Router /subscriptions [get]
func (h *subscriptionHandler) listSubscriptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Query("clientID")
	page, pageSize := pageParams(c)

	subscriptions, total, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), clientID, page, pageSize)
	if err != nil {
		logger.Error("Failed to list subscriptions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list subscriptions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionListResponse(subscriptions, time.Now(), page, pageSize, total))
}
