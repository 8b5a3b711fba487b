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

// purchaseHandler handles HTTP requests related to purchase orders.
type purchaseHandler struct {
	purchaseService     portssvc.PurchaseSvcFacade
	subscriptionService portssvc.SubscriptionSvcFacade
}

// newPurchaseHandler creates a new purchaseHandler.
func newPurchaseHandler(ps portssvc.PurchaseSvcFacade, ss portssvc.SubscriptionSvcFacade) *purchaseHandler {
	return &purchaseHandler{
		purchaseService:     ps,
		subscriptionService: ss,
	}
}

// registerPurchaseRoutes registers routes related to purchase orders.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade, subscriptionService portssvc.SubscriptionSvcFacade) {
	h := newPurchaseHandler(purchaseService, subscriptionService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:purchaseID", h.getPurchase)
		purchases.GET("/:purchaseID/subscription", h.getPurchaseSubscription)
		purchases.PATCH("/:purchaseID/status", h.updatePurchaseStatus)
		purchases.DELETE("/:purchaseID", h.deletePurchase)
	}
}

// createPurchase godoc
// @Summary Create a purchase order
// @Description Creates a purchase order; when subscriptionActive is set, the derived subscription is created in the same transaction
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.CreatePurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client or product not found"
// @Failure 500 {object} map[string]string "Failed to create purchase"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	purchase, subscription, err := h.purchaseService.CreatePurchase(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Referenced entity not found for purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create purchase in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create purchase"})
		}
		return
	}

	resp := dto.CreatePurchaseResponse{Purchase: dto.ToPurchaseResponse(purchase)}
	if subscription != nil {
		sub := dto.ToSubscriptionResponse(subscription, time.Now())
		resp.Subscription = &sub
	}

	logger.Info("Purchase created successfully",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("po_number", purchase.PONumber),
		slog.Bool("subscription", subscription != nil))
	c.JSON(http.StatusCreated, resp)
}

// getPurchase godoc
// @Summary Get a purchase by ID
// @Description Retrieves details for a specific purchase order
// @Tags purchases
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to retrieve purchase"
// @Security BearerAuth
// @Router /purchases/{purchaseID} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), purchaseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Purchase not found", slog.String("purchase_id", purchaseID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		} else {
			logger.Error("Failed to get purchase from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve purchase"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// getPurchaseSubscription godoc
// @Summary Get the subscription derived from a purchase
// @Description Retrieves the subscription owned by a purchase order, if one exists
// @Tags purchases
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 404 {object} map[string]string "Subscription not found"
// @Failure 500 {object} map[string]string "Failed to retrieve subscription"
// @Security BearerAuth
// @Router /purchases/{purchaseID}/subscription [get]
func (h *purchaseHandler) getPurchaseSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	subscription, err := h.subscriptionService.GetSubscriptionByPurchase(c.Request.Context(), purchaseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No subscription for purchase", slog.String("purchase_id", purchaseID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase has no subscription"})
		} else {
			logger.Error("Failed to get subscription from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve subscription"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(subscription, time.Now()))
}

// listPurchases godoc
// @Summary List purchases
// @Description Retrieves a paginated list of purchase orders, optionally filtered by client
// @Tags purchases
// @Produce  json
// @Param   clientID query string false "Filter by client ID"
// @Param   page query int false "Page number" default(1)
// @Param   pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.PurchaseListResponse
// @Failure 500 {object} map[string]string "Failed to list purchases"
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Query("clientID")
	page, pageSize := pageParams(c)

	purchases, total, err := h.purchaseService.ListPurchases(c.Request.Context(), clientID, page, pageSize)
	if err != nil {
		logger.Error("Failed to list purchases from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list purchases"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseListResponse(purchases, page, pageSize, total))
}

// updatePurchaseStatus godoc
// @Summary Update a purchase's status
// @Description Moves a purchase order through its fulfilment states
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Param   status body dto.UpdatePurchaseStatusRequest true "New status"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to update purchase"
// @Security BearerAuth
// @Router /purchases/{purchaseID}/status [patch]
func (h *purchaseHandler) updatePurchaseStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	var req dto.UpdatePurchaseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePurchaseStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updatedPurchase, err := h.purchaseService.UpdatePurchaseStatus(c.Request.Context(), purchaseID, req.Status, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Purchase not found for status update", slog.String("purchase_id", purchaseID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating purchase status", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update purchase status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update purchase"})
		}
		return
	}

	logger.Info("Purchase status updated", slog.String("purchase_id", purchaseID), slog.String("status", string(req.Status)))
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(updatedPurchase))
}

// deletePurchase godoc
// @Summary Delete a purchase
// @Description Removes a purchase without dependent subscriptions, billing records or invoices
// @Tags purchases
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Success 204 "Purchase deleted"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 409 {object} map[string]string "Purchase has dependent records"
// @Failure 500 {object} map[string]string "Failed to delete purchase"
// @Security BearerAuth
// @Router /purchases/{purchaseID} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.purchaseService.DeletePurchase(c.Request.Context(), purchaseID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Purchase not found for delete", slog.String("purchase_id", purchaseID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Purchase has dependent records", slog.String("purchase_id", purchaseID))
			c.JSON(http.StatusConflict, gin.H{"error": "Purchase has subscriptions, billing records or invoices and cannot be deleted"})
		} else {
			logger.Error("Failed to delete purchase in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete purchase"})
		}
		return
	}

	logger.Info("Purchase deleted successfully", slog.String("purchase_id", purchaseID))
	c.Status(http.StatusNoContent)
}
