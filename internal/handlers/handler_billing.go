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

// billingHandler handles HTTP requests related to billing records and payments.
type billingHandler struct {
	billingService portssvc.BillingSvcFacade
}

// newBillingHandler creates a new billingHandler.
func newBillingHandler(bs portssvc.BillingSvcFacade) *billingHandler {
	return &billingHandler{
		billingService: bs,
	}
}

// registerBillingRoutes registers routes related to billing records and payments.
func registerBillingRoutes(rg *gin.RouterGroup, billingService portssvc.BillingSvcFacade) {
	h := newBillingHandler(billingService)

	billings := rg.Group("/billings")
	{
		billings.POST("", h.createBilling)
		billings.GET("", h.listBillings)
		billings.GET("/:billingID", h.getBilling)
		billings.GET("/:billingID/payments", h.listBillingPayments)
	}

	payments := rg.Group("/payments")
	{
		payments.POST("", h.recordPayment)
		payments.GET("", h.listClientPayments)
	}
}

// createBilling godoc
// @Summary Raise a billing record
// @Description Raises a billing record from a subscription or a bare purchase; exactly one source must be given
// @Tags billings
// @Accept  json
// @Produce  json
// @Param   billing body dto.CreateBillingRequest true "Billing source"
// @Success 201 {object} dto.BillingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Subscription or purchase not found"
// @Failure 500 {object} map[string]string "Failed to create billing record"
// @Security BearerAuth
// @Router /billings [post]
func (h *billingHandler) createBilling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBilling", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	billing, err := h.billingService.CreateBilling(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Billing source not found", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating billing record", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create billing record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create billing record"})
		}
		return
	}

	logger.Info("Billing record created", slog.String("billing_id", billing.BillingID), slog.String("bill_number", billing.BillNumber))
	c.JSON(http.StatusCreated, dto.ToBillingResponse(billing, time.Now()))
}

// getBilling godoc
// @Summary Get a billing record by ID
// @Description Retrieves a billing record with its due status evaluated at read time
// @Tags billings
// @Produce  json
// @Param   billingID path string true "Billing ID"
// @Success 200 {object} dto.BillingResponse
// @Failure 404 {object} map[string]string "Billing record not found"
// @Failure 500 {object} map[string]string "Failed to retrieve billing record"
// @Security BearerAuth
// @Router /billings/{billingID} [get]
func (h *billingHandler) getBilling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billingID := c.Param("billingID")

	billing, err := h.billingService.GetBilling(c.Request.Context(), billingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Billing record not found", slog.String("billing_id", billingID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Billing record not found"})
		} else {
			logger.Error("Failed to get billing record from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve billing record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBillingResponse(billing, time.Now()))
}

// listBillings godoc
// @Summary List billing records
// @Description Retrieves a paginated list of billing records, optionally filtered by client
// @Tags billings
// @Produce  json
// @Param   clientID query string false "Filter by client ID"
// @Param   page query int false "Page number" default(1)
// @Param   pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.BillingListResponse
// @Failure 500 {object} map[string]string "Failed to list billing records"
// @Security BearerAuth
// @Router /billings [get]
func (h *billingHandler) listBillings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Query("clientID")
	page, pageSize := pageParams(c)

	billings, total, err := h.billingService.ListBillings(c.Request.Context(), clientID, page, pageSize)
	if err != nil {
		logger.Error("Failed to list billing records from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list billing records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBillingListResponse(billings, time.Now(), page, pageSize, total))
}

// listBillingPayments godoc
// @Summary List payments for a billing record
// @Description Retrieves all payments recorded against a billing record, oldest first
// @Tags billings
// @Produce  json
// @Param   billingID path string true "Billing ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Billing record not found"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /billings/{billingID}/payments [get]
func (h *billingHandler) listBillingPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billingID := c.Param("billingID")

	payments, err := h.billingService.ListPayments(c.Request.Context(), billingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Billing record not found for payments", slog.String("billing_id", billingID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Billing record not found"})
		} else {
			logger.Error("Failed to list payments from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		}
		return
	}

	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = dto.ToPaymentResponse(&payments[i])
	}
	c.JSON(http.StatusOK, responses)
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records a payment against a billing record and recomputes its paid amount and payment status atomically
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.RecordPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input or client mismatch"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Billing record not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *billingHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, billing, err := h.billingService.RecordPayment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Billing record not found for payment", slog.String("billing_id", req.BillingID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Billing record not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording payment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("billing_id", billing.BillingID),
		slog.String("payment_status", string(billing.PaymentStatus)))
	c.JSON(http.StatusCreated, dto.RecordPaymentResponse{
		Payment: dto.ToPaymentResponse(payment),
		Billing: dto.ToBillingResponse(billing, time.Now()),
	})
}

// listClientPayments godoc
// @Summary List a client's payments
// @Description Retrieves a paginated list of payments for a client, newest first
// @Tags payments
// @Produce  json
// @Param   clientID query string true "Client ID"
// @Param   page query int false "Page number" default(1)
// @Param   pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.PaymentListResponse
// @Failure 400 {object} map[string]string "Missing client ID"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /payments [get]
func (h *billingHandler) listClientPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Query("clientID")
	if clientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clientID query parameter is required"})
		return
	}
	page, pageSize := pageParams(c)

	payments, total, err := h.billingService.ListClientPayments(c.Request.Context(), clientID, page, pageSize)
	if err != nil {
		logger.Error("Failed to list client payments from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentListResponse(payments, page, pageSize, total))
}
