package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	limiter "github.com/ulule/limiter/v3"

	"github.com/subsadmin/subsadmin_backend/cmd/docs"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
	"github.com/subsadmin/subsadmin_backend/internal/middleware"
	"github.com/subsadmin/subsadmin_backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, services.Auth, rateLimiter)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, rateLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	// Apply auth, rate limiting and audit capture to the entire v1 group
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.RateLimit(rateLimiter),
		middleware.AuditMiddleware(&auditRecorder{audit: services.Audit}),
	)

	// Delegate route registration to specific handlers, passing required services
	registerTokenRefreshRoutes(v1, services.Auth)
	registerClientRoutes(v1, services.Client)
	registerVendorRoutes(v1, services.Vendor)
	registerProductRoutes(v1, services.Product)
	registerCurrencyRoutes(v1, services.Currency)
	registerPurchaseRoutes(v1, services.Purchase, services.Subscription)
	registerSubscriptionRoutes(v1, services.Subscription)
	registerBillingRoutes(v1, services.Billing)
	registerInvoiceRoutes(v1, services.Invoice)
	registerExchangeRateRoutes(v1, services.ExchangeRate)
	registerUserRoutes(v1, services.User)
	registerNotificationRoutes(v1, services.Notification)
	registerAuditLogRoutes(v1, services.Audit)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// auditRecorder adapts the audit service to the middleware's recorder
// interface. Append failures are logged and never surfaced to the request.
type auditRecorder struct {
	audit portssvc.AuditSvcFacade
}

func (a *auditRecorder) Record(c *gin.Context, entry domain.AuditLog) {
	if err := a.audit.Record(c.Request.Context(), entry); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to append audit log entry", slog.String("error", err.Error()))
	}
}

// pageParams extracts page and pageSize query parameters with sane defaults.
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}
