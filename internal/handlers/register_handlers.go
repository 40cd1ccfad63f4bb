package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/gigster_garage_backend/cmd/docs"
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
	"github.com/SscSPs/gigster_garage_backend/internal/middleware"
	"github.com/SscSPs/gigster_garage_backend/internal/platform/config"
	"github.com/SscSPs/gigster_garage_backend/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const adminRole = string(domain.RoleAdmin)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	loginLimiter, err := middleware.NewIPRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login rate limit: %w", err)
	}
	publicLimiter, err := middleware.NewIPRateLimiter(cfg.PublicRateLimit)
	if err != nil {
		return fmt.Errorf("public rate limit: %w", err)
	}

	registerAuthRoutes(r, services.Auth, middleware.RateLimit(loginLimiter))

	// Client-facing links carry no token, only the link itself.
	shared := r.Group("/api/shared", middleware.RateLimit(publicLimiter))
	registerSharedProposalRoutes(shared, services.Proposal)

	setupAPIRoutes(r, cfg, services, posthogClient)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes configures the authenticated /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	api := r.Group("/api",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.PosthogMiddleware(posthogClient),
	)

	registerUserRoutes(api, services.User)
	registerInvoiceRoutes(api, services.Invoice, services.InvoiceLifecycle)
	registerProposalRoutes(api, services.Proposal)
	registerContractRoutes(api, services.Contract, services.ContractLifecycle)
	registerTimeLogRoutes(api, services.TimeLog)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
