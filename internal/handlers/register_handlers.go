package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/ohada_ledger/cmd/docs"
	portssvc "github.com/SscSPs/ohada_ledger/internal/core/ports/services"
	"github.com/SscSPs/ohada_ledger/internal/middleware"
	"github.com/SscSPs/ohada_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes wires every handler onto r.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	r.GET("/health", health)

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login limiter: %w", err)
	}
	registerAuthRoutes(r, services, loginLimiter)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	{
		registerAccountRoutes(v1, services.Account)
		registerEntryRoutes(v1, services.Entry)
		registerPeriodRoutes(v1, services.Period)
		registerLedgerRoutes(v1, services.Ledger, cfg.CompanyCurrency)
	}

	if !cfg.IsProduction {
		docs.SwaggerInfo.BasePath = "/api/v1"
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return nil
}

// health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}
