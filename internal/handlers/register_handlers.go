package handlers

import (
	"log/slog"

	"github.com/agencypulse/backend/cmd/docs"
	portsrepo "github.com/agencypulse/backend/internal/core/ports/repositories"
	portssvc "github.com/agencypulse/backend/internal/core/ports/services"
	"github.com/agencypulse/backend/internal/middleware"
	"github.com/agencypulse/backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	founderRepo portsrepo.FounderRepository,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIRoutes(r, cfg, services, founderRepo)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the authenticated /api group and delegates
// to the per-entity route registrations.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	founderRepo portsrepo.FounderRepository,
) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		slog.Warn("Invalid rate limit format, using default", slog.String("rate_limit", cfg.RateLimit))
		rate, _ = limiter.NewRateFromFormatted("120-M")
	}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	api := r.Group("/api",
		middleware.RateLimit(limiterInstance),
		middleware.IdentityMiddleware(cfg.IdentityHeader, founderRepo),
	)

	registerAgencyRoutes(api, services.Agency)
	registerCashSnapshotRoutes(api, services.Finance, services.Agency)
	registerFinanceRoutes(api, services.Finance, services.Agency)
	registerClientRoutes(api, services.Client, services.Agency)
	registerUtilizationRoutes(api, services.Utilization, services.Agency)
	registerRealityRoutes(api, services.Reality, services.Agency)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
