package fx

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/reimbazz/GF-Innovation-service/config"
	"github.com/reimbazz/GF-Innovation-service/internal/logger"
	"github.com/reimbazz/GF-Innovation-service/internal/middleware"
	"github.com/reimbazz/GF-Innovation-service/internal/routes"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	apiRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	api := router.Group("/api")
	api.Use(middleware.RateLimit(apiRateLimiter))
	{
		investments := api.Group("/investments")
		{
			investments.GET("", handler.ListInvestments)
			investments.POST("", handler.CreateInvestment)
			investments.PUT("/:id", handler.UpdateInvestment)
			investments.DELETE("/:id", handler.DeleteInvestment)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
