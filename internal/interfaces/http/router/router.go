package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/stylelink/backend/internal/application/connector"
	"github.com/stylelink/backend/internal/infrastructure/logger"
	"github.com/stylelink/backend/internal/interfaces/http/handler"
	"github.com/stylelink/backend/internal/interfaces/http/middleware"
)

// Config holds router dependencies
type Config struct {
	Service     *connector.Service
	Logger      *zap.Logger
	ServiceName string
	// TracingEnabled attaches the otelgin middleware
	TracingEnabled bool
}

// New builds the gin engine with all routes registered
func New(cfg Config) *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(logger.GinMiddleware(cfg.Logger))
	if cfg.TracingEnabled {
		engine.Use(otelgin.Middleware(cfg.ServiceName))
	}

	plmHandler := handler.NewPLMHandler(cfg.Service, cfg.Logger)
	styleHandler := handler.NewStyleHandler(cfg.Service)

	api := engine.Group("/api")
	{
		plmGroup := api.Group("/plm")
		{
			plmGroup.POST("/login", plmHandler.Login)
			plmGroup.GET("/styles", plmHandler.Search)
			plmGroup.GET("/style", plmHandler.Get)
			plmGroup.POST("/publish", plmHandler.Publish)

			fields := plmGroup.Group("/fields")
			{
				fields.GET("/view", plmHandler.ViewFields)
				fields.GET("/results", plmHandler.ResultFields)
				fields.GET("/settings", plmHandler.SettingFields)
			}
		}

		api.GET("/styles/recent", styleHandler.Recent)
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return engine
}
