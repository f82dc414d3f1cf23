package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-painel-pr/internal/api/handlers"
	"github.com/prefeitura-rio/app-painel-pr/internal/config"
	middlewares "github.com/prefeitura-rio/app-painel-pr/internal/middleware"
	"github.com/prefeitura-rio/app-painel-pr/internal/render"
	"github.com/prefeitura-rio/app-painel-pr/internal/services"
)

// Dependencies agrupa o que o router precisa para montar os handlers
type Dependencies struct {
	Service *services.DashboardService
	HTML    *render.HTML
	Logger  *zap.Logger
	// nil usa o registry padrão do Prometheus
	MetricsHandler http.Handler
}

func SetupRouter(cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middlewares.Recovery(deps.Logger))
	r.Use(corsMiddleware())
	r.Use(middlewares.RequestTiming())
	r.SetHTMLTemplate(deps.HTML.Template())

	healthHandler := handlers.NewHealthHandler(deps.Service)
	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)

	metricsHandler := deps.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.GET("/metrics", gin.WrapH(metricsHandler))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// rotas do painel dependem da sessão do navegador
	session := r.Group("/")
	session.Use(middlewares.Session(int(cfg.SessionTTL.Seconds())))
	session.Use(middlewares.RequestLogger(deps.Logger))

	pageHandler := handlers.NewPageHandler(deps.Service)
	session.GET("/", pageHandler.Index)

	dashboardHandler := handlers.NewDashboardHandler(deps.Service, deps.Logger)
	api := session.Group("/api/v1")
	{
		api.GET("/state", dashboardHandler.GetState)
		api.GET("/municipalities", dashboardHandler.SearchMunicipalities)
		api.GET("/indicators", dashboardHandler.ListIndicators)
		api.GET("/indicators/:id", dashboardHandler.GetIndicator)
		api.GET("/categories", dashboardHandler.ListCategories)

		api.POST("/selection/:id/toggle", dashboardHandler.ToggleMunicipality)
		api.DELETE("/selection/:id", dashboardHandler.RemoveMunicipality)
		api.DELETE("/selection", dashboardHandler.ClearSelection)
		api.DELETE("/session", dashboardHandler.ResetSession)

		api.PUT("/indicator", dashboardHandler.SetActiveIndicator)
		api.PUT("/view", dashboardHandler.SwitchView)
	}

	return r, nil
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, HX-Request, HX-Target, HX-Trigger, HX-Current-URL")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
