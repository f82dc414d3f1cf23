package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	_ "github.com/prefeitura-rio/app-painel-pr/docs"
	"github.com/prefeitura-rio/app-painel-pr/internal/api/routes"
	"github.com/prefeitura-rio/app-painel-pr/internal/config"
	"github.com/prefeitura-rio/app-painel-pr/internal/dashboard"
	"github.com/prefeitura-rio/app-painel-pr/internal/loader"
	"github.com/prefeitura-rio/app-painel-pr/internal/models"
	"github.com/prefeitura-rio/app-painel-pr/internal/observability"
	"github.com/prefeitura-rio/app-painel-pr/internal/render"
	"github.com/prefeitura-rio/app-painel-pr/internal/services"
)

// @title           Painel de Indicadores de Puerto Rico API
// @version         1.0
// @description     Painel de indicadores socioeconômicos dos municípios de Porto Rico: seleção de até 4 municípios, indicador ativo e visões de mapa e comparação.

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// intervalo da limpeza de sessões expiradas
const sessionCleanupInterval = time.Minute

func main() {
	cfg, logger, err := bootstrap()
	if err != nil {
		// o logger configurado ainda não existe
		log.Fatalf("Erro ao iniciar: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	tracer := observability.InitTracer(cfg, logger)
	metrics := observability.NewMetrics()

	catalog, loadErr := loadCatalog(cfg, logger, metrics)

	var factory func() *dashboard.Controller
	if loadErr == nil {
		factory = services.ControllerFactory(catalog, cfg.DefaultCategory, render.NewDashboard(catalog, cfg.Map))
	}
	sessions := services.NewSessionService(cfg.SessionCacheSize, cfg.SessionTTL, clockwork.NewRealClock(), factory, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions.StartCleanup(ctx, sessionCleanupInterval)

	html, err := render.NewHTML()
	if err != nil {
		logger.Fatal("erro ao carregar templates", zap.Error(err))
	}

	r, err := routes.SetupRouter(cfg, routes.Dependencies{
		Service: services.NewDashboardService(catalog, loadErr, sessions, metrics, logger),
		HTML:    html,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal("erro ao montar rotas", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("servidor iniciado", zap.String("port", cfg.ServerPort), zap.Bool("data_loaded", loadErr == nil))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("erro ao iniciar servidor", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("erro no shutdown do servidor", zap.Error(err))
	}
	tracer.Shutdown(shutdownCtx)
}

// bootstrap lê a configuração e cria o logger configurado
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("configuração inválida: %w", err)
	}

	logger, err := observability.NewLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao criar logger: %w", err)
	}
	return cfg, logger, nil
}

// loadCatalog faz a carga única dos dados. Uma falha não derruba o processo:
// o painel passa a servir o painel de erro e a readiness fica em 503.
func loadCatalog(cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics) (*models.Catalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.LoadTimeout)
	defer cancel()

	catalog, err := loader.New(loader.NewSource(cfg.DataSource, cfg.LoadTimeout), logger).Load(ctx)
	if err != nil {
		metrics.DataLoads.WithLabelValues("error").Inc()
		metrics.DataLoaded.Set(0)
		return nil, err
	}

	metrics.DataLoads.WithLabelValues("success").Inc()
	metrics.DataLoaded.Set(1)
	return catalog, nil
}
