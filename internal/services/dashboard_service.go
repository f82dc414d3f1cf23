package services

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-painel-pr/internal/dashboard"
	"github.com/prefeitura-rio/app-painel-pr/internal/models"
	"github.com/prefeitura-rio/app-painel-pr/internal/observability"
	"github.com/prefeitura-rio/app-painel-pr/internal/utils"
)

// ErrDataUnavailable indica que a carga inicial falhou; é terminal
var ErrDataUnavailable = errors.New("dados indisponíveis")

// ErrIndicatorNotFound é devolvido por Indicator para ids fora do catálogo
var ErrIndicatorNotFound = errors.New("indicador não encontrado")

// DashboardService aplica as ações do usuário ao estado da sessão
type DashboardService struct {
	catalog  *models.Catalog
	loadErr  error
	sessions *SessionService
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewDashboardService cria o serviço. Se loadErr não for nil, o serviço fica
// indisponível e todas as operações devolvem ErrDataUnavailable.
func NewDashboardService(catalog *models.Catalog, loadErr error, sessions *SessionService, metrics *observability.Metrics, logger *zap.Logger) *DashboardService {
	if catalog == nil && loadErr == nil {
		loadErr = errors.New("catálogo vazio")
	}
	return &DashboardService{
		catalog:  catalog,
		loadErr:  loadErr,
		sessions: sessions,
		metrics:  metrics,
		logger:   logger,
	}
}

// CheckReadiness implementa a checagem de prontidão: pronto só com dados carregados
func (s *DashboardService) CheckReadiness(_ context.Context) error {
	if s.loadErr != nil {
		return fmt.Errorf("%w: %v", ErrDataUnavailable, s.loadErr)
	}
	return nil
}

// Sessions expõe o serviço de sessões
func (s *DashboardService) Sessions() *SessionService {
	return s.sessions
}

// Snapshot devolve a última renderização da sessão
func (s *DashboardService) Snapshot(ctx context.Context, sessionID string) (models.DashboardView, error) {
	ctrl, err := s.controller(sessionID)
	if err != nil {
		return models.DashboardView{}, err
	}
	return ctrl.View(), nil
}

// ToggleMunicipality alterna o município na seleção. Limite atingido não é
// erro para o chamador: a visão volta com Notice preenchido.
func (s *DashboardService) ToggleMunicipality(ctx context.Context, sessionID, municipalityID string) (models.DashboardView, error) {
	_, span := s.start(ctx, "dashboard.ToggleMunicipality", attribute.String("municipality.id", municipalityID))
	defer span.End()

	ctrl, err := s.controller(sessionID)
	if err != nil {
		return models.DashboardView{}, err
	}

	before := ctrl.Renders()
	view, err := ctrl.ToggleMunicipality(municipalityID)
	switch {
	case errors.Is(err, dashboard.ErrSelectionLimit):
		s.metrics.SelectionLimit.Inc()
		s.metrics.Actions.WithLabelValues("toggle", "rejected").Inc()
		span.SetAttributes(attribute.Bool("selection.limit_reached", true))
		return view, nil
	case errors.Is(err, dashboard.ErrUnknownMunicipality):
		s.logger.Debug("município desconhecido ignorado", zap.String("municipality_id", municipalityID))
		s.metrics.Actions.WithLabelValues("toggle", "noop").Inc()
		return view, nil
	case err != nil:
		return view, err
	}

	s.observe("toggle", before, view)
	s.metrics.SelectionSize.Observe(float64(view.Selection.Count))
	return view, nil
}

// RemoveMunicipality remove o município (controle "×" da pill); ausente é no-op
func (s *DashboardService) RemoveMunicipality(ctx context.Context, sessionID, municipalityID string) (models.DashboardView, error) {
	_, span := s.start(ctx, "dashboard.RemoveMunicipality", attribute.String("municipality.id", municipalityID))
	defer span.End()

	ctrl, err := s.controller(sessionID)
	if err != nil {
		return models.DashboardView{}, err
	}

	before := ctrl.Renders()
	view := ctrl.RemoveMunicipality(municipalityID)
	s.observe("remove", before, view)
	s.metrics.SelectionSize.Observe(float64(view.Selection.Count))
	return view, nil
}

// ClearSelection esvazia a seleção
func (s *DashboardService) ClearSelection(ctx context.Context, sessionID string) (models.DashboardView, error) {
	_, span := s.start(ctx, "dashboard.ClearSelection")
	defer span.End()

	ctrl, err := s.controller(sessionID)
	if err != nil {
		return models.DashboardView{}, err
	}

	before := ctrl.Renders()
	view := ctrl.ClearSelection()
	s.observe("clear", before, view)
	return view, nil
}

// ResetSession volta a sessão ao estado inicial (seleção vazia, mapa, categoria padrão)
func (s *DashboardService) ResetSession(ctx context.Context, sessionID string) (models.DashboardView, error) {
	_, span := s.start(ctx, "dashboard.ResetSession")
	defer span.End()

	if err := s.CheckReadiness(ctx); err != nil {
		return models.DashboardView{}, err
	}

	s.sessions.Reset(sessionID)
	s.metrics.Actions.WithLabelValues("reset", "changed").Inc()
	return s.sessions.Controller(sessionID).View(), nil
}

// SetActiveIndicator troca o indicador ativo; id desconhecido é ignorado
func (s *DashboardService) SetActiveIndicator(ctx context.Context, sessionID, indicatorID string) (models.DashboardView, error) {
	_, span := s.start(ctx, "dashboard.SetActiveIndicator", attribute.String("indicator.id", indicatorID))
	defer span.End()

	ctrl, err := s.controller(sessionID)
	if err != nil {
		return models.DashboardView{}, err
	}

	before := ctrl.Renders()
	view, err := ctrl.SetActiveIndicator(indicatorID)
	if errors.Is(err, dashboard.ErrUnknownIndicator) {
		s.logger.Debug("indicador desconhecido ignorado", zap.String("indicator_id", indicatorID))
		s.metrics.Actions.WithLabelValues("indicator", "noop").Inc()
		return view, nil
	}
	if err != nil {
		return view, err
	}

	s.observe("indicator", before, view)
	return view, nil
}

// SwitchView troca a visão; visão inválida devolve dashboard.ErrInvalidView
func (s *DashboardService) SwitchView(ctx context.Context, sessionID string, target models.View) (models.DashboardView, error) {
	_, span := s.start(ctx, "dashboard.SwitchView", attribute.String("view.target", string(target)))
	defer span.End()

	ctrl, err := s.controller(sessionID)
	if err != nil {
		return models.DashboardView{}, err
	}

	before := ctrl.Renders()
	view, changed, err := ctrl.SwitchView(target)
	if err != nil {
		return view, err
	}
	if changed {
		s.metrics.ViewSwitches.WithLabelValues(string(target)).Inc()
	}
	s.observe("view", before, view)
	return view, nil
}

// SetCategory troca a categoria da lista de indicadores
func (s *DashboardService) SetCategory(ctx context.Context, sessionID, category string) (models.DashboardView, error) {
	_, span := s.start(ctx, "dashboard.SetCategory", attribute.String("category", category))
	defer span.End()

	ctrl, err := s.controller(sessionID)
	if err != nil {
		return models.DashboardView{}, err
	}

	before := ctrl.Renders()
	view := ctrl.SetCategory(category)
	s.observe("category", before, view)
	return view, nil
}

// Search troca o termo de busca de municípios
func (s *DashboardService) Search(ctx context.Context, sessionID, term string) (models.DashboardView, error) {
	_, span := s.start(ctx, "dashboard.Search")
	defer span.End()

	ctrl, err := s.controller(sessionID)
	if err != nil {
		return models.DashboardView{}, err
	}

	before := ctrl.Renders()
	view := ctrl.SetSearchTerm(term)
	s.observe("search", before, view)
	return view, nil
}

// Indicator devolve o indicador com a descrição convertida para HTML
func (s *DashboardService) Indicator(_ context.Context, indicatorID string) (*models.IndicatorDetail, error) {
	if s.loadErr != nil {
		return nil, s.CheckReadiness(context.Background())
	}
	ind, ok := s.catalog.Indicator(indicatorID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIndicatorNotFound, indicatorID)
	}
	return &models.IndicatorDetail{
		Indicator:       ind,
		DescriptionHTML: utils.MarkdownToHTML(ind.Description),
	}, nil
}

// Categories lista as categorias com a ativa da sessão marcada
func (s *DashboardService) Categories(ctx context.Context, sessionID string) (*models.CategoriesResponse, error) {
	view, err := s.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &models.CategoriesResponse{
		Categories:      view.Categories,
		TotalCategories: len(view.Categories),
	}, nil
}

func (s *DashboardService) controller(sessionID string) (*dashboard.Controller, error) {
	if err := s.CheckReadiness(context.Background()); err != nil {
		return nil, err
	}
	return s.sessions.Controller(sessionID), nil
}

// observe registra se a ação mudou o estado (houve nova renderização) ou não
func (s *DashboardService) observe(action string, rendersBefore int, view models.DashboardView) {
	if view.Renders > rendersBefore {
		s.metrics.Actions.WithLabelValues(action, "changed").Inc()
		s.metrics.Renders.Inc()
		return
	}
	s.metrics.Actions.WithLabelValues(action, "noop").Inc()
}

func (s *DashboardService) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := otel.Tracer("dashboard").Start(ctx, name)
	span.SetAttributes(attrs...)
	return ctx, span
}

// ControllerFactory cria, para cada sessão nova, um estado inicial sobre o catálogo
func ControllerFactory(catalog *models.Catalog, defaultCategory string, renderer dashboard.Renderer) func() *dashboard.Controller {
	return func() *dashboard.Controller {
		return dashboard.NewController(dashboard.NewState(catalog, defaultCategory), renderer)
	}
}
