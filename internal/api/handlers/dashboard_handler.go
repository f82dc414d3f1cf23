package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	middlewares "github.com/prefeitura-rio/app-painel-pr/internal/middleware"
	"github.com/prefeitura-rio/app-painel-pr/internal/models"
	"github.com/prefeitura-rio/app-painel-pr/internal/render"
	"github.com/prefeitura-rio/app-painel-pr/internal/services"
)

// DashboardHandler expõe as ações do painel para a sessão do navegador
type DashboardHandler struct {
	service *services.DashboardService
	logger  *zap.Logger
}

// NewDashboardHandler cria um novo handler do painel
func NewDashboardHandler(service *services.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger,
	}
}

// GetState godoc
// @Summary Estado atual do painel
// @Description Retorna a última renderização do painel da sessão: seleção, indicador ativo, visão, listas filtradas e o painel visível.
// @Tags dashboard
// @Produce json
// @Produce html
// @Success 200 {object} models.DashboardView
// @Failure 503 {object} models.ErrorResponse "Dados não carregados"
// @Router /api/v1/state [get]
func (h *DashboardHandler) GetState(c *gin.Context) {
	view, err := h.service.Snapshot(c.Request.Context(), middlewares.GetSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondView(c, view)
}

// SearchMunicipalities godoc
// @Summary Busca municípios
// @Description Filtra a lista de municípios por substring do nome, sem diferenciar maiúsculas nem acentos. Termo vazio lista todos. Municípios selecionados vêm marcados.
// @Tags dashboard
// @Produce json
// @Produce html
// @Param q query string false "Termo de busca (ex: mayag)"
// @Success 200 {object} models.MunicipalitiesResponse
// @Failure 503 {object} models.ErrorResponse "Dados não carregados"
// @Router /api/v1/municipalities [get]
func (h *DashboardHandler) SearchMunicipalities(c *gin.Context) {
	view, err := h.service.Search(c.Request.Context(), middlewares.GetSessionID(c), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	if wantsHTML(c) {
		c.HTML(http.StatusOK, render.TemplateMunicipalities, view)
		return
	}
	c.JSON(http.StatusOK, models.MunicipalitiesResponse{
		SearchTerm:     view.SearchTerm,
		Municipalities: view.Municipalities,
		Total:          len(view.Municipalities),
	})
}

// ListIndicators godoc
// @Summary Lista indicadores da categoria
// @Description Troca a categoria ativa (quando informada) e retorna os indicadores dela. O indicador ativo vem marcado.
// @Tags dashboard
// @Produce json
// @Produce html
// @Param category query string false "Categoria (ex: economy)"
// @Success 200 {object} models.IndicatorsResponse
// @Failure 503 {object} models.ErrorResponse "Dados não carregados"
// @Router /api/v1/indicators [get]
func (h *DashboardHandler) ListIndicators(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := middlewares.GetSessionID(c)

	var (
		view models.DashboardView
		err  error
	)
	if category := c.Query("category"); category != "" {
		view, err = h.service.SetCategory(ctx, sessionID, category)
	} else {
		view, err = h.service.Snapshot(ctx, sessionID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if wantsHTML(c) {
		c.HTML(http.StatusOK, fragmentFor(c), view)
		return
	}
	c.JSON(http.StatusOK, models.IndicatorsResponse{
		Category:   view.Category,
		Indicators: view.Indicators,
		Total:      len(view.Indicators),
	})
}

// GetIndicator godoc
// @Summary Detalhe de um indicador
// @Description Retorna o indicador com a descrição (markdown) convertida para HTML.
// @Tags dashboard
// @Produce json
// @Produce html
// @Param id path string true "ID do indicador"
// @Success 200 {object} models.IndicatorDetail
// @Failure 404 {object} models.ErrorResponse "Indicador não encontrado"
// @Failure 503 {object} models.ErrorResponse "Dados não carregados"
// @Router /api/v1/indicators/{id} [get]
func (h *DashboardHandler) GetIndicator(c *gin.Context) {
	detail, err := h.service.Indicator(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if wantsHTML(c) {
		c.HTML(http.StatusOK, render.TemplateIndicator, detail)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListCategories godoc
// @Summary Lista categorias de indicadores
// @Description Categorias na ordem dos dados, com a quantidade de indicadores e a categoria ativa da sessão marcada.
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.CategoriesResponse
// @Failure 503 {object} models.ErrorResponse "Dados não carregados"
// @Router /api/v1/categories [get]
func (h *DashboardHandler) ListCategories(c *gin.Context) {
	result, err := h.service.Categories(c.Request.Context(), middlewares.GetSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ToggleMunicipality godoc
// @Summary Alterna um município na seleção
// @Description Adiciona o município se ele não está selecionado, remove se está. Com 4 selecionados, adicionar outro não muda nada e a resposta traz o aviso em notice.
// @Tags selection
// @Produce json
// @Produce html
// @Param id path string true "ID do município"
// @Success 200 {object} models.DashboardView
// @Failure 503 {object} models.ErrorResponse "Dados não carregados"
// @Router /api/v1/selection/{id}/toggle [post]
func (h *DashboardHandler) ToggleMunicipality(c *gin.Context) {
	view, err := h.service.ToggleMunicipality(c.Request.Context(), middlewares.GetSessionID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondView(c, view)
}

// RemoveMunicipality godoc
// @Summary Remove um município da seleção
// @Description Controle de remoção da "pill". Remover um município que não está selecionado não faz nada.
// @Tags selection
// @Produce json
// @Produce html
// @Param id path string true "ID do município"
// @Success 200 {object} models.DashboardView
// @Failure 503 {object} models.ErrorResponse "Dados não carregados"
// @Router /api/v1/selection/{id} [delete]
func (h *DashboardHandler) RemoveMunicipality(c *gin.Context) {
	view, err := h.service.RemoveMunicipality(c.Request.Context(), middlewares.GetSessionID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondView(c, view)
}

// ClearSelection godoc
// @Summary Limpa a seleção
// @Tags selection
// @Produce json
// @Produce html
// @Success 200 {object} models.DashboardView
// @Failure 503 {object} models.ErrorResponse "Dados não carregados"
// @Router /api/v1/selection [delete]
func (h *DashboardHandler) ClearSelection(c *gin.Context) {
	view, err := h.service.ClearSelection(c.Request.Context(), middlewares.GetSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondView(c, view)
}

// ResetSession godoc
// @Summary Reinicia o painel da sessão
// @Description Descarta o estado da sessão: seleção vazia, sem indicador ativo, visão de mapa e categoria padrão.
// @Tags dashboard
// @Produce json
// @Produce html
// @Success 200 {object} models.DashboardView
// @Failure 503 {object} models.ErrorResponse "Dados não carregados"
// @Router /api/v1/session [delete]
func (h *DashboardHandler) ResetSession(c *gin.Context) {
	view, err := h.service.ResetSession(c.Request.Context(), middlewares.GetSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondView(c, view)
}

// SetActiveIndicator godoc
// @Summary Define o indicador ativo
// @Description IDs desconhecidos são ignorados e o indicador ativo anterior é mantido.
// @Tags dashboard
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Produce html
// @Param request body models.IndicatorRequest true "Indicador"
// @Success 200 {object} models.DashboardView
// @Failure 400 {object} models.ErrorResponse "Corpo inválido"
// @Failure 503 {object} models.ErrorResponse "Dados não carregados"
// @Router /api/v1/indicator [put]
func (h *DashboardHandler) SetActiveIndicator(c *gin.Context) {
	var req models.IndicatorRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "Corpo da requisição inválido", err)
		return
	}

	view, err := h.service.SetActiveIndicator(c.Request.Context(), middlewares.GetSessionID(c), req.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondView(c, view)
}

// SwitchView godoc
// @Summary Troca a visão do painel
// @Description Alterna entre mapa e comparação. Pedir a visão que já está ativa não muda nada (renders não aumenta).
// @Tags dashboard
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Produce html
// @Param request body models.ViewRequest true "Visão (map ou compare)"
// @Success 200 {object} models.DashboardView
// @Failure 400 {object} models.ErrorResponse "Visão inválida"
// @Failure 503 {object} models.ErrorResponse "Dados não carregados"
// @Router /api/v1/view [put]
func (h *DashboardHandler) SwitchView(c *gin.Context) {
	var req models.ViewRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "Visão inválida", err)
		return
	}

	view, err := h.service.SwitchView(c.Request.Context(), middlewares.GetSessionID(c), req.View)
	if err != nil {
		respondError(c, err)
		return
	}
	respondView(c, view)
}
