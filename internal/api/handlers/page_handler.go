package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	middlewares "github.com/prefeitura-rio/app-painel-pr/internal/middleware"
	"github.com/prefeitura-rio/app-painel-pr/internal/render"
	"github.com/prefeitura-rio/app-painel-pr/internal/services"
)

// PageTitle é o título da página do painel
const PageTitle = "Indicadores Socioeconómicos de Puerto Rico"

// PageHandler serve a página completa do painel
type PageHandler struct {
	service *services.DashboardService
}

// NewPageHandler cria o handler da página
func NewPageHandler(service *services.DashboardService) *PageHandler {
	return &PageHandler{service: service}
}

// Index renderiza a página inteira. Se a carga dos dados falhou, mostra só o
// painel de erro com os detalhes técnicos.
func (h *PageHandler) Index(c *gin.Context) {
	view, err := h.service.Snapshot(c.Request.Context(), middlewares.GetSessionID(c))
	if err != nil {
		_ = c.Error(err)
		c.HTML(http.StatusServiceUnavailable, render.TemplateError, render.ErrorData{
			Title:   PageTitle,
			Details: err.Error(),
		})
		return
	}

	c.HTML(http.StatusOK, render.TemplatePage, render.PageData{
		Title: PageTitle,
		View:  view,
	})
}
