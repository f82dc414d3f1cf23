package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/app-painel-pr/internal/models"
	"github.com/prefeitura-rio/app-painel-pr/internal/render"
	"github.com/prefeitura-rio/app-painel-pr/internal/services"
)

// Alvos htmx (id do elemento) que recebem só um pedaço do painel
const (
	TargetMunicipalities = "municipality-list"
	TargetIndicators     = "indicators-list"
)

// wantsHTML decide entre fragmento HTML e JSON
func wantsHTML(c *gin.Context) bool {
	if c.GetHeader("HX-Request") == "true" {
		return true
	}
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "text/html") && !strings.Contains(accept, "application/json")
}

// fragmentFor escolhe o template pelo alvo htmx; sem alvo conhecido, o painel inteiro
func fragmentFor(c *gin.Context) string {
	switch c.GetHeader("HX-Target") {
	case TargetMunicipalities:
		return render.TemplateMunicipalities
	case TargetIndicators:
		return render.TemplateIndicators
	default:
		return render.TemplateDashboard
	}
}

// respondView devolve a visão como fragmento htmx ou como JSON
func respondView(c *gin.Context, view models.DashboardView) {
	if wantsHTML(c) {
		c.HTML(http.StatusOK, fragmentFor(c), view)
		return
	}
	c.JSON(http.StatusOK, view)
}

// respondError traduz erros do serviço em status HTTP
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Erro interno do servidor"

	switch {
	case errors.Is(err, services.ErrDataUnavailable):
		status = http.StatusServiceUnavailable
		message = "Dados indisponíveis"
	case errors.Is(err, services.ErrIndicatorNotFound):
		status = http.StatusNotFound
		message = "Indicador não encontrado"
	}

	_ = c.Error(err)

	if wantsHTML(c) && status == http.StatusServiceUnavailable {
		c.HTML(status, render.TemplateErrorPanel, render.ErrorData{Title: PageTitle, Details: err.Error()})
		return
	}
	c.JSON(status, models.ErrorResponse{
		Error:   message,
		Details: err.Error(),
	})
}

// respondBadRequest é usado para corpos que não passam na validação
func respondBadRequest(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   message,
		Details: err.Error(),
	})
}
