package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/prefeitura-rio/app-painel-pr/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Nomes dos templates usados pelos handlers
const (
	TemplatePage           = "page"
	TemplateError          = "error_page"
	TemplateErrorPanel     = "error_panel"
	TemplateDashboard      = "dashboard"
	TemplateMunicipalities = "municipalities"
	TemplateIndicators     = "indicators"
	TemplateIndicator      = "indicator_detail"
)

// PageData alimenta o template da página completa
type PageData struct {
	Title string
	View  models.DashboardView
}

// ErrorData alimenta o painel de erro de carga
type ErrorData struct {
	Title   string
	Details string
}

// HTML guarda os templates embutidos, prontos para o gin (SetHTMLTemplate)
type HTML struct {
	tmpl *template.Template
}

// NewHTML faz o parse dos templates embutidos
func NewHTML() (*HTML, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"safeHTML": func(s string) template.HTML { return template.HTML(s) }, //nolint:gosec // saída do MarkdownToHTML, sem HTML cru
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar templates: %w", err)
	}
	return &HTML{tmpl: tmpl}, nil
}

// Template devolve o conjunto de templates
func (h *HTML) Template() *template.Template {
	return h.tmpl
}

// Execute renderiza um template nomeado
func (h *HTML) Execute(w io.Writer, name string, data any) error {
	return h.tmpl.ExecuteTemplate(w, name, data)
}
