package render

import (
	"github.com/prefeitura-rio/app-painel-pr/internal/config"
	"github.com/prefeitura-rio/app-painel-pr/internal/dashboard"
	"github.com/prefeitura-rio/app-painel-pr/internal/models"
)

// Dashboard implementa dashboard.Renderer sobre um catálogo carregado
type Dashboard struct {
	catalog *models.Catalog
	mapCfg  config.MapConfig
}

// NewDashboard cria o renderizador da visão completa
func NewDashboard(catalog *models.Catalog, mapCfg config.MapConfig) *Dashboard {
	return &Dashboard{catalog: catalog, mapCfg: mapCfg}
}

var _ dashboard.Renderer = (*Dashboard)(nil)

// Render projeta o snapshot; só o painel da visão ativa é preenchido
func (d *Dashboard) Render(snap dashboard.Snapshot) models.DashboardView {
	activeID := ""
	if snap.ActiveIndicator != nil {
		activeID = snap.ActiveIndicator.ID
	}

	view := models.DashboardView{
		View:            snap.View,
		Category:        snap.Category,
		SearchTerm:      snap.SearchTerm,
		ActiveIndicator: activeID,
		Categories:      CategoryBar(d.catalog.Categories(), snap.Category),
		Indicators:      IndicatorList(d.catalog.Indicators, snap.Category, activeID),
		Municipalities:  MunicipalityList(d.catalog.Municipalities, snap.SearchTerm, snap.Selection),
		Selection:       SelectionStrip(snap.Selection, snap.Capacity),
		Toggles:         ViewToggles(snap.View),
	}

	switch snap.View {
	case models.ViewCompare:
		view.Compare = ComparePane(snap.Selection, snap.ActiveIndicator)
	default:
		view.Map = MapPane(snap.Selection, snap.ActiveIndicator, d.mapCfg)
	}

	return view
}
