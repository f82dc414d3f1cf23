package render

import (
	"fmt"

	"github.com/prefeitura-rio/app-painel-pr/internal/config"
	"github.com/prefeitura-rio/app-painel-pr/internal/models"
)

const (
	ComparePlaceholder = "Seleccione municipios para comparar"
	// valor exibido enquanto não há série de valores por município
	MissingValue = "—"
)

// SelectionStrip monta as "pills" dos selecionados e o contador n/capacidade
func SelectionStrip(selection []models.Municipality, capacity int) models.SelectionView {
	pills := make([]models.Municipality, len(selection))
	copy(pills, selection)
	return models.SelectionView{
		Pills:    pills,
		Count:    len(selection),
		Capacity: capacity,
		Label:    fmt.Sprintf("%d/%d", len(selection), capacity),
	}
}

// ViewToggles devolve os botões de visão com exatamente um ativo
func ViewToggles(active models.View) []models.ViewToggle {
	toggles := make([]models.ViewToggle, len(models.AllViews))
	for i, v := range models.AllViews {
		toggles[i] = models.ViewToggle{View: v, Label: v.Label(), Active: v == active}
	}
	return toggles
}

// MapPane descreve o mapa base e os municípios a destacar.
// A coloração coroplética fica vazia até existir uma série de valores.
func MapPane(selection []models.Municipality, activeIndicator *models.Indicator, cfg config.MapConfig) *models.MapPane {
	highlighted := make([]string, len(selection))
	for i, m := range selection {
		highlighted[i] = m.ID
	}

	pane := &models.MapPane{
		CenterLat:   cfg.CenterLat,
		CenterLng:   cfg.CenterLng,
		Zoom:        cfg.Zoom,
		TileURL:     cfg.TileURL,
		Attribution: cfg.Attribution,
		Highlighted: highlighted,
	}
	if activeIndicator != nil {
		item := indicatorItem(*activeIndicator, activeIndicator.ID)
		pane.ActiveIndicator = &item
	}
	return pane
}

// ComparePane monta a tabela de comparação. Sem seleção, só o placeholder.
func ComparePane(selection []models.Municipality, activeIndicator *models.Indicator) *models.ComparePane {
	if len(selection) == 0 {
		return &models.ComparePane{Placeholder: ComparePlaceholder}
	}

	columns := make([]models.Municipality, len(selection))
	copy(columns, selection)
	pane := &models.ComparePane{Columns: columns}

	if activeIndicator == nil {
		return pane
	}

	item := indicatorItem(*activeIndicator, activeIndicator.ID)
	pane.Indicator = &item

	values := make([]string, len(selection))
	for i := range values {
		values[i] = MissingValue
	}
	pane.Rows = []models.CompareRow{{Label: activeIndicator.Name, Values: values}}
	return pane
}
