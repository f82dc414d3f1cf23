// Package render projeta o estado do painel nas listas, no mapa e na
// comparação. Todas as funções são puras: mesmo estado, mesma saída.
package render

import (
	"github.com/prefeitura-rio/app-painel-pr/internal/constants"
	"github.com/prefeitura-rio/app-painel-pr/internal/models"
	"github.com/prefeitura-rio/app-painel-pr/internal/utils"
)

const summaryMaxRunes = 120

// IndicatorList mostra só os indicadores da categoria ativa, na ordem dos dados,
// marcando o indicador ativo
func IndicatorList(indicators []models.Indicator, activeCategory, activeIndicator string) []models.IndicatorItem {
	items := make([]models.IndicatorItem, 0)
	for _, ind := range indicators {
		if ind.Category != activeCategory {
			continue
		}
		items = append(items, indicatorItem(ind, activeIndicator))
	}
	return items
}

// MunicipalityList filtra os municípios cujo nome contém o termo (sem diferenciar
// caixa nem acentos) e marca os que estão na seleção
func MunicipalityList(municipalities []models.Municipality, searchTerm string, selection []models.Municipality) []models.MunicipalityItem {
	selected := make(map[string]bool, len(selection))
	for _, m := range selection {
		selected[m.ID] = true
	}

	items := make([]models.MunicipalityItem, 0, len(municipalities))
	for _, m := range municipalities {
		if !utils.ContemTexto(m.Name, searchTerm) {
			continue
		}
		items = append(items, models.MunicipalityItem{
			ID:       m.ID,
			Name:     m.Name,
			Selected: selected[m.ID],
		})
	}
	return items
}

// CategoryBar monta a barra de categorias com a ativa marcada
func CategoryBar(categories []models.CategoryCount, activeCategory string) []models.CategoryItem {
	items := make([]models.CategoryItem, len(categories))
	for i, cat := range categories {
		items[i] = models.CategoryItem{
			Name:   cat.Name,
			Label:  constants.RotuloCategoria(cat.Name),
			Count:  cat.Count,
			Active: cat.Name == activeCategory,
		}
	}
	return items
}

func indicatorItem(ind models.Indicator, activeIndicator string) models.IndicatorItem {
	return models.IndicatorItem{
		ID:       ind.ID,
		Name:     ind.Name,
		Category: ind.Category,
		Summary:  utils.Resumo(ind.Description, summaryMaxRunes),
		Active:   ind.ID == activeIndicator,
	}
}
