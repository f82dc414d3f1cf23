package dashboard

import (
	"slices"
	"strings"

	"github.com/prefeitura-rio/app-painel-pr/internal/models"
	"github.com/prefeitura-rio/app-painel-pr/internal/utils"
)

// State é o estado mutável de uma sessão. Não é seguro para uso concorrente;
// o Controller serializa o acesso.
type State struct {
	catalog *models.Catalog

	selection       Selection
	activeIndicator string
	view            models.View
	category        string
	searchTerm      string
}

// NewState cria o estado inicial: visão mapa, sem indicador, seleção vazia
func NewState(catalog *models.Catalog, defaultCategory string) *State {
	return &State{
		catalog:  catalog,
		view:     models.ViewMap,
		category: defaultCategory,
	}
}

// ToggleMunicipality alterna o município na seleção.
// Ids que não existem no catálogo não alteram nada.
func (s *State) ToggleMunicipality(id string) ([]models.Municipality, error) {
	m, ok := s.catalog.Municipality(id)
	if !ok {
		return s.selection.Items(), ErrUnknownMunicipality
	}
	if _, err := s.selection.Toggle(m); err != nil {
		return s.selection.Items(), err
	}
	return s.selection.Items(), nil
}

// RemoveMunicipality remove o município da seleção; ausente é no-op
func (s *State) RemoveMunicipality(id string) bool {
	return s.selection.Remove(id)
}

// ClearSelection esvazia a seleção
func (s *State) ClearSelection() bool {
	return s.selection.Clear()
}

// SetActiveIndicator troca o indicador ativo. Um id fora do catálogo é
// rejeitado e o indicador anterior é mantido.
func (s *State) SetActiveIndicator(id string) (changed bool, err error) {
	if _, ok := s.catalog.Indicator(id); !ok {
		return false, ErrUnknownIndicator
	}
	if s.activeIndicator == id {
		return false, nil
	}
	s.activeIndicator = id
	return true, nil
}

// SwitchView troca a visão ativa; a mesma visão é no-op
func (s *State) SwitchView(target models.View) (changed bool, err error) {
	if !target.IsValid() {
		return false, ErrInvalidView
	}
	if s.view == target {
		return false, nil
	}
	s.view = target
	return true, nil
}

// SetCategory troca o filtro da lista de indicadores. Aceita a categoria sem
// acentos ou com outra caixa ("Economy" → "economy") quando ela existe no catálogo.
func (s *State) SetCategory(category string) bool {
	category = strings.TrimSpace(category)
	if category == "" {
		return false
	}
	names := s.catalog.CategoryNames()
	resolved := utils.DesnormalizarCategoria(utils.NormalizarCategoria(category), names)
	if !slices.Contains(names, resolved) {
		resolved = category
	}
	if s.category == resolved {
		return false
	}
	s.category = resolved
	return true
}

// SetSearchTerm troca o filtro da lista de municípios
func (s *State) SetSearchTerm(term string) bool {
	if s.searchTerm == term {
		return false
	}
	s.searchTerm = term
	return true
}

// Snapshot copia o estado para os renderizadores
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Selection:  s.selection.Items(),
		View:       s.view,
		Category:   s.category,
		SearchTerm: s.searchTerm,
		Capacity:   SelectionCapacity,
	}
	if ind, ok := s.catalog.Indicator(s.activeIndicator); ok {
		snap.ActiveIndicator = &ind
	}
	return snap
}

// Snapshot é uma cópia imutável do State
type Snapshot struct {
	Selection       []models.Municipality
	ActiveIndicator *models.Indicator
	View            models.View
	Category        string
	SearchTerm      string
	Capacity        int
}
