package dashboard

import (
	"errors"
	"sync"

	"github.com/prefeitura-rio/app-painel-pr/internal/models"
)

// Renderer projeta um Snapshot na visão completa do painel.
// Deve ser uma função pura do snapshot.
type Renderer interface {
	Render(snap Snapshot) models.DashboardView
}

// RendererFunc adapta uma função ao Renderer
type RendererFunc func(snap Snapshot) models.DashboardView

func (f RendererFunc) Render(snap Snapshot) models.DashboardView {
	return f(snap)
}

// Controller é o dono do State de uma sessão. Toda mutação que muda algo é
// seguida de uma nova renderização dentro do mesmo lock; mutações sem efeito
// devolvem a última renderização sem chamar o Renderer.
type Controller struct {
	mu       sync.Mutex
	state    *State
	renderer Renderer
	last     models.DashboardView
	renders  int
}

// NewController renderiza o estado inicial
func NewController(state *State, renderer Renderer) *Controller {
	c := &Controller{state: state, renderer: renderer}
	c.rerender()
	return c
}

// View devolve a última renderização
func (c *Controller) View() models.DashboardView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Renders conta quantas vezes o Renderer foi chamado
func (c *Controller) Renders() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renders
}

// ToggleMunicipality aplica State.ToggleMunicipality. Com a seleção cheia a
// visão volta com Notice preenchido e o erro ErrSelectionLimit.
func (c *Controller) ToggleMunicipality(id string) (models.DashboardView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.state.ToggleMunicipality(id); err != nil {
		view := c.last
		if errors.Is(err, ErrSelectionLimit) {
			view.Notice = LimitNotice
		}
		return view, err
	}
	c.rerender()
	return c.last, nil
}

// RemoveMunicipality é idempotente
func (c *Controller) RemoveMunicipality(id string) models.DashboardView {
	return c.apply(func(s *State) bool { return s.RemoveMunicipality(id) })
}

// ClearSelection esvazia a seleção
func (c *Controller) ClearSelection() models.DashboardView {
	return c.apply(func(s *State) bool { return s.ClearSelection() })
}

// SetActiveIndicator troca o indicador ativo; id desconhecido retorna
// ErrUnknownIndicator e mantém o estado
func (c *Controller) SetActiveIndicator(id string) (models.DashboardView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed, err := c.state.SetActiveIndicator(id)
	if err != nil {
		return c.last, err
	}
	if changed {
		c.rerender()
	}
	return c.last, nil
}

// SwitchView troca entre mapa e comparação. Trocar para a visão atual não
// renderiza de novo.
func (c *Controller) SwitchView(target models.View) (models.DashboardView, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed, err := c.state.SwitchView(target)
	if err != nil {
		return c.last, false, err
	}
	if changed {
		c.rerender()
	}
	return c.last, changed, nil
}

// SetCategory troca a categoria da lista de indicadores
func (c *Controller) SetCategory(category string) models.DashboardView {
	return c.apply(func(s *State) bool { return s.SetCategory(category) })
}

// SetSearchTerm troca o termo de busca de municípios
func (c *Controller) SetSearchTerm(term string) models.DashboardView {
	return c.apply(func(s *State) bool { return s.SetSearchTerm(term) })
}

func (c *Controller) apply(mutate func(s *State) bool) models.DashboardView {
	c.mu.Lock()
	defer c.mu.Unlock()

	if mutate(c.state) {
		c.rerender()
	}
	return c.last
}

// rerender deve ser chamado com o lock
func (c *Controller) rerender() {
	c.renders++
	view := c.renderer.Render(c.state.Snapshot())
	view.Renders = c.renders
	c.last = view
}
