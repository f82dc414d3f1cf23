package models

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyID     = errors.New("registro sem id")
	ErrDuplicateID = errors.New("id duplicado")
)

// Municipality representa um município de Porto Rico
type Municipality struct {
	ID   string `json:"id" example:"san-juan"`
	Name string `json:"name" example:"San Juan"`
}

// Indicator representa um indicador socioeconômico agrupado por categoria
type Indicator struct {
	ID       string `json:"id" example:"median-household-income"`
	Name     string `json:"name" example:"Ingreso mediano del hogar"`
	Category string `json:"category" example:"economy"`
	// Descrição opcional em markdown
	Description string `json:"description,omitempty"`
}

// MunicipalitiesFile é o formato de data/municipalities.json
type MunicipalitiesFile struct {
	Municipalities []Municipality `json:"municipalities"`
}

// IndicatorsFile é o formato de data/indicators.json
type IndicatorsFile struct {
	Indicators []Indicator `json:"indicators"`
}

// CategoryCount é uma categoria de indicadores e quantos indicadores ela agrupa
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Catalog guarda os dados carregados na inicialização. É somente leitura
// depois de construído e pode ser compartilhado entre sessões sem lock.
type Catalog struct {
	Municipalities []Municipality
	Indicators     []Indicator

	municipalityIdx map[string]int
	indicatorIdx    map[string]int
	categories      []CategoryCount
}

// NewCatalog valida ids (não vazios, únicos) e monta os índices
func NewCatalog(municipalities []Municipality, indicators []Indicator) (*Catalog, error) {
	c := &Catalog{
		Municipalities:  municipalities,
		Indicators:      indicators,
		municipalityIdx: make(map[string]int, len(municipalities)),
		indicatorIdx:    make(map[string]int, len(indicators)),
	}

	for i, m := range municipalities {
		if m.ID == "" {
			return nil, fmt.Errorf("município na posição %d: %w", i, ErrEmptyID)
		}
		if _, exists := c.municipalityIdx[m.ID]; exists {
			return nil, fmt.Errorf("município %q: %w", m.ID, ErrDuplicateID)
		}
		c.municipalityIdx[m.ID] = i
	}

	categoryIdx := make(map[string]int)
	for i, ind := range indicators {
		if ind.ID == "" {
			return nil, fmt.Errorf("indicador na posição %d: %w", i, ErrEmptyID)
		}
		if _, exists := c.indicatorIdx[ind.ID]; exists {
			return nil, fmt.Errorf("indicador %q: %w", ind.ID, ErrDuplicateID)
		}
		c.indicatorIdx[ind.ID] = i

		if pos, ok := categoryIdx[ind.Category]; ok {
			c.categories[pos].Count++
			continue
		}
		categoryIdx[ind.Category] = len(c.categories)
		c.categories = append(c.categories, CategoryCount{Name: ind.Category, Count: 1})
	}

	return c, nil
}

// Municipality busca um município pelo id
func (c *Catalog) Municipality(id string) (Municipality, bool) {
	i, ok := c.municipalityIdx[id]
	if !ok {
		return Municipality{}, false
	}
	return c.Municipalities[i], true
}

// Indicator busca um indicador pelo id
func (c *Catalog) Indicator(id string) (Indicator, bool) {
	i, ok := c.indicatorIdx[id]
	if !ok {
		return Indicator{}, false
	}
	return c.Indicators[i], true
}

// Categories retorna as categorias na ordem em que aparecem nos dados
func (c *Catalog) Categories() []CategoryCount {
	out := make([]CategoryCount, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategoryNames retorna só os nomes das categorias
func (c *Catalog) CategoryNames() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}
