package models

// View é uma das duas visões mutuamente exclusivas do painel
type View string

const (
	ViewMap     View = "map"
	ViewCompare View = "compare"
)

// IsValid verifica se a visão é uma das conhecidas
func (v View) IsValid() bool {
	return v == ViewMap || v == ViewCompare
}

// Label é o texto do botão da visão
func (v View) Label() string {
	switch v {
	case ViewMap:
		return "Mapa"
	case ViewCompare:
		return "Comparar"
	}
	return string(v)
}

// AllViews lista as visões na ordem dos botões
var AllViews = []View{ViewMap, ViewCompare}

// IndicatorItem é um item da lista de indicadores
type IndicatorItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Summary  string `json:"summary,omitempty"`
	Active   bool   `json:"active"`
}

// MunicipalityItem é um item da lista de municípios
type MunicipalityItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// CategoryItem é um botão da barra de categorias
type CategoryItem struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
	Active bool   `json:"active"`
}

// SelectionView é a faixa de municípios selecionados ("pills") com o contador n/4
type SelectionView struct {
	Pills    []Municipality `json:"pills"`
	Count    int            `json:"count"`
	Capacity int            `json:"capacity"`
	Label    string         `json:"label"`
}

// ViewToggle é um dos botões de troca de visão; exatamente um fica ativo
type ViewToggle struct {
	View   View   `json:"view"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// ChoroplethCell associa um município a uma cor no mapa
type ChoroplethCell struct {
	MunicipalityID string  `json:"municipality_id"`
	Value          float64 `json:"value"`
	Color          string  `json:"color"`
}

// MapPane descreve o mapa base e o que deve ser destacado nele
type MapPane struct {
	CenterLat       float64          `json:"center_lat"`
	CenterLng       float64          `json:"center_lng"`
	Zoom            int              `json:"zoom"`
	TileURL         string           `json:"tile_url"`
	Attribution     string           `json:"attribution"`
	Highlighted     []string         `json:"highlighted"`
	ActiveIndicator *IndicatorItem   `json:"active_indicator,omitempty"`
	Choropleth      []ChoroplethCell `json:"choropleth,omitempty"`
}

// CompareRow é uma linha da tabela de comparação
type CompareRow struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// ComparePane é a tabela de comparação entre os municípios selecionados
type ComparePane struct {
	Placeholder string         `json:"placeholder,omitempty"`
	Indicator   *IndicatorItem `json:"indicator,omitempty"`
	Columns     []Municipality `json:"columns,omitempty"`
	Rows        []CompareRow   `json:"rows,omitempty"`
}

// DashboardView é a projeção completa do estado de uma sessão.
// Só o painel da visão ativa é preenchido.
type DashboardView struct {
	View            View               `json:"view"`
	Category        string             `json:"category"`
	SearchTerm      string             `json:"search_term"`
	ActiveIndicator string             `json:"active_indicator,omitempty"`
	Categories      []CategoryItem     `json:"categories"`
	Indicators      []IndicatorItem    `json:"indicators"`
	Municipalities  []MunicipalityItem `json:"municipalities"`
	Selection       SelectionView      `json:"selection"`
	Toggles         []ViewToggle       `json:"toggles"`
	Map             *MapPane           `json:"map,omitempty"`
	Compare         *ComparePane       `json:"compare,omitempty"`
	Notice          string             `json:"notice,omitempty"`
	Renders         int                `json:"renders"`
}

// IndicatorDetail é a resposta de GET /api/v1/indicators/:id
type IndicatorDetail struct {
	Indicator
	DescriptionHTML string `json:"description_html,omitempty"`
}

// ViewRequest é o corpo de PUT /api/v1/view
type ViewRequest struct {
	View View `json:"view" form:"view" binding:"required,dashboard_view" example:"compare"`
}

// IndicatorRequest é o corpo de PUT /api/v1/indicator
type IndicatorRequest struct {
	ID string `json:"id" form:"id" binding:"required" example:"median-household-income"`
}

// CategoriesResponse é a resposta de GET /api/v1/categories
type CategoriesResponse struct {
	Categories      []CategoryItem `json:"categories"`
	TotalCategories int            `json:"total_categories"`
}

// MunicipalitiesResponse é a resposta JSON de GET /api/v1/municipalities
type MunicipalitiesResponse struct {
	SearchTerm     string             `json:"search_term"`
	Municipalities []MunicipalityItem `json:"municipalities"`
	Total          int                `json:"total"`
}

// IndicatorsResponse é a resposta JSON de GET /api/v1/indicators
type IndicatorsResponse struct {
	Category   string          `json:"category"`
	Indicators []IndicatorItem `json:"indicators"`
	Total      int             `json:"total"`
}

// ErrorResponse é o corpo das respostas de erro
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
