package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/prefeitura-rio/app-painel-pr/internal/config"
	"github.com/prefeitura-rio/app-painel-pr/internal/dashboard"
	middlewares "github.com/prefeitura-rio/app-painel-pr/internal/middleware"
	"github.com/prefeitura-rio/app-painel-pr/internal/models"
	"github.com/prefeitura-rio/app-painel-pr/internal/observability"
	"github.com/prefeitura-rio/app-painel-pr/internal/render"
	"github.com/prefeitura-rio/app-painel-pr/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testConfig = &config.Config{
	SessionTTL:      30 * time.Minute,
	DefaultCategory: "economy",
	Map: config.MapConfig{
		CenterLat:   18.2208,
		CenterLng:   -66.5901,
		Zoom:        9,
		TileURL:     "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: "© OpenStreetMap contributors",
	},
}

func newRouter(t *testing.T, loadErr error) *gin.Engine {
	t.Helper()
	logger := zaptest.NewLogger(t)
	metrics := observability.NewMetricsForTesting()

	var catalog *models.Catalog
	var factory func() *dashboard.Controller
	if loadErr == nil {
		var err error
		catalog, err = models.NewCatalog(
			[]models.Municipality{
				{ID: "san-juan", Name: "San Juan"},
				{ID: "ponce", Name: "Ponce"},
				{ID: "mayaguez", Name: "Mayagüez"},
				{ID: "caguas", Name: "Caguas"},
				{ID: "bayamon", Name: "Bayamón"},
			},
			[]models.Indicator{
				{ID: "median-income", Name: "Ingreso mediano del hogar", Category: "economy", Description: "Dólares de **2022**."},
				{ID: "unemployment", Name: "Tasa de desempleo", Category: "economy"},
				{ID: "population", Name: "Población total", Category: "demographics"},
			},
		)
		require.NoError(t, err)
		factory = services.ControllerFactory(catalog, testConfig.DefaultCategory, render.NewDashboard(catalog, testConfig.Map))
	}

	sessions := services.NewSessionService(100, testConfig.SessionTTL, clockwork.NewFakeClock(), factory, metrics, logger)
	html, err := render.NewHTML()
	require.NoError(t, err)

	r, err := SetupRouter(testConfig, Dependencies{
		Service:        services.NewDashboardService(catalog, loadErr, sessions, metrics, logger),
		HTML:           html,
		Logger:         logger,
		MetricsHandler: promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{}),
	})
	require.NoError(t, err)
	return r
}

// client guarda o cookie de sessão entre requisições
type client struct {
	t      *testing.T
	r      *gin.Engine
	cookie *http.Cookie
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middlewares.SessionCookie {
			c.cookie = ck
		}
	}
	return w
}

func (c *client) view(method, path string, body string) models.DashboardView {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := c.do(req)
	require.Equal(c.t, http.StatusOK, w.Code, w.Body.String())

	var view models.DashboardView
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func TestSelectionFlow(t *testing.T) {
	c := &client{t: t, r: newRouter(t, nil)}

	view := c.view(http.MethodGet, "/api/v1/state", "")
	assert.Equal(t, "0/4", view.Selection.Label)
	assert.Equal(t, models.ViewMap, view.View)

	for _, id := range []string{"san-juan", "ponce", "mayaguez", "caguas"} {
		view = c.view(http.MethodPost, "/api/v1/selection/"+id+"/toggle", "")
	}
	assert.Equal(t, "4/4", view.Selection.Label)

	view = c.view(http.MethodPost, "/api/v1/selection/bayamon/toggle", "")
	assert.Equal(t, dashboard.LimitNotice, view.Notice)
	assert.Equal(t, 4, view.Selection.Count)

	view = c.view(http.MethodDelete, "/api/v1/selection/ponce", "")
	assert.Equal(t, "3/4", view.Selection.Label)
	for _, pill := range view.Selection.Pills {
		assert.NotEqual(t, "ponce", pill.ID)
	}

	view = c.view(http.MethodPost, "/api/v1/selection/san-juan/toggle", "")
	assert.Equal(t, "2/4", view.Selection.Label)

	view = c.view(http.MethodDelete, "/api/v1/selection", "")
	assert.Equal(t, 0, view.Selection.Count)
}

func TestResetSession(t *testing.T) {
	c := &client{t: t, r: newRouter(t, nil)}

	c.view(http.MethodPost, "/api/v1/selection/ponce/toggle", "")
	c.view(http.MethodPut, "/api/v1/view", `{"view":"compare"}`)
	require.Equal(t, http.StatusOK, c.do(httptest.NewRequest(http.MethodGet, "/api/v1/indicators?category=demographics", nil)).Code)

	view := c.view(http.MethodDelete, "/api/v1/session", "")
	assert.Equal(t, 0, view.Selection.Count)
	assert.Equal(t, models.ViewMap, view.View)
	assert.Equal(t, "economy", view.Category)

	view = c.view(http.MethodGet, "/api/v1/state", "")
	assert.Equal(t, 0, view.Selection.Count)
}

func TestSwitchView(t *testing.T) {
	c := &client{t: t, r: newRouter(t, nil)}

	view := c.view(http.MethodPut, "/api/v1/view", `{"view":"compare"}`)
	assert.Equal(t, models.ViewCompare, view.View)
	assert.Nil(t, view.Map)
	require.NotNil(t, view.Compare)
	assert.Equal(t, render.ComparePlaceholder, view.Compare.Placeholder)
	renders := view.Renders

	view = c.view(http.MethodPut, "/api/v1/view", `{"view":"compare"}`)
	assert.Equal(t, renders, view.Renders)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/view", strings.NewReader(`{"view":"grid"}`))
	req.Header.Set("Content-Type", "application/json")
	w := c.do(req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	form := url.Values{"view": {"map"}}
	req = httptest.NewRequest(http.MethodPut, "/api/v1/view", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "dashboard")
	w = c.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="dashboard"`)
	assert.Contains(t, w.Body.String(), `id="map-container"`)
}

func TestSetActiveIndicator(t *testing.T) {
	c := &client{t: t, r: newRouter(t, nil)}

	view := c.view(http.MethodPut, "/api/v1/indicator", `{"id":"unemployment"}`)
	assert.Equal(t, "unemployment", view.ActiveIndicator)

	view = c.view(http.MethodPut, "/api/v1/indicator", `{"id":"nao-existe"}`)
	assert.Equal(t, "unemployment", view.ActiveIndicator)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/indicator", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusBadRequest, c.do(req).Code)
}

func TestSearchMunicipalities(t *testing.T) {
	c := &client{t: t, r: newRouter(t, nil)}
	c.view(http.MethodPost, "/api/v1/selection/mayaguez/toggle", "")

	w := c.do(httptest.NewRequest(http.MethodGet, "/api/v1/municipalities?q=MAYAG", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MunicipalitiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Mayagüez", resp.Municipalities[0].Name)
	assert.True(t, resp.Municipalities[0].Selected)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/municipalities?q=san", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "municipality-list")
	w = c.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, `<div id="municipality-list">`))
	assert.Contains(t, body, "San Juan")
	assert.NotContains(t, body, "Ponce")
}

func TestIndicatorsAndCategories(t *testing.T) {
	c := &client{t: t, r: newRouter(t, nil)}

	w := c.do(httptest.NewRequest(http.MethodGet, "/api/v1/indicators", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.IndicatorsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "economy", resp.Category)
	assert.Equal(t, 2, resp.Total)

	w = c.do(httptest.NewRequest(http.MethodGet, "/api/v1/indicators?category=demographics", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "population", resp.Indicators[0].ID)

	w = c.do(httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))
	var cats models.CategoriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	assert.Equal(t, 2, cats.TotalCategories)
	assert.False(t, cats.Categories[0].Active)
	assert.True(t, cats.Categories[1].Active)

	w = c.do(httptest.NewRequest(http.MethodGet, "/api/v1/indicators/median-income", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var detail models.IndicatorDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Contains(t, detail.DescriptionHTML, "<strong>2022</strong>")

	w = c.do(httptest.NewRequest(http.MethodGet, "/api/v1/indicators/nao-existe", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIndexPage(t *testing.T) {
	c := &client{t: t, r: newRouter(t, nil)}

	w := c.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `id="selected-count"`)
	assert.Contains(t, body, "Ingreso mediano del hogar")
	assert.NotContains(t, body, "Población total")
	require.NotNil(t, c.cookie)
	assert.Equal(t, middlewares.SessionCookie, c.cookie.Name)
}

func TestLoadFailure(t *testing.T) {
	c := &client{t: t, r: newRouter(t, errors.New("HTTP error! status: 404 (Not Found)"))}

	w := c.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Error al cargar los datos")
	assert.Contains(t, w.Body.String(), "status: 404")

	w = c.do(httptest.NewRequest(http.MethodPost, "/api/v1/selection/ponce/toggle", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = c.do(httptest.NewRequest(http.MethodGet, "/readiness", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = c.do(httptest.NewRequest(http.MethodGet, "/liveness", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProbesAndMetrics(t *testing.T) {
	c := &client{t: t, r: newRouter(t, nil)}

	for _, path := range []string{"/liveness", "/readiness", "/health", "/metrics"} {
		w := c.do(httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
