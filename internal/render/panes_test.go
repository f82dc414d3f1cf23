package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefeitura-rio/app-painel-pr/internal/config"
	"github.com/prefeitura-rio/app-painel-pr/internal/models"
)

var testMapConfig = config.MapConfig{
	CenterLat:   18.2208,
	CenterLng:   -66.5901,
	Zoom:        9,
	TileURL:     "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
	Attribution: "© OpenStreetMap contributors",
}

func TestSelectionStrip(t *testing.T) {
	strip := SelectionStrip([]models.Municipality{{ID: "ponce", Name: "Ponce"}}, 4)
	assert.Equal(t, "1/4", strip.Label)
	assert.Equal(t, 1, strip.Count)
	assert.Equal(t, 4, strip.Capacity)

	assert.Equal(t, "0/4", SelectionStrip(nil, 4).Label)
}

func TestViewToggles_ExactlyOneActive(t *testing.T) {
	for _, v := range models.AllViews {
		active := 0
		for _, toggle := range ViewToggles(v) {
			if toggle.Active {
				active++
				assert.Equal(t, v, toggle.View)
			}
		}
		assert.Equal(t, 1, active)
	}
}

func TestMapPane(t *testing.T) {
	indicator := &models.Indicator{ID: "income", Name: "Ingreso", Category: "economy"}
	pane := MapPane([]models.Municipality{{ID: "ponce"}, {ID: "caguas"}}, indicator, testMapConfig)

	assert.Equal(t, 18.2208, pane.CenterLat)
	assert.Equal(t, -66.5901, pane.CenterLng)
	assert.Equal(t, 9, pane.Zoom)
	assert.Equal(t, "© OpenStreetMap contributors", pane.Attribution)
	assert.Equal(t, []string{"ponce", "caguas"}, pane.Highlighted)
	require.NotNil(t, pane.ActiveIndicator)
	assert.True(t, pane.ActiveIndicator.Active)
	assert.Nil(t, pane.Choropleth)
}

func TestComparePane_EmptySelectionShowsPlaceholder(t *testing.T) {
	pane := ComparePane(nil, &models.Indicator{ID: "income"})
	assert.Equal(t, ComparePlaceholder, pane.Placeholder)
	assert.Empty(t, pane.Columns)
}

func TestComparePane_WithSelection(t *testing.T) {
	selection := []models.Municipality{{ID: "ponce", Name: "Ponce"}, {ID: "caguas", Name: "Caguas"}}

	pane := ComparePane(selection, nil)
	assert.Empty(t, pane.Placeholder)
	assert.Equal(t, selection, pane.Columns)
	assert.Nil(t, pane.Indicator)
	assert.Empty(t, pane.Rows)

	pane = ComparePane(selection, &models.Indicator{ID: "income", Name: "Ingreso"})
	require.NotNil(t, pane.Indicator)
	require.Len(t, pane.Rows, 1)
	assert.Equal(t, "Ingreso", pane.Rows[0].Label)
	assert.Equal(t, []string{MissingValue, MissingValue}, pane.Rows[0].Values)
}
