package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/prefeitura-rio/app-painel-pr/internal/models"
)

const (
	municipalitiesJSON = `{"municipalities":[{"id":"san-juan","name":"San Juan"},{"id":"ponce","name":"Ponce"}]}`
	indicatorsJSON     = `{"indicators":[
		{"id":"income","name":"Ingreso mediano","category":"economy","description":"**ACS** 5 años"},
		{"id":"unemployment","name":"Desempleo","category":"economy"}
	]}`
)

func writeData(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestLoad_FileSource(t *testing.T) {
	dir := writeData(t, map[string]string{
		MunicipalitiesResource: municipalitiesJSON,
		IndicatorsResource:     indicatorsJSON,
	})

	catalog, err := New(FileSource{Dir: dir}, zaptest.NewLogger(t)).Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, catalog.Municipalities, 2)
	assert.Len(t, catalog.Indicators, 2)
	assert.Equal(t, []models.CategoryCount{{Name: "economy", Count: 2}}, catalog.Categories())

	ind, ok := catalog.Indicator("income")
	require.True(t, ok)
	assert.Equal(t, "**ACS** 5 años", ind.Description)
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name         string
		files        map[string]string
		wantResource string
	}{
		{
			name:         "arquivo de municípios ausente",
			files:        map[string]string{IndicatorsResource: indicatorsJSON},
			wantResource: MunicipalitiesResource,
		},
		{
			name:         "JSON inválido",
			files:        map[string]string{MunicipalitiesResource: municipalitiesJSON, IndicatorsResource: `{"indicators": [`},
			wantResource: IndicatorsResource,
		},
		{
			name:         "chave de topo ausente",
			files:        map[string]string{MunicipalitiesResource: `{"economy":{}}`, IndicatorsResource: indicatorsJSON},
			wantResource: MunicipalitiesResource,
		},
		{
			name: "id duplicado",
			files: map[string]string{
				MunicipalitiesResource: `{"municipalities":[{"id":"ponce","name":"Ponce"},{"id":"ponce","name":"Ponce"}]}`,
				IndicatorsResource:     indicatorsJSON,
			},
			wantResource: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeData(t, tt.files)

			catalog, err := New(FileSource{Dir: dir}, zaptest.NewLogger(t)).Load(context.Background())
			require.Error(t, err)
			assert.Nil(t, catalog)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.wantResource, loadErr.Resource)
		})
	}
}

func TestLoad_DuplicateIDIsWrapped(t *testing.T) {
	dir := writeData(t, map[string]string{
		MunicipalitiesResource: municipalitiesJSON,
		IndicatorsResource:     `{"indicators":[{"id":"x","category":"economy"},{"id":"x","category":"economy"}]}`,
	})

	_, err := New(FileSource{Dir: dir}, zaptest.NewLogger(t)).Load(context.Background())
	assert.ErrorIs(t, err, models.ErrDuplicateID)
}

func TestLoad_HTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data/" + MunicipalitiesResource:
			_, _ = w.Write([]byte(municipalitiesJSON))
		case "/data/" + IndicatorsResource:
			_, _ = w.Write([]byte(indicatorsJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	catalog, err := New(NewHTTPSource(srv.URL+"/data", time.Second), zaptest.NewLogger(t)).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog.Municipalities, 2)
}

func TestLoad_HTTPNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/"+IndicatorsResource {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(municipalitiesJSON))
	}))
	defer srv.Close()

	_, err := New(NewHTTPSource(srv.URL, time.Second), zaptest.NewLogger(t)).Load(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, err.Error(), IndicatorsResource)
}

func TestNewSource(t *testing.T) {
	assert.IsType(t, FileSource{}, NewSource("./data", time.Second))
	assert.IsType(t, &HTTPSource{}, NewSource("https://cdn.example.org", time.Second))
}
