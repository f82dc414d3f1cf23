// Package loader carrega os dois recursos estáticos do painel
// (municipalities.json e indicators.json) e monta o catálogo.
//
// A carga é feita uma única vez, sem novas tentativas; qualquer falha é
// terminal e devolvida como *LoadError.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/prefeitura-rio/app-painel-pr/internal/models"
)

const (
	MunicipalitiesResource = "municipalities.json"
	IndicatorsResource     = "indicators.json"
)

var errMissingKey = errors.New("chave obrigatória ausente")

// LoadError é a falha terminal da inicialização
type LoadError struct {
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Resource == "" {
		return fmt.Sprintf("erro ao carregar dados: %v", e.Err)
	}
	return fmt.Sprintf("erro ao carregar %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader busca e decodifica os recursos
type Loader struct {
	source Source
	logger *zap.Logger
}

// New cria um loader para a fonte informada
func New(source Source, logger *zap.Logger) *Loader {
	return &Loader{source: source, logger: logger}
}

// Load busca os dois recursos em paralelo e monta o catálogo
func (l *Loader) Load(ctx context.Context) (*models.Catalog, error) {
	ctx, span := otel.Tracer("loader").Start(ctx, "loader.Load")
	defer span.End()
	span.SetAttributes(attribute.String("loader.source", l.source.String()))

	var (
		municipalities models.MunicipalitiesFile
		indicators     models.IndicatorsFile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return l.fetchInto(gctx, MunicipalitiesResource, "municipalities", &municipalities)
	})
	g.Go(func() error {
		return l.fetchInto(gctx, IndicatorsResource, "indicators", &indicators)
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		l.logger.Error("falha ao carregar dados", zap.String("source", l.source.String()), zap.Error(err))
		return nil, err
	}

	catalog, err := models.NewCatalog(municipalities.Municipalities, indicators.Indicators)
	if err != nil {
		loadErr := &LoadError{Err: err}
		span.RecordError(loadErr)
		span.SetStatus(codes.Error, "invalid catalog")
		l.logger.Error("catálogo inválido", zap.Error(err))
		return nil, loadErr
	}

	span.SetAttributes(
		attribute.Int("loader.municipalities", len(catalog.Municipalities)),
		attribute.Int("loader.indicators", len(catalog.Indicators)),
	)
	l.logger.Info("dados carregados",
		zap.String("source", l.source.String()),
		zap.Int("municipalities", len(catalog.Municipalities)),
		zap.Int("indicators", len(catalog.Indicators)),
		zap.Int("categories", len(catalog.Categories())),
	)

	return catalog, nil
}

// fetchInto busca o recurso e decodifica em dst, exigindo a chave de topo
func (l *Loader) fetchInto(ctx context.Context, resource, key string, dst any) error {
	raw, err := l.source.Fetch(ctx, resource)
	if err != nil {
		return &LoadError{Resource: resource, Err: err}
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return &LoadError{Resource: resource, Err: fmt.Errorf("JSON inválido: %w", err)}
	}
	if _, ok := top[key]; !ok {
		return &LoadError{Resource: resource, Err: fmt.Errorf("%w: %q", errMissingKey, key)}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(dst); err != nil {
		return &LoadError{Resource: resource, Err: fmt.Errorf("JSON inválido: %w", err)}
	}

	l.logger.Debug("recurso carregado", zap.String("resource", resource), zap.Int("bytes", len(raw)))
	return nil
}
