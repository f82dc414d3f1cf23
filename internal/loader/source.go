package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/prefeitura-rio/app-painel-pr/internal/config"
	"github.com/prefeitura-rio/app-painel-pr/internal/utils"
)

// NewSource escolhe a fonte pelo formato de DATA_SOURCE: URL http(s) ou diretório
func NewSource(dataSource string, timeout time.Duration) Source {
	if config.IsRemoteSource(dataSource) {
		return NewHTTPSource(dataSource, timeout)
	}
	return FileSource{Dir: dataSource}
}

// Source entrega o conteúdo bruto de um recurso pelo nome
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
	String() string
}

// FileSource lê os recursos de um diretório local
type FileSource struct {
	Dir string
}

func (s FileSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(s.Dir, name))
}

func (s FileSource) String() string {
	return s.Dir
}

// HTTPSource busca os recursos em uma URL base. Uma única tentativa por recurso.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource cria uma fonte HTTP com o timeout informado
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

// StatusError é devolvido quando o servidor responde fora da faixa 2xx
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d (%s)", e.StatusCode, e.URL)
}

func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	resourceURL, err := utils.ResourceURL(s.BaseURL, name)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resourceURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: resourceURL, StatusCode: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

func (s *HTTPSource) String() string {
	return s.BaseURL
}
