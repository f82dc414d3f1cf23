package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// ResourceURL junta a URL base da fonte de dados com o nome do recurso,
// preservando query string (ex.: tokens de CDN)
func ResourceURL(baseURL, resource string) (string, error) {
	if strings.TrimSpace(baseURL) == "" {
		return "", fmt.Errorf("URL base vazia")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("URL base inválida: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("esquema não suportado: %q", parsed.Scheme)
	}

	parsed.Path = strings.TrimRight(parsed.Path, "/") + "/" + strings.TrimLeft(resource, "/")
	return parsed.String(), nil
}
