package utils

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converte texto para o formato kebab-case usado nos ids dos dados
// Exemplo: "San Germán" -> "san-german", "Río Grande" -> "rio-grande"
func Slug(text string) string {
	slug := nonSlugChars.ReplaceAllString(NormalizarTexto(text), "-")
	return strings.Trim(slug, "-")
}

// IsSlug verifica se o id já está no formato de slug
func IsSlug(id string) bool {
	return id != "" && Slug(id) == id
}
