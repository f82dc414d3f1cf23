package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizarTexto remove acentos e converte para minúsculas
// Exemplo: "San Germán" -> "san german", "Mayagüez" -> "mayaguez"
func NormalizarTexto(texto string) string {
	if texto == "" {
		return texto
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, texto)

	return strings.ToLower(normalized)
}

// ContemTexto verifica se termo aparece em texto, ignorando caixa e acentos.
// Espaços nas pontas do termo são descartados; termo vazio (ou só espaços)
// casa com qualquer texto. Espaços internos continuam valendo.
func ContemTexto(texto, termo string) bool {
	termo = strings.TrimSpace(termo)
	if termo == "" {
		return true
	}
	return strings.Contains(NormalizarTexto(texto), NormalizarTexto(termo))
}

// NormalizarCategoria remove acentos e caracteres especiais de uma categoria
// Exemplo: "Economía" -> "economia", "Educación" -> "educacion"
func NormalizarCategoria(categoria string) string {
	return NormalizarTexto(strings.TrimSpace(categoria))
}

// DesnormalizarCategoria tenta encontrar a categoria original com base na versão normalizada
// Recebe a categoria normalizada e uma lista de categorias válidas, retorna a categoria original
func DesnormalizarCategoria(categoriaNormalizada string, categoriasValidas []string) string {
	for _, categoria := range categoriasValidas {
		if NormalizarCategoria(categoria) == categoriaNormalizada {
			return categoria
		}
	}
	// Se não encontrar correspondência, retorna a categoria normalizada mesmo
	return categoriaNormalizada
}
