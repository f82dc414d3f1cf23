package constants

// CategoriaRotulos traduz as chaves de categoria dos dados para o rótulo
// exibido na barra de categorias
var CategoriaRotulos = map[string]string{
	"economy":      "Economía",
	"demographics": "Demografía",
	"education":    "Educación",
	"health":       "Salud",
	"housing":      "Vivienda",
	"environment":  "Ambiente",
	"safety":       "Seguridad",
	"transport":    "Transporte",
}

// RotuloCategoria devolve o rótulo da categoria; chaves desconhecidas são
// exibidas como estão nos dados
func RotuloCategoria(categoria string) string {
	if rotulo, ok := CategoriaRotulos[categoria]; ok {
		return rotulo
	}
	return categoria
}
