package utils

import (
	"testing"
)

func TestNormalizarTexto(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"San Germán", "san german"},
		{"Mayagüez", "mayaguez"},
		{"Añasco", "anasco"},
		{"Peñuelas", "penuelas"},
		{"Canóvanas", "canovanas"},
		{"PONCE", "ponce"},
		{"", ""},
	}

	for _, test := range tests {
		result := NormalizarTexto(test.input)
		if result != test.expected {
			t.Errorf("NormalizarTexto(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestContemTexto(t *testing.T) {
	tests := []struct {
		texto    string
		termo    string
		expected bool
	}{
		{"San Juan", "san", true},
		{"San Germán", "SAN", true},
		{"San Germán", "german", true},
		{"Ponce", "san", false},
		{"Mayagüez", "guez", true},
		{"Ponce", "", true},
		{"Ponce", "   ", true},
		{"Ponce", " ponce ", true},
		{"San Juan", "san j", true},
		{"San Juan", "sanj", false},
	}

	for _, test := range tests {
		result := ContemTexto(test.texto, test.termo)
		if result != test.expected {
			t.Errorf("ContemTexto(%q, %q) = %v; expected %v", test.texto, test.termo, result, test.expected)
		}
	}
}

func TestNormalizarCategoria(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Economía", "economia"},
		{"Educación", "educacion"},
		{" Salud ", "salud"},
		{"economy", "economy"},
		{"", ""},
	}

	for _, test := range tests {
		result := NormalizarCategoria(test.input)
		if result != test.expected {
			t.Errorf("NormalizarCategoria(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestDesnormalizarCategoria(t *testing.T) {
	categoriasValidas := []string{"economy", "Educación", "Salud", "Vivienda"}

	tests := []struct {
		input    string
		expected string
	}{
		{"economy", "economy"},
		{"educacion", "Educación"},
		{"salud", "Salud"},
		{"vivienda", "Vivienda"},
		{"categoria_inexistente", "categoria_inexistente"}, // Retorna o que foi passado se não encontrar
	}

	for _, test := range tests {
		result := DesnormalizarCategoria(test.input, categoriasValidas)
		if result != test.expected {
			t.Errorf("DesnormalizarCategoria(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}
