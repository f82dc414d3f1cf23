package utils

import (
	"strings"
	"testing"
)

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"plain text", "Ingreso mediano del hogar", "Ingreso mediano del hogar"},
		{"bold", "Porcentaje de **personas** bajo pobreza", "Porcentaje de personas bajo pobreza"},
		{"link", "Fuente: [Censo](https://census.gov)", "Fuente: Censo"},
		{"raw html dropped", "Tasa <b>anual</b>", "Tasa anual"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripMarkdown(tt.input)
			if result != tt.expected {
				t.Errorf("StripMarkdown(%q) = %q; expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestResumo(t *testing.T) {
	desc := "# Desempleo\n\nTasa de desempleo de la población civil."

	if got := Resumo(desc, 0); got != "Desempleo" {
		t.Errorf("Resumo() = %q; expected %q", got, "Desempleo")
	}
	if got := Resumo("Población total estimada", 9); got != "Población…" {
		t.Errorf("Resumo() = %q; expected %q", got, "Población…")
	}
	if got := Resumo("", 10); got != "" {
		t.Errorf("Resumo(\"\") = %q; expected empty", got)
	}
}

func TestMarkdownToHTML(t *testing.T) {
	out := MarkdownToHTML("Fuente: **ACS 5 años**\n\n<script>alert(1)</script>")

	if !strings.Contains(out, "<strong>ACS 5 años</strong>") {
		t.Errorf("expected bold markup, got %q", out)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("raw html must be skipped, got %q", out)
	}
	if MarkdownToHTML("   ") != "" {
		t.Error("blank input must render empty")
	}
}
