package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-painel-pr/internal/config"
	"github.com/prefeitura-rio/app-painel-pr/internal/loader"
	"github.com/prefeitura-rio/app-painel-pr/internal/models"
	"github.com/prefeitura-rio/app-painel-pr/internal/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra já imprimiu o erro
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		source  string
		timeout time.Duration
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Valida os arquivos de dados do painel",
		Long: `validate executa a mesma carga da inicialização do servidor
(municipalities.json e indicators.json) contra um diretório ou URL base e
imprime um resumo do catálogo. Sai com código 1 se a carga falhar.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if source == "" {
				source = os.Getenv("DATA_SOURCE")
			}
			if source == "" {
				source = "./data"
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			catalog, err := loader.New(loader.NewSource(source, timeout), zap.NewNop()).Load(ctx)
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), source, catalog)

			invalid := nonSlugIDs(catalog)
			for _, id := range invalid {
				fmt.Fprintf(cmd.OutOrStdout(), "aviso: id fora do formato slug: %q\n", id)
			}
			if strict && len(invalid) > 0 {
				return fmt.Errorf("%d ids fora do formato slug", len(invalid))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "diretório ou URL base dos dados (padrão: DATA_SOURCE ou ./data)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "tempo máximo da carga")
	cmd.Flags().BoolVar(&strict, "strict", false, "falha se algum id não estiver no formato slug (ex: san-german)")

	return cmd
}

// nonSlugIDs lista os ids de municípios e indicadores que não são slugs
func nonSlugIDs(catalog *models.Catalog) []string {
	var invalid []string
	for _, m := range catalog.Municipalities {
		if !utils.IsSlug(m.ID) {
			invalid = append(invalid, m.ID)
		}
	}
	for _, ind := range catalog.Indicators {
		if !utils.IsSlug(ind.ID) {
			invalid = append(invalid, ind.ID)
		}
	}
	return invalid
}

func printSummary(w io.Writer, source string, catalog *models.Catalog) {
	kind := "diretório"
	if config.IsRemoteSource(source) {
		kind = "url"
	}
	fmt.Fprintf(w, "fonte: %s (%s)\n", source, kind)
	fmt.Fprintf(w, "municípios: %d\n", len(catalog.Municipalities))
	fmt.Fprintf(w, "indicadores: %d\n", len(catalog.Indicators))
	for _, cat := range catalog.Categories() {
		fmt.Fprintf(w, "  %s: %d\n", cat.Name, cat.Count)
	}
}
