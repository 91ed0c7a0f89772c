package cmd

import (
	"fmt"
	"io"

	"polyhello/src"
	"polyhello/src/ai"
	"polyhello/src/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the supported providers and whether each one is configured",
	Long: `List the supported providers with their model, their position in the
attempt order and whether a credential is set. Secrets are never printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listProviders(cmd.OutOrStdout(), cfg)
		return nil
	},
}

func listProviders(w io.Writer, cfg *config.Config) {
	providers := ai.NewProviders(cfg)
	selector := ai.NewSelector(providers, cfg.Provider, zerolog.Nop())

	order := selector.Order()
	position := make(map[ai.ProviderID]int, len(order))
	for i, id := range order {
		position[id] = i + 1
	}

	green := src.Green().SprintFunc()
	yellow := src.Yellow().SprintFunc()
	faint := src.Faint().SprintFunc()

	src.PrintInfo(w, "Supported providers:")
	for _, p := range providers {
		credential := yellow("missing")
		if ai.HasCredential(cfg, p.ID()) {
			credential = green("set")
		}

		attempt := faint("forced only")
		if n, ok := position[p.ID()]; ok {
			attempt = fmt.Sprintf("attempt #%d", n)
		}

		fmt.Fprintf(w, "  %-7s %-22s %-12s key: %s\n", p.ID(), p.Model(), attempt, credential)
	}
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
