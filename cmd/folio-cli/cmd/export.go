package cmd

import (
	"context"
	"encoding/json"

	"github.com/nfrund/folio/internal/portfolio"
	"github.com/spf13/cobra"
)

func newExportCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the whole document as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.withStore(cmd, func(ctx context.Context, s *portfolio.Store) error {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(s.Snapshot())
			})
		},
	}
}
