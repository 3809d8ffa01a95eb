package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/portfolio"
	"github.com/spf13/cobra"
)

func newProfileCmd(env *cliEnv) *cobra.Command {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "Show or change the profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print every profile field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.withStore(cmd, func(ctx context.Context, s *portfolio.Store) error {
				p := s.Profile()
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				defer w.Flush()
				for _, f := range domain.ProfileFields {
					v, err := p.Get(f)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%s\t%s\n", f, v)
				}
				return nil
			})
		},
	}

	set := &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Overwrite one profile field",
		Long: `Overwrite one profile field. The value is stored as given.

Fields: name, role, avatarUrl, email, instagramHandle, whatsappNumber,
whatsappDefaultMessage, portfolioLinkUrl.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.withStore(cmd, func(ctx context.Context, s *portfolio.Store) error {
				if err := s.UpdateProfileField(ctx, domain.ProfileField(args[0]), args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", args[0])
				return nil
			})
		},
	}

	profile.AddCommand(show, set)
	return profile
}
