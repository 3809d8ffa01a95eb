package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/nfrund/folio/internal/contact"
	"github.com/nfrund/folio/internal/portfolio"
	"github.com/spf13/cobra"
)

func newVisitorsCmd(env *cliEnv) *cobra.Command {
	visitors := &cobra.Command{
		Use:   "visitors",
		Short: "Inspect the visitor log",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List visitors, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.withStore(cmd, func(ctx context.Context, s *portfolio.Store) error {
				entries := s.Visitors()
				if len(entries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Sem novos registros.")
					return nil
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				defer w.Flush()
				fmt.Fprintln(w, "ID\tHANDLE\tWHEN")
				for _, v := range entries {
					when := contact.FormatVisit(v.SubmittedAt, time.Local)
					fmt.Fprintf(w, "%s\t%s\t%s, %s %s\n", v.ID, contact.DisplayHandle(v), when.DayName, when.Day, when.Time)
				}
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove one visitor entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.withStore(cmd, func(ctx context.Context, s *portfolio.Store) error {
				deleted, err := s.DeleteVisitor(ctx, args[0])
				if err != nil {
					return err
				}
				if !deleted {
					fmt.Fprintf(cmd.OutOrStdout(), "No visitor %s\n", args[0])
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted visitor %s\n", args[0])
				return nil
			})
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the visitor log after confirmation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.withStore(cmd, func(ctx context.Context, s *portfolio.Store) error {
				cleared, err := s.ClearVisitors(ctx, env.confirmer(cmd))
				if err != nil {
					return err
				}
				if cleared {
					fmt.Fprintln(cmd.OutOrStdout(), "Visitor log cleared")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				}
				return nil
			})
		},
	}

	visitors.AddCommand(list, del, clearCmd)
	return visitors
}
