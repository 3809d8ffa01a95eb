package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/portfolio"
	"github.com/spf13/cobra"
)

func newBlocksCmd(env *cliEnv) *cobra.Command {
	blocks := &cobra.Command{
		Use:   "blocks",
		Short: "Manage the blocks of the grid",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List blocks in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.withStore(cmd, func(ctx context.Context, s *portfolio.Store) error {
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				defer w.Flush()
				fmt.Fprintln(w, "#\tID\tKIND\tSIZE\tTITLE")
				fmt.Fprintln(w, "-\t--\t----\t----\t-----")
				for i, b := range s.Blocks() {
					fmt.Fprintf(w, "%d\t%s\t%s\t%dx%d\t%s\n", i, b.ID, b.Kind, b.ColumnSpan, b.RowSpan, truncate(b.Title, 40))
				}
				return nil
			})
		},
	}

	add := &cobra.Command{
		Use:       "add <kind>",
		Short:     "Append a block of the given kind",
		Long:      "Append a block with the defaults for its kind. Kinds: social, text, image, link, map.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"social", "text", "image", "link", "map"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseBlockKind(args[0])
			if err != nil {
				return err
			}
			return env.withStore(cmd, func(ctx context.Context, s *portfolio.Store) error {
				b, err := s.AddBlock(ctx, kind)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s block %s\n", b.Kind, b.ID)
				return nil
			})
		},
	}

	move := &cobra.Command{
		Use:   "move <id> <earlier|later>",
		Short: "Swap a block with its neighbour",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := portfolio.ParseDirection(args[1])
			if err != nil {
				return err
			}
			return env.withStore(cmd, func(ctx context.Context, s *portfolio.Store) error {
				if _, ok := s.Block(args[0]); !ok {
					return fmt.Errorf("block %q: %w", args[0], domain.ErrNotFound)
				}
				moved, err := s.MoveBlockByID(ctx, args[0], dir)
				if err != nil {
					return err
				}
				if !moved {
					fmt.Fprintln(cmd.OutOrStdout(), "Block is already at the edge; nothing moved")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Moved block %s\n", args[0])
				return nil
			})
		},
	}

	resize := &cobra.Command{
		Use:   "resize <id> <width|height> <grow|shrink>",
		Short: "Grow or shrink a block by one cell",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			axis, err := portfolio.ParseAxis(args[1])
			if err != nil {
				return err
			}
			action, err := portfolio.ParseResize(args[2])
			if err != nil {
				return err
			}
			return env.withStore(cmd, func(ctx context.Context, s *portfolio.Store) error {
				if _, ok := s.Block(args[0]); !ok {
					return fmt.Errorf("block %q: %w", args[0], domain.ErrNotFound)
				}
				if _, err := s.ResizeBlock(ctx, args[0], axis, action); err != nil {
					return err
				}
				b, _ := s.Block(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Block %s is now %dx%d\n", b.ID, b.ColumnSpan, b.RowSpan)
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a block after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.withStore(cmd, func(ctx context.Context, s *portfolio.Store) error {
				if _, ok := s.Block(args[0]); !ok {
					return fmt.Errorf("block %q: %w", args[0], domain.ErrNotFound)
				}
				deleted, err := s.DeleteBlock(ctx, args[0], env.confirmer(cmd))
				if err != nil {
					return err
				}
				if deleted {
					fmt.Fprintf(cmd.OutOrStdout(), "Deleted block %s\n", args[0])
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				}
				return nil
			})
		},
	}

	blocks.AddCommand(list, add, move, resize, del)
	return blocks
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
