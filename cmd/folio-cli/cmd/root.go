package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/nfrund/folio/internal/app"
	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/logging"
	"github.com/nfrund/folio/internal/portfolio"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// StoreOpener opens the portfolio store and returns a function releasing it.
type StoreOpener func(ctx context.Context) (*portfolio.Store, func() error, error)

// openFromConfig opens the store configured by the environment.
func openFromConfig(ctx context.Context) (*portfolio.Store, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	i := app.NewInjector(ctx, cfg)
	store, err := do.Invoke[*portfolio.Store](i)
	if err != nil {
		_ = app.Close(ctx, i)
		return nil, nil, err
	}
	return store, func() error { return app.Close(ctx, i) }, nil
}

// NewRootCmd builds the folio-cli command tree over the store open returns.
func NewRootCmd(open StoreOpener) *cobra.Command {
	var assumeYes bool

	root := &cobra.Command{
		Use:   "folio-cli",
		Short: "Folio CLI tool",
		Long: `Folio CLI edits the portfolio document directly in the configured store.

Available commands:
  blocks      List, add, move, resize and delete grid blocks
  profile     Show or change profile fields
  visitors    List, delete and clear the visitor log
  export      Print the whole document as JSON

The store is selected by the same environment variables the server reads
(STORE_BACKEND, STORE_DIR, STORE_NAMESPACE, SURREAL_*).`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "answer yes to confirmation prompts")

	env := &cliEnv{open: open, assumeYes: &assumeYes}
	root.AddCommand(
		newVersionCmd(),
		newBlocksCmd(env),
		newProfileCmd(env),
		newVisitorsCmd(env),
		newExportCmd(env),
	)
	return root
}

// cliEnv is shared by every subcommand.
type cliEnv struct {
	open      StoreOpener
	assumeYes *bool
}

// withStore runs fn against an open store and releases it afterwards.
func (e *cliEnv) withStore(cmd *cobra.Command, fn func(ctx context.Context, s *portfolio.Store) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store, closeFn, err := e.open(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := closeFn(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to close store: %v\n", err)
		}
	}()
	return fn(ctx, store)
}

// confirmer prompts on the command's stdin unless --yes was given.
func (e *cliEnv) confirmer(cmd *cobra.Command) portfolio.Confirmer {
	if *e.assumeYes {
		return portfolio.Answer(true)
	}
	return newPrompt(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// Execute executes the root command
func Execute() {
	logging.NewWithWriter(os.Stderr)
	if err := NewRootCmd(openFromConfig).Execute(); err != nil {
		os.Exit(1)
	}
}
