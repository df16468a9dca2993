package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pageza/recipe-share/backend/config"
	"github.com/pageza/recipe-share/backend/internal/logger"
	"github.com/pageza/recipe-share/backend/internal/remote"
	"github.com/pageza/recipe-share/backend/internal/repository"
	"github.com/pageza/recipe-share/backend/internal/storage"
)

// storeOpener returns the configured snapshot store
type storeOpener func(ctx context.Context, log logger.Logger) (storage.Store, error)

func openConfiguredStore(ctx context.Context, log logger.Logger) (storage.Store, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return storage.Open(ctx, cfg, log)
}

func main() {
	log, err := logger.New(logger.Config{Level: "info", Development: true})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := newRootCmd(openConfiguredStore, log).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(open storeOpener, log logger.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "seed_recipes",
		Short: "Manage the persisted recipe snapshot",
		Long: `Reset, import or export the recipe snapshot of the configured store.

The store is selected with STORE_BACKEND and STORE_KEY, the same way the API server does.`,
		SilenceUsage: true,
	}

	// withRepo opens the store, builds a repository on it and closes the store afterwards
	withRepo := func(cmd *cobra.Command, fn func(*repository.RecipeRepository) error) error {
		store, err := open(cmd.Context(), log)
		if err != nil {
			return err
		}
		defer store.Close()
		return fn(repository.New(cmd.Context(), store, repository.WithLogger(log)))
	}

	var seedFile string
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the snapshot with the example recipes",
		Long: `Replace the snapshot with the built-in example recipes, or with the
recipes listed in a YAML seed file when --file is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := repository.DefaultRecipes()
			if seedFile != "" {
				var err error
				if seed, err = repository.LoadSeedFile(seedFile); err != nil {
					return err
				}
			}
			return withRepo(cmd, func(repo *repository.RecipeRepository) error {
				if err := repo.Replace(cmd.Context(), seed); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d recipes\n", len(seed))
				return nil
			})
		},
	}
	resetCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML seed file")

	var from string
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Copy recipes from a remote recipes API into the snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes := remote.NewClient(from, remote.WithLogger(log)).List(cmd.Context())
			if len(recipes) == 0 {
				return fmt.Errorf("no recipes received from %s", from)
			}
			return withRepo(cmd, func(repo *repository.RecipeRepository) error {
				if err := repo.Replace(cmd.Context(), recipes); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d recipes from %s\n", len(recipes), from)
				return nil
			})
		},
	}
	importCmd.Flags().StringVar(&from, "from", "", "base URL of the remote API, e.g. http://localhost:3001/api")
	_ = importCmd.MarkFlagRequired("from")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Print the snapshot as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepo(cmd, func(repo *repository.RecipeRepository) error {
				data, err := repo.Snapshot()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			})
		},
	}

	root.AddCommand(resetCmd, importCmd, exportCmd)
	return root
}
