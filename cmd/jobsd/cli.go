package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osse101/JobEconomy_Go/internal/bootstrap"
	"github.com/osse101/JobEconomy_Go/internal/catalog"
	"github.com/osse101/JobEconomy_Go/internal/config"
	"github.com/osse101/JobEconomy_Go/internal/database"
	"github.com/osse101/JobEconomy_Go/internal/database/sqlite"
	"github.com/osse101/JobEconomy_Go/internal/validation"
)

// BuildCLI assembles the jobsd command tree:
//
//	jobsd serve     run the HTTP engine
//	jobsd seed      write the default job catalog if none exists
//	jobsd migrate   apply store migrations for the configured driver
//	jobsd validate  check a job catalog file without starting the engine
func BuildCLI() *cobra.Command {
	var port int

	rootCmd := &cobra.Command{
		Use:           "jobsd",
		Short:         "Job reward economy engine",
		Long:          "jobsd pays players for in-game actions according to their job, levels them up and runs salary payouts.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 0, "listen port (overrides PORT)")

	rootCmd.AddCommand(buildServeCommand(&port))
	rootCmd.AddCommand(buildSeedCommand())
	rootCmd.AddCommand(buildMigrateCommand())
	rootCmd.AddCommand(buildValidateCommand())

	return rootCmd
}

func buildServeCommand(port *int) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the engine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if *port > 0 {
				cfg.Port = *port
			}

			logFile, err := bootstrap.SetupLogger(cfg)
			if err != nil {
				return err
			}
			defer logFile.Close()

			slog.Info(bootstrap.LogMsgStarting,
				"version", cfg.Version,
				"environment", cfg.Environment,
				"store_driver", cfg.StoreDriver,
				"port", cfg.Port)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := bootstrap.NewApp(ctx, cfg)
			if err != nil {
				slog.Error("Failed to start", "error", err)
				return err
			}
			return app.Run(ctx)
		},
	}
}

func buildSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the default job catalog when none exists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cat := catalog.New(catalog.NewFileStore(cfg.CatalogPath()))
			if err := cat.Load(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog %s: %d jobs, salary every %ds\n",
				cfg.CatalogPath(), len(cat.JobNames()), cat.SalaryDelay())
			return nil
		},
	}
}

func buildMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for the configured store driver",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return migrate(cmd.Context(), cfg, cmd)
		},
	}
}

func migrate(ctx context.Context, cfg *config.Config, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	switch cfg.StoreDriver {
	case database.DriverSQLite:
		// Open applies pending migrations
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "migrated %s\n", cfg.SQLitePath)
		return store.Close()

	case database.DriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := bootstrap.MigratePostgres(ctx, pool); err != nil {
			return err
		}
		fmt.Fprintf(out, "migrated postgres database %s\n", cfg.DBName)
		return nil

	default:
		fmt.Fprintf(out, "store driver %q has no migrations\n", cfg.StoreDriver)
		return nil
	}
}

func buildValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [catalog-file]",
		Short: "Check a job catalog file",
		Long:  "Checks the file structure against the catalog schema, then decodes it the way a reload would. Defaults to " + filepath.Join("config", catalog.DefaultFileName) + ".",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join("config", catalog.DefaultFileName)
			if len(args) == 1 {
				path = args[0]
			}
			return validateCatalog(cmd, path)
		},
	}
}

func validateCatalog(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := validation.NewSchemaValidator().ValidateYAML(data, validation.SchemaJobCatalog); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	snap, err := catalog.Decode(cmd.Context(), data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d jobs, salary every %ds\n",
		path, len(snap.JobNames()), snap.SalaryDelay())
	return nil
}
