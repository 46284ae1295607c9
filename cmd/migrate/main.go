package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/angelmondragon/lojavirtual-backend/pkg/config"
	"github.com/angelmondragon/lojavirtual-backend/pkg/db"
	"github.com/angelmondragon/lojavirtual-backend/pkg/logger"
	"github.com/angelmondragon/lojavirtual-backend/pkg/migrate"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the loja virtual database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dir, "dir", migrate.DefaultDir, "goose migrations directory")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDB(cmd.Context(), "up", dir, func(ctx context.Context, client *db.Client) error {
					if client.Dialect() == db.DialectSQLite {
						return migrate.ApplySQLiteSchema(ctx, client.DB())
					}
					return runGoose(ctx, client, dir, "up")
				})
			},
		},
		gooseCmd("down", "Roll back the most recent migration", &dir),
		gooseCmd("status", "Print the status of every migration", &dir),
		&cobra.Command{
			Use:   "version <YYYYMMDDHHMMSS>",
			Short: "Migrate up or down to the given version",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cmd.Context(), "version", dir, func(ctx context.Context, client *db.Client) error {
					sqlDB, err := client.DB().DB()
					if err != nil {
						return err
					}
					return migrate.MigrateToVersion(ctx, sqlDB, dir, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "create <name>",
			Short: "Scaffold a new SQL migration",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := migrate.CreateSQLMigration(dir, args[0])
				if err != nil {
					return fmt.Errorf("create migration: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "created migration:", path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Check migration files for goose annotations and naming",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := migrate.ValidateDir(dir); err != nil {
					return fmt.Errorf("migration validation failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migration validation passed")
				return nil
			},
		},
	)
	return root
}

func gooseCmd(command, short string, dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   command,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), command, *dir, func(ctx context.Context, client *db.Client) error {
				if client.Dialect() == db.DialectSQLite {
					return fmt.Errorf("%s is only supported on postgres", command)
				}
				return runGoose(ctx, client, *dir, command)
			})
		},
	}
}

func runGoose(ctx context.Context, client *db.Client, dir, command string) error {
	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}
	return migrate.Run(ctx, sqlDB, dir, command)
}

func withDB(ctx context.Context, command, dir string, fn func(context.Context, *db.Client) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logg := logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "cmd": command, "dir": dir})

	client, err := db.Open(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "resource not working: database", err)
		return err
	}
	defer client.Close()

	logg.Info(ctx, "migrate ready")
	if err := fn(ctx, client); err != nil {
		logg.Error(ctx, "migrate failed", err)
		return err
	}
	return nil
}
