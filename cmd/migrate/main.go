// Command migrate applies the embedded SQL migrations to the database named
// by the regular application config (DATABASE_DSN).
//
//	migrate up       apply all pending migrations (default)
//	migrate down     roll back the latest migration
//	migrate status   list migrations and their state
//	migrate version  print the current database version
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/neolog/site-api/internal/adapter/postgres"
	"github.com/neolog/site-api/internal/app"
	"github.com/neolog/site-api/internal/config"
	"github.com/neolog/site-api/migrations"
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Manage the site API database schema",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          withProvider(up),
}

func init() {
	rootCmd.AddCommand(
		&cobra.Command{Use: "up", Short: "Apply all pending migrations", RunE: withProvider(up)},
		&cobra.Command{Use: "down", Short: "Roll back the latest migration", RunE: withProvider(down)},
		&cobra.Command{Use: "status", Short: "List migrations and their state", RunE: withProvider(status)},
		&cobra.Command{Use: "version", Short: "Print the current database version", RunE: withProvider(version)},
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type action func(ctx context.Context, p *goose.Provider, logger *slog.Logger) error

// withProvider opens the database and a goose provider over the embedded
// migrations for the duration of one command.
func withProvider(run action) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger := app.NewLogger(cfg.Log)
		ctx := cmd.Context()

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		db := stdlib.OpenDBFromPool(pool)
		defer func(db *sql.DB) { _ = db.Close() }(db)

		provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
		if err != nil {
			return fmt.Errorf("create migration provider: %w", err)
		}
		return run(ctx, provider, logger)
	}
}

func up(ctx context.Context, p *goose.Provider, logger *slog.Logger) error {
	results, err := p.Up(ctx)
	for _, r := range results {
		logger.Info("applied", slog.String("source", r.Source.Path), slog.Duration("duration", r.Duration))
	}
	return err
}

func down(ctx context.Context, p *goose.Provider, logger *slog.Logger) error {
	r, err := p.Down(ctx)
	if r != nil {
		logger.Info("rolled back", slog.String("source", r.Source.Path))
	}
	return err
}

func status(ctx context.Context, p *goose.Provider, logger *slog.Logger) error {
	statuses, err := p.Status(ctx)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		logger.Info("migration", slog.String("source", s.Source.Path), slog.String("state", string(s.State)))
	}
	return nil
}

func version(ctx context.Context, p *goose.Provider, logger *slog.Logger) error {
	v, err := p.GetDBVersion(ctx)
	if err != nil {
		return err
	}
	logger.Info("database version", slog.Int64("version", v))
	return nil
}
