// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/taibuivan/herbario/internal/platform/config"
	"github.com/taibuivan/herbario/internal/platform/constants"
	pgstore "github.com/taibuivan/herbario/internal/platform/postgres"
)

// RootCommand creates the herbarioctl command tree.
func RootCommand(log *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "herbarioctl",
		Short:   "Herbario operator tool",
		Version: constants.AppVersion,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		MigrateCommand(log),
		PaqueteCommand(log),
		EstadisticasCommand(log),
	)

	return rootCmd
}

// openPool loads the CLI settings and connects to PostgreSQL.
func openPool(ctx context.Context, log *slog.Logger) (*config.CLIConfig, *pgxpool.Pool, error) {
	cfg, err := config.LoadCLI()
	if err != nil {
		return nil, nil, err
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, nil, err
	}

	return cfg, pool, nil
}

// printJSON writes value as indented JSON followed by a newline.
func printJSON(writer io.Writer, value any) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
