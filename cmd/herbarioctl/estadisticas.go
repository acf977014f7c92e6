// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/herbario/internal/herbarium/estadisticas"
)

// EstadisticasCommand prints the dashboard summary as JSON.
func EstadisticasCommand(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "estadisticas",
		Short: "Print the collection summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, pool, err := openPool(cmd.Context(), log)
			if err != nil {
				return err
			}
			defer pool.Close()

			resumen, err := estadisticas.NewService(estadisticas.NewPostgresRepository(pool), log).Resumen(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), resumen)
		},
	}
}
