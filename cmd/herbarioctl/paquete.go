// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/taibuivan/herbario/internal/platform/constants"
	"github.com/taibuivan/herbario/internal/platform/metrics"
	redisstore "github.com/taibuivan/herbario/internal/platform/redis"
	"github.com/taibuivan/herbario/internal/reception/paquete"
)

// discardPublisher drops events when no Redis is configured.
type discardPublisher struct{}

func (discardPublisher) PublishEstadoCambiado(context.Context, paquete.EstadoCambiado) error {
	return nil
}

// PaqueteCommand creates the paquete parent command.
func PaqueteCommand(log *slog.Logger) *cobra.Command {
	paqueteCmd := &cobra.Command{
		Use:   "paquete",
		Short: "Package maintenance",
	}

	var timeout time.Duration
	recalcularCmd := &cobra.Command{
		Use:   "recalcular <id>",
		Short: "Re-derive one package's state from its samples' classifications",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paqueteID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || paqueteID <= 0 {
				return fmt.Errorf("invalid package id %q", args[0])
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			cfg, pool, err := openPool(ctx, log)
			if err != nil {
				return err
			}
			defer pool.Close()

			var publisher paquete.Publisher = discardPublisher{}
			if cfg.RedisURL != "" {
				rdb, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
				if err != nil {
					return err
				}
				defer rdb.Close()
				publisher = paquete.NewRedisPublisher(rdb, constants.RedisChannelPackageState)
			}

			collector, err := metrics.New(prometheus.NewRegistry())
			if err != nil {
				return err
			}

			repository := paquete.NewPostgresRepository(pool)
			recomputer := paquete.NewRecomputer(repository, publisher, collector, log, timeout)
			resultado, err := paquete.NewService(repository, recomputer, log).Recalcular(ctx, paqueteID)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), resultado)
		},
	}
	recalcularCmd.Flags().DurationVar(&timeout, "timeout", constants.RecomputeTimeout, "Upper bound for the whole run")

	paqueteCmd.AddCommand(recalcularCmd)
	return paqueteCmd
}
