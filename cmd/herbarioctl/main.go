// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command herbarioctl is the operator tool for the Herbario backend.
//
// # Commands
//
//	herbarioctl migrate up
//	herbarioctl migrate down --steps 1
//	herbarioctl paquete recalcular <id>
//	herbarioctl estadisticas
//
// Settings come from the same environment variables as the API server.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/herbario/internal/platform/constants"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With(slog.String("app", constants.CLIName))

	if err := RootCommand(log).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
