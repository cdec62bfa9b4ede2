package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/xviridev-art/Portofolio/internal/app/bootstrap"
)

func main() {
	configPath := flag.String("config", "configs/default.yaml", "path to the config file")
	flag.Parse()

	ctx := context.Background()

	runtime, err := bootstrap.NewRuntime(ctx, *configPath)
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}

	if err := runtime.RunAPI(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
