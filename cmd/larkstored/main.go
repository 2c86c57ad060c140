package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/larkstore/larkstore/internal/logging"
	"github.com/larkstore/larkstore/internal/server"
	"github.com/larkstore/larkstore/internal/server/config"
)

func main() {
	// optional .env in the working directory; absence is fine
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx := context.Background()

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
