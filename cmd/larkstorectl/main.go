package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/larkstore/larkstore/internal/ctl"
	"github.com/larkstore/larkstore/internal/logging"
)

func main() {
	// CLI output belongs to the commands; logs stay out of the way unless
	// something is actually wrong.
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := logging.NewSlogLogger(slog.New(handler))

	app := ctl.NewApp(logger)
	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
