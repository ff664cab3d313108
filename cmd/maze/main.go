// Command maze generates, solves and measures grid mazes.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/labyrinth/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := app.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
