package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/aurceive/d2-crafting-cost/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := app.Main(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
