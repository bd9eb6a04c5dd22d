package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/xiam/jack-analyzer/cmd/jackanalyzer/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
