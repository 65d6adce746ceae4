package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if err := LoadEnv(".env"); err != nil {
		Logger.Fatalf("failed to load .env: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	system := NewSystem(LoadConfig())
	if err := system.Run(ctx, os.Stdout); err != nil {
		Logger.Fatalf("query failed: %v", err)
	}
}
