package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/dispatch/app"
)

var (
	buildVersion = "dev"
	buildCommit  = "none"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("dispatch %s (%s)", buildVersion, buildCommit)

	application, err := app.New()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("server error: %v", err)
	}
}
