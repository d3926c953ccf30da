package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/NanoShadeStudios/Machine-of-Worlds/internal/config"
	"github.com/NanoShadeStudios/Machine-of-Worlds/internal/server"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	serverLog := log.New(os.Stdout, "[Server] ", 0)
	browserLog := log.New(os.Stdout, "[Browser] ", 0)

	assetRoot, err := filepath.Abs(cfg.AssetRoot)
	if err != nil {
		serverLog.Fatalf("Cannot resolve asset root: %v", err)
	}

	srv := server.New(cfg.Addr(), assetRoot, serverLog, browserLog)

	serverLog.Printf("Starting HTTP server on %s:%d", cfg.Host, cfg.Port)
	serverLog.Printf("Serving files from: %s", assetRoot)
	serverLog.Printf("Game available at: http://%s:%d", cfg.Host, cfg.Port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()
	serverLog.Println("Server ready and listening...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		// Start only returns early on a bind failure; nothing to recover.
		serverLog.Fatalf("Server error: %v", err)
	case sig := <-quit:
		serverLog.Printf("Received signal: %v. Shutting down...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		serverLog.Printf("Server shutdown error: %v", err)
	}

	serverLog.Println("Server exited gracefully.")
}
