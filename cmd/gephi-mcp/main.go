// Package main is the entry point for the Gephi MCP bridge.
// It wires configuration, logging, the transport client, and the MCP server
// together and serves until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/graphbridge/gephi-mcp/internal/bridge"
	"github.com/graphbridge/gephi-mcp/internal/catalog"
	"github.com/graphbridge/gephi-mcp/internal/config"
	"github.com/graphbridge/gephi-mcp/internal/gephi"
	"github.com/graphbridge/gephi-mcp/internal/observability"
)

// Build-time variables set via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=abc1234"
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 1
	}

	logger, err := observability.NewLogger(cfg.Observability)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	tracingShutdown, err := observability.InitTracing(ctx, cfg.Observability.Tracing, bridge.ServerName, version)
	if err != nil {
		logger.Error("tracing initialization failed", zap.Error(err))
		return 1
	}

	client := gephi.NewClient(cfg.Gephi, logger)
	srv := bridge.NewServer(client, logger, version)

	logger.Info("bridge started",
		zap.String("version", version),
		zap.String("commit", commit),
		zap.String("transport", cfg.Server.Transport),
		zap.String("gephi_base_url", cfg.Gephi.BaseURL),
		zap.Duration("gephi_timeout", cfg.Gephi.Timeout),
		zap.Int("operations", len(catalog.Operations())),
	)

	exitCode := 0
	switch cfg.Server.Transport {
	case config.TransportHTTP:
		exitCode = serveHTTP(ctx, srv, cfg.Server.ListenAddr, logger)
	default:
		exitCode = serveStdio(ctx, srv, logger)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := tracingShutdown(shutdownCtx); err != nil {
		logger.Error("tracing shutdown error", zap.Error(err))
	}

	logger.Info("shutdown complete")
	return exitCode
}

// serveStdio runs the MCP server over stdin/stdout until the stream closes
// or a shutdown signal arrives.
func serveStdio(ctx context.Context, srv *server.MCPServer, logger *zap.Logger) int {
	stdio := server.NewStdioServer(srv)
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		logger.Error("stdio serve error", zap.Error(err))
		return 1
	}
	return 0
}

// serveHTTP runs the streamable HTTP transport and drains it on shutdown.
func serveHTTP(ctx context.Context, srv *server.MCPServer, addr string, logger *zap.Logger) int {
	httpSrv := server.NewStreamableHTTPServer(srv)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.Start(addr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown initiated")
	case err := <-errCh:
		if err != nil {
			logger.Error("http serve error", zap.Error(err))
			return 1
		}
		return 0
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", zap.Error(err))
	}
	return 0
}
