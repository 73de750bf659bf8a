package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/raahsetu/raah-setu/cliparse"
	"github.com/raahsetu/raah-setu/db"
	"github.com/raahsetu/raah-setu/logging"
	"github.com/raahsetu/raah-setu/router"
)

const shutdownGrace = 10 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(2)
	}

	logger, err := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		slog.Error("Error configuring logger", "error", err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create database and tables, then connect
	pool, err := db.Open(ctx, cfg)
	if err != nil {
		slog.Error("database setup failed", "dialect", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.InitSchemaOnly {
		slog.Info("schema initialized, exiting", "dialect", cfg.DatabaseType, "database", cfg.DBName)
		return
	}

	server := &http.Server{
		Handler:           router.NewRouter(pool, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "addr", server.Addr, "error", err)
		os.Exit(1)
	}

	slog.Info("Listening", "port", cfg.Port, "dialect", cfg.DatabaseType)
	if err := serve(ctx, server, ln, shutdownGrace); err != nil {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// serve runs server on ln until ctx is cancelled. It returns only after
// in-flight requests have drained or grace has run out, so the caller
// may release what the handlers use.
func serve(ctx context.Context, server *http.Server, ln net.Listener, grace time.Duration) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		// Wait for Ctrl-C or SIGTERM
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	err := server.Serve(ln)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}
