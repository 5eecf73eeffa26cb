package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ospolov/fieldsync/internal/client/api"
	"github.com/ospolov/fieldsync/internal/client/cli"
	"github.com/ospolov/fieldsync/internal/client/netmon"
	"github.com/ospolov/fieldsync/internal/client/notify"
	"github.com/ospolov/fieldsync/internal/client/offline"
	"github.com/ospolov/fieldsync/internal/client/session"
	"github.com/ospolov/fieldsync/internal/client/storage/boltdb"
	syncengine "github.com/ospolov/fieldsync/internal/client/sync"
	"github.com/ospolov/fieldsync/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to YAML config")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.Server.URL = *serverURL
	}
	if *dbPath != "" {
		cfg.Storage.Path = *dbPath
	}

	logger := newLogger(cfg.Logging.Level)

	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.Server.URL, cfg.RequestTimeout())
	sessions := session.NewStore(boltStorage)
	bus := notify.NewBus()

	monitor := netmon.NewMonitor(apiClient, logger, netmon.Options{
		ProbeInterval: cfg.ProbeInterval(),
		Stabilization: cfg.Stabilization(),
	})

	var metrics *syncengine.Metrics
	if cfg.Monitoring.Enabled {
		metrics = syncengine.NewMetrics(prometheus.DefaultRegisterer)
	}

	engine := syncengine.NewEngine(apiClient, boltStorage, boltStorage, sessions, bus, metrics, logger, syncengine.Options{
		Online:         monitor.Online,
		PacingInterval: cfg.PacingInterval(),
		MaxAttempts:    cfg.Sync.MaxAttempts,
	})

	svc := offline.NewService(boltStorage, boltStorage, apiClient, sessions, engine, logger)

	switch command {
	case "store":
		err = cli.RunStore(ctx, args[1:], svc, os.Stdout)
	case "get":
		err = cli.RunGet(ctx, args[1:], svc, os.Stdout)
	case "list":
		err = cli.RunList(ctx, svc, os.Stdout)
	case "attach":
		err = cli.RunAttach(ctx, args[1:], svc, os.Stdout)
	case "delete":
		err = cli.RunDelete(ctx, args[1:], svc, os.Stdout)
	case "status":
		err = cli.RunStatus(ctx, svc, monitor, os.Stdout)
	case "sync":
		err = cli.RunSync(ctx, engine, os.Stdout)
	case "run":
		err = runResident(ctx, cfg, logger, bus, monitor, engine)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runResident keeps the client alive: watches connectivity, drains on
// restoration and on start, prints status updates, serves /metrics
func runResident(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	bus *notify.Bus,
	monitor *netmon.Monitor,
	engine *syncengine.Engine,
) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus.Subscribe(func(status string, progress float64) {
		if progress >= 0 {
			fmt.Printf("[sync] %s (%.0f%%)\n", status, progress*100)
		} else {
			fmt.Printf("[sync] %s\n", status)
		}
	})

	monitor.OnRestored(func() {
		engine.Kick(ctx)
	})

	if cfg.Monitoring.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			logger.Info("metrics listening", "addr", cfg.Monitoring.ListenAddr)
			if err := http.ListenAndServe(cfg.Monitoring.ListenAddr, mux); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	go monitor.Run(ctx)

	// Pick up anything queued before this start
	engine.Kick(ctx)

	logger.Info("fieldsync client running", "server", cfg.Server.URL)
	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func printVersion() {
	fmt.Printf("fieldsync client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
