package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/shopdash-lab/shopdash/internal/core/config"
	"github.com/shopdash-lab/shopdash/internal/core/storage/postgres"
	"github.com/shopdash-lab/shopdash/internal/dashboard"
	"github.com/shopdash-lab/shopdash/internal/ingestion"
	"github.com/shopdash-lab/shopdash/internal/migrations"
	"github.com/shopdash-lab/shopdash/internal/refresh"
	"github.com/shopdash-lab/shopdash/internal/report"
	"github.com/shopdash-lab/shopdash/internal/server"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "shopdash.yaml", "Path to configuration file")
	envFile := flag.String("env-file", ".env", "Optional dotenv file loaded before the environment")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath, *envFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.Server.Mode == "debug" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	loc, err := cfg.Analytics.Location()
	if err != nil {
		slog.Error("Invalid analytics timezone", "error", err)
		os.Exit(1)
	}
	salesG, ordersG := cfg.Analytics.DefaultGranularities()
	slog.Info("Loaded config",
		"timezone", loc.String(),
		"sales_granularity", salesG,
		"orders_granularity", ordersG,
		"refresh_enabled", cfg.Refresh.Enabled,
		"refresh_interval", cfg.Refresh.IntervalDuration())

	// 2. Connect to PostgreSQL
	db, err := postgres.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// 2.1. Run Database Migrations before the adapter validates the schema
	if err := migrations.Run(db, cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		db.Close()
		os.Exit(1)
	}

	dbAdapter, err := postgres.NewAdapter(db)
	if err != nil {
		slog.Error("Failed to initialize database adapter", "error", err)
		db.Close()
		os.Exit(1)
	}
	defer dbAdapter.Close()

	// 3. Dashboard: series computation behind the generation-guarded board
	dashboardSvc := dashboard.NewService(dbAdapter, dbAdapter, loc, cfg.Analytics.FetchTimeoutDuration())
	board := dashboard.NewBoard(dashboardSvc, dashboard.Selection{Sales: salesG, Orders: ordersG})

	// 4. Sales report and point-of-sale checkout
	reportSvc := report.NewService(dbAdapter, loc)
	checkoutSvc := ingestion.NewService(dbAdapter, cfg.Server.MaxBodySizeMB)

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), dbAdapter, cfg.Server.Mode,
		board, reportSvc, checkoutSvc)

	// 6. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Refresh.Enabled {
		scheduler := refresh.NewScheduler(cfg.Refresh.IntervalDuration(), board)
		g.Go(func() error { return scheduler.Start(gctx) })
	} else {
		slog.Info("Dashboard refresher disabled by config")
	}

	// HTTP server blocks until gctx is cancelled.
	g.Go(func() error { return srv.Run(gctx) })

	if err := g.Wait(); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
