package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/gymdesk-backend/api/routes"
	"github.com/angelmondragon/gymdesk-backend/internal/attendance"
	"github.com/angelmondragon/gymdesk-backend/internal/members"
	"github.com/angelmondragon/gymdesk-backend/internal/payments"
	"github.com/angelmondragon/gymdesk-backend/internal/session"
	"github.com/angelmondragon/gymdesk-backend/pkg/config"
	"github.com/angelmondragon/gymdesk-backend/pkg/logger"
	"github.com/angelmondragon/gymdesk-backend/pkg/store"
)

const shutdownGrace = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "gymdesk"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "gymdesk",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	fileStore := store.New(cfg.Store.DataDir)
	sess, err := session.Load(fileStore)
	if err != nil {
		logg.Error(context.Background(), "failed to load data files", err)
		os.Exit(1)
	}

	memberSvc, err := members.NewService(sess)
	if err != nil {
		logg.Error(context.Background(), "failed to create members service", err)
		os.Exit(1)
	}
	paymentSvc, err := payments.NewService(sess)
	if err != nil {
		logg.Error(context.Background(), "failed to create payments service", err)
		os.Exit(1)
	}
	attendanceSvc, err := attendance.NewService(sess)
	if err != nil {
		logg.Error(context.Background(), "failed to create attendance service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"data_dir": cfg.Store.DataDir,
	})
	logg.Info(ctx, "starting gymdesk server")
	announceExpiring(ctx, logg, memberSvc, cfg.Alerts.ExpiryDays)

	registry := prometheus.NewRegistry()
	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, sess, memberSvc, paymentSvc, attendanceSvc, registry),
	}

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "gymdesk server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "error shutting down server", err)
		}
	}

	if err := sess.SaveAll(); err != nil {
		logg.Error(ctx, "failed to save data files on exit", err)
		os.Exit(1)
	}
	logg.Info(ctx, "data files saved")
}

// announceExpiring logs each member whose membership ends inside the
// configured alert window, mirroring the reminder the operator sees on
// the expiring report.
func announceExpiring(ctx context.Context, logg *logger.Logger, svc members.Service, days int) {
	expiring, err := svc.ExpiringWithin(days, time.Now())
	if err != nil {
		logg.Error(ctx, "failed to compute expiring memberships", err)
		return
	}
	for _, m := range expiring {
		logg.Warn(logg.WithFields(ctx, map[string]any{
			"member_id": m.ID,
			"name":      m.Name,
			"end_date":  m.EndDate,
		}), "membership expiring soon")
	}
}
