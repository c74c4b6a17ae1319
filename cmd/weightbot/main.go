package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"weightbot/internal/adapter/chart"
	"weightbot/internal/adapter/sqlite"
	"weightbot/internal/adapter/supabase"
	"weightbot/internal/adapter/telegram"
	"weightbot/internal/app"
	"weightbot/internal/backup"
	"weightbot/internal/config"
	"weightbot/internal/domain"
	"weightbot/internal/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	var remote domain.ObjectStore
	if cfg.BackupsConfigured() {
		remote = supabase.New(cfg.SupabaseURL, cfg.SupabaseKey, cfg.BackupBucket)
	} else {
		sugar.Warn("supabase not configured, backups disabled")
	}
	backups := backup.New(remote, cfg.DBPath, sugar)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Restore before the store is opened; this is the only automatic
	// restore point.
	if restored, err := backups.RestoreIfMissing(ctx); err != nil {
		sugar.Warnw("restore from backup failed", "error", err)
	} else if restored {
		sugar.Infow("store restored from latest backup", "path", cfg.DBPath)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		sugar.Fatalw("open store", "path", cfg.DBPath, "error", err)
	}
	defer func() { _ = db.Close() }()

	weightSvc := app.NewWeightService(db, backups)
	reportSvc := app.NewReportService(db)
	tracker := app.NewCorrelationTracker()
	renderer := chart.New()

	bot, err := telegram.New(cfg.TelegramToken, weightSvc, reportSvc, tracker, db, renderer,
		cfg.Timezone, cfg.TimezoneName, sugar)
	if err != nil {
		sugar.Fatalw("telegram setup", "error", err)
	}

	notify := app.NewNotifyService(db, db, reportSvc, tracker, bot, renderer, cfg.Timezone, sugar)
	sched := schedule.New(notify, sugar)
	bot.SetScheduler(sched)
	sched.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return bot.Run(gctx) })
	if err := g.Wait(); err != nil {
		sugar.Errorw("bot stopped", "error", err)
	}

	sched.Stop()
	backups.Wait()
	sugar.Info("shutdown complete")
}
