package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"TollSentinel/internal/analyzer"
	"TollSentinel/internal/checker"
	"TollSentinel/internal/config"
	"TollSentinel/internal/model"
	"TollSentinel/internal/notifier"
	"TollSentinel/internal/portal"
	"TollSentinel/internal/recorder"
	"TollSentinel/internal/scheduler"
	"TollSentinel/internal/session"
	"TollSentinel/internal/ui"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TollSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Wire the pipeline
	store := session.NewStore(cfg.Session.File)
	auth := portal.NewAuthClient(cfg.Portal.BaseURL, cfg.Portal.LoginPath, cfg.Proxy, store)
	fetcher := portal.NewFeedFetcher(cfg.Portal.BaseURL, cfg.Portal.FeedPath, auth.Client)
	ch := checker.NewChecker(auth, fetcher, store, cfg.Portal.Username, cfg.Portal.Password)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	if os.Getenv("RUN_DAEMON") == "true" {
		runDaemon(cfg, ch, rec)
		return
	}
	os.Exit(runOnce(ch, rec))
}

// runOnce executes the pipeline one time and returns the exit status
// consumed by the calling automation: verify match 0, Gold 1, Bronze 2,
// None 3, verify mismatch 4; fatal errors also return 2.
func runOnce(ch *checker.Checker, rec recorder.Recorder) int {
	now := time.Now()
	period := model.MonthPeriod{Month: int(now.Month()), Year: now.Year()}
	if v := os.Getenv("TOLL_MONTH"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			period.Month = m
		}
	}
	if v := os.Getenv("TOLL_YEAR"); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			period.Year = y
		}
	}

	var statedDiscount *float64
	if v := os.Getenv("VERIFY_AMOUNT"); v != "" {
		if amt, err := strconv.ParseFloat(v, 64); err == nil {
			statedDiscount = &amt
		} else {
			log.Printf("[WARN] ignoring unparsable VERIFY_AMOUNT %q", v)
		}
	}

	report, err := ch.Run(period, statedDiscount)
	if err != nil {
		ui.PrintError(err)
		if rerr := rec.RecordRun(&recorder.RunRecord{
			Period:       period.String(),
			ExitStatus:   analyzer.StatusError,
			ErrorMessage: err.Error(),
		}); rerr != nil {
			log.Printf("[ERROR] record run: %v", rerr)
		}
		return analyzer.StatusError
	}

	ui.PrintReport(report)
	status := analyzer.ExitStatus(report)
	runRec := &recorder.RunRecord{
		Period:            report.Period.String(),
		TotalCount:        report.Tally.TotalCount,
		EligibleCount:     report.Tally.EligibleCount,
		EligibleAmountSum: report.Tally.EligibleAmountSum,
		ActualTier:        report.ActualTier,
		ExitStatus:        status,
	}
	if report.Estimate != nil {
		runRec.ProjectedTotal = report.Estimate.ProjectedTotal
		runRec.ProjectedTier = report.ProjectedTier
	}
	if err := rec.RecordRun(runRec); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	return status
}

func runDaemon(cfg *config.Config, ch *checker.Checker, rec recorder.Recorder) {
	if err := cfg.ValidateDaemon(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, ch, tn, rec)
	if err := sched.Register(cfg.Schedule.CheckCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing check now")
		go sched.RunCheckNow()
	}

	log.Println("[INFO] TollSentinel is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TollSentinel stopped")
}
