package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"TollSentinel/internal/analyzer"
	"TollSentinel/internal/checker"
	"TollSentinel/internal/model"
	"TollSentinel/internal/notifier"
	"TollSentinel/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the account check on a cron schedule in daemon mode.
type Scheduler struct {
	Cron     *cron.Cron
	Checker  *checker.Checker
	Notifier *notifier.TelegramNotifier
	Recorder recorder.Recorder
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, ch *checker.Checker, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Checker:  ch,
		Notifier: tn,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// Register registers the periodic account check.
func (s *Scheduler) Register(checkCron string) error {
	if _, err := s.Cron.AddFunc(checkCron, s.checkTask); err != nil {
		return fmt.Errorf("register check task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunCheckNow executes the check immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunCheckNow() {
	s.checkTask()
}

func (s *Scheduler) checkTask() {
	now := time.Now()
	period := model.MonthPeriod{Month: int(now.Month()), Year: now.Year()}
	log.Printf("[INFO] running scheduled check for %s", period)

	report, err := s.Checker.Run(period, nil)
	if err != nil {
		log.Printf("[ERROR] scheduled check: %v", err)
		s.trySend(notifier.FormatError(period, err))
		s.record(&recorder.RunRecord{
			Period:       period.String(),
			ExitStatus:   analyzer.StatusError,
			ErrorMessage: err.Error(),
		})
		return
	}

	s.trySend(notifier.FormatReport(report))
	s.record(runRecordFrom(report))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/check":
		s.checkTask()
		return ""
	default:
		return "Available commands:\n• /check - run the toll check now"
	}
}

func runRecordFrom(r *model.Report) *recorder.RunRecord {
	rec := &recorder.RunRecord{
		Period:            r.Period.String(),
		TotalCount:        r.Tally.TotalCount,
		EligibleCount:     r.Tally.EligibleCount,
		EligibleAmountSum: r.Tally.EligibleAmountSum,
		ActualTier:        r.ActualTier,
		ExitStatus:        analyzer.ExitStatus(r),
	}
	if r.Estimate != nil {
		rec.ProjectedTotal = r.Estimate.ProjectedTotal
		rec.ProjectedTier = r.ProjectedTier
	}
	return rec
}

func (s *Scheduler) record(rec *recorder.RunRecord) {
	if err := s.Recorder.RecordRun(rec); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
