package workers

import (
	"context"

	"github.com/robfig/cron/v3"

	"legalassist_backend/internal/logger"
	"legalassist_backend/internal/services"
)

// Daily at 07:00 server time.
const reminderSchedule = "0 7 * * *"

// ReminderWorker runs the scheduled court-appearance reminder sweep.
type ReminderWorker struct {
	notifications *services.NotificationService
	cron          *cron.Cron
}

func NewReminderWorker(notifications *services.NotificationService) *ReminderWorker {
	return &ReminderWorker{
		notifications: notifications,
		cron:          cron.New(),
	}
}

// Start schedules the sweep and runs it until the context is cancelled.
func (w *ReminderWorker) Start(ctx context.Context) error {
	_, err := w.cron.AddFunc(reminderSchedule, func() {
		sweep := w.notifications.SendScheduledReminders(ctx)
		logger.CtxInfo(ctx, "scheduled reminder sweep",
			"total", sweep.TotalCount,
			"succeeded", sweep.SuccessCount,
			"failed", sweep.FailureCount)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	logger.Info("reminder worker started", "schedule", reminderSchedule)

	go func() {
		<-ctx.Done()
		w.Stop()
	}()
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (w *ReminderWorker) Stop() {
	stopCtx := w.cron.Stop()
	<-stopCtx.Done()
	logger.Info("reminder worker stopped")
}
