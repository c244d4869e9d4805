package worker

import (
	"context"
	"time"

	"doctorchamber/config"
	bookingRepo "doctorchamber/database/repository/booking"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeReminderScan is the periodic task that scans for next-day bookings.
const TypeReminderScan = "reminder:scan"

// reminderScanCron fires every morning at 08:00 server time.
const reminderScanCron = "0 8 * * *"

// InitReminderWorker starts the async worker and its daily schedule in the
// background. Each scan logs a reminder line per booking dated tomorrow;
// there is no push channel in this system, ops tail the log.
func InitReminderWorker(bookings bookingRepo.BookingRepository, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 1,
		Queues:      map[string]int{"default": 1},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderScan, handleReminderScan(bookings, logger))

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("reminder worker stopped", zap.Error(err))
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(reminderScanCron, asynq.NewTask(TypeReminderScan, nil)); err != nil {
		logger.Error("failed to register reminder schedule", zap.Error(err))
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("reminder scheduler stopped", zap.Error(err))
		}
	}()
}

// handleReminderScan looks up bookings dated tomorrow and logs one reminder
// per booking.
func handleReminderScan(bookings bookingRepo.BookingRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

		upcoming, err := bookings.GetByDate(tomorrow)
		if err != nil {
			logger.Error("reminder scan failed", zap.String("date", tomorrow), zap.Error(err))
			return err
		}

		for _, b := range upcoming {
			logger.Info("appointment reminder",
				zap.String("email", b.Email),
				zap.String("treatment", b.Treatment),
				zap.String("date", b.Date),
				zap.String("time", b.Time),
				zap.Bool("paid", b.Paid))
		}

		logger.Info("reminder scan complete",
			zap.String("date", tomorrow),
			zap.Int("bookings", len(upcoming)))
		return nil
	}
}
