package worker

import (
	"context"
	"fmt"

	"doctorsportal/services/notification"
	"doctorsportal/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NotificationWorker consumes booking notification tasks from Redis.
type NotificationWorker struct {
	srv    *asynq.Server
	mailer notification.Mailer
	logger *zap.Logger
}

func NewNotificationWorker(redisOpts asynq.RedisClientOpt, concurrency int, mailer notification.Mailer, logger *zap.Logger) *NotificationWorker {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("Booking notification task failed",
					zap.String("type", task.Type()),
					zap.Error(err),
				)
			}),
		},
	)
	return &NotificationWorker{srv: srv, mailer: mailer, logger: logger}
}

// Start runs the worker in background goroutines.
func (w *NotificationWorker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingNotification, w.handleBookingNotification)

	w.logger.Info("Starting notification worker")
	if err := w.srv.Start(mux); err != nil {
		return fmt.Errorf("failed to start notification worker: %w", err)
	}
	return nil
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *NotificationWorker) Shutdown() {
	w.srv.Shutdown()
}

func (w *NotificationWorker) handleBookingNotification(ctx context.Context, task *asynq.Task) error {
	p, err := tasks.ParseBookingNotificationPayload(task)
	if err != nil {
		// malformed payloads will never succeed
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	logger := w.logger.With(
		zap.String("requestId", p.RequestID),
		zap.String("patientEmail", p.Booking.PatientEmail),
	)
	if err := w.mailer.SendBookingConfirmation(ctx, p.Booking); err != nil {
		logger.Error("Failed to send booking confirmation", zap.Error(err))
		return err
	}
	logger.Debug("Booking confirmation delivered")
	return nil
}
