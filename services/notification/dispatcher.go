package notification

import (
	"context"
	"time"

	"doctorsportal/models"
	"doctorsportal/services/tasks"
	"doctorsportal/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Enqueuer is the part of *asynq.Client the queue dispatcher needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueDispatcher hands confirmations to the asynq worker through Redis.
type QueueDispatcher struct {
	client Enqueuer
	logger *zap.Logger
}

func NewQueueDispatcher(client Enqueuer, logger *zap.Logger) *QueueDispatcher {
	return &QueueDispatcher{client: client, logger: logger}
}

// Dispatch enqueues in the background; the caller never waits on Redis.
func (d *QueueDispatcher) Dispatch(ctx context.Context, booking models.Booking) {
	requestID := utils.RequestIDFrom(ctx)
	go func() {
		logger := d.logger.With(zap.String("requestId", requestID))

		task, opts, err := tasks.NewBookingNotificationTask(models.BookingNotificationPayload{
			Booking:   booking,
			RequestID: requestID,
		})
		if err != nil {
			logger.Error("Failed to build booking notification task", zap.Error(err))
			return
		}

		enqueueCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		info, err := d.client.EnqueueContext(enqueueCtx, task, opts...)
		if err != nil {
			logger.Error("Failed to enqueue booking notification",
				zap.String("patientEmail", booking.PatientEmail),
				zap.Error(err),
			)
			return
		}
		logger.Debug("Booking notification enqueued", zap.String("taskId", info.ID))
	}()
}

// InlineDispatcher sends the email from a goroutine in this process.
type InlineDispatcher struct {
	mailer  Mailer
	logger  *zap.Logger
	timeout time.Duration
}

func NewInlineDispatcher(mailer Mailer, logger *zap.Logger) *InlineDispatcher {
	return &InlineDispatcher{mailer: mailer, logger: logger, timeout: 30 * time.Second}
}

func (d *InlineDispatcher) Dispatch(ctx context.Context, booking models.Booking) {
	requestID := utils.RequestIDFrom(ctx)
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.mailer.SendBookingConfirmation(sendCtx, booking); err != nil {
			d.logger.Error("Failed to send booking confirmation",
				zap.String("requestId", requestID),
				zap.String("patientEmail", booking.PatientEmail),
				zap.Error(err),
			)
		}
	}()
}
