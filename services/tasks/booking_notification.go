package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"doctorsportal/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeBookingNotification = "booking:notify"

// NewBookingNotificationTask builds the queued confirmation email for a booking.
// Tasks are never retried: a failed email is logged by the worker and dropped.
func NewBookingNotificationTask(payload models.BookingNotificationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingNotification, b)
	opts := []asynq.Option{
		asynq.TaskID(uuid.NewString()),
		asynq.MaxRetry(0),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}

func ParseBookingNotificationPayload(task *asynq.Task) (models.BookingNotificationPayload, error) {
	var p models.BookingNotificationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid %s payload: %w", TypeBookingNotification, err)
	}
	return p, nil
}
