package notification

import (
	"context"
	"fmt"

	"doctorsportal/models"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridMailer sends confirmations through the SendGrid v3 mail API.
type SendGridMailer struct {
	apiKey    string
	from      *mail.Email
	logger    *zap.Logger
	newClient func(apiKey string) sendClient
}

func NewSendGridMailer(apiKey, fromAddress, fromName string, logger *zap.Logger) *SendGridMailer {
	return &SendGridMailer{
		apiKey: apiKey,
		from:   mail.NewEmail(fromName, fromAddress),
		logger: logger,
		// sendgrid.Client keeps the request body on the struct, so each send gets its own.
		newClient: func(key string) sendClient { return sendgrid.NewSendClient(key) },
	}
}

func (m *SendGridMailer) SendBookingConfirmation(ctx context.Context, booking models.Booking) error {
	rendered, err := RenderBookingEmail(booking)
	if err != nil {
		return err
	}

	to := mail.NewEmail(rendered.ToName, rendered.To)
	message := mail.NewSingleEmail(m.from, rendered.Subject, to, rendered.Text, rendered.HTML)

	resp, err := m.newClient(m.apiKey).SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("SendBookingConfirmation: sendgrid request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("SendBookingConfirmation: sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}

	m.logger.Info("Booking confirmation sent",
		zap.String("to", rendered.To),
		zap.String("treatment", booking.TreatmentName),
		zap.String("date", booking.Date),
	)
	return nil
}

// LogMailer only logs; used when no mail API key is configured.
type LogMailer struct {
	Logger *zap.Logger
}

func (m *LogMailer) SendBookingConfirmation(_ context.Context, booking models.Booking) error {
	rendered, err := RenderBookingEmail(booking)
	if err != nil {
		return err
	}
	m.Logger.Info("Mail delivery disabled, confirmation not sent",
		zap.String("to", rendered.To),
		zap.String("subject", rendered.Subject),
	)
	return nil
}
