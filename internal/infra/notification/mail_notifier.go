package notification

import (
	"context"
	"log/slog"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type mailNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// MailNotifierParams holds dependencies for the mail notifier
type MailNotifierParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewMailNotifier creates a Notifier that hands mail to the worker through the event publisher.
func NewMailNotifier(params MailNotifierParams) service.Notifier {
	return &mailNotifier{
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// Send publishes one mail event. It returns once the transport accepted the
// event, not when the mail was delivered.
func (n *mailNotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	event := &service.MailEvent{
		RequestID: deliverycontext.RequestIDFrom(ctx),
		MessageID: uuid.New().String(),
		To:        to,
		Subject:   subject,
		HTMLBody:  htmlBody,
	}

	if err := n.publisher.PublishMailEvent(ctx, event); err != nil {
		return errors.Wrap(err, "publish mail event")
	}

	deliverycontext.LoggerFrom(ctx, n.logger).Info("Mail event queued",
		slog.String("message_id", event.MessageID),
	)

	return nil
}
