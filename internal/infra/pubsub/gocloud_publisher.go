package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"authgate/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub" // registers the mem:// scheme
)

// goCloudPublisher implements EventPublisher on a portable gocloud topic.
type goCloudPublisher struct {
	topic  *pubsub.Topic
	logger *slog.Logger
}

// NewGoCloudPublisher opens the topic named by a gocloud URL such as mem://mail.
func NewGoCloudPublisher(ctx context.Context, topicURL string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := pubsub.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", topicURL)
	}

	return &goCloudPublisher{
		topic:  topic,
		logger: logger,
	}, nil
}

// PublishMailEvent sends the JSON encoded event with tracing metadata.
func (p *goCloudPublisher) PublishMailEvent(ctx context.Context, event *service.MailEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	err = p.topic.Send(ctx, &pubsub.Message{
		Body:     data,
		Metadata: eventAttributes(event),
	})
	if err != nil {
		return errors.Wrap(err, "failed to send mail event")
	}

	p.logger.Debug("[GoCloudPubSub] Mail event published",
		slog.String("message_id", event.MessageID),
	)

	return nil
}

// Close flushes pending sends and releases the topic.
func (p *goCloudPublisher) Close() error {
	return errors.WithStack(p.topic.Shutdown(context.Background()))
}
