package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"authgate/config"
	"authgate/internal/delivery"
	"authgate/internal/delivery/worker/handler"
	"authgate/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub" // registers the mem:// scheme
)

// defaultRetryDelay throttles redelivery of mail the sender could not hand over.
const defaultRetryDelay = 5 * time.Second

// subscriber pulls mail events from a gocloud subscription and delivers them
// in-process. It pairs with the gocloud publisher on mem:// topics.
type subscriber struct {
	url        string
	retryDelay time.Duration
	handler    *handler.PushHandler
	logger     *slog.Logger

	mu     sync.Mutex
	sub    *pubsub.Subscription
	cancel context.CancelFunc
	done   chan struct{}
}

// SubscriberParams holds dependencies for the subscription worker
type SubscriberParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewSubscriber creates the pull delivery. It idles when worker.subscriptionUrl is empty.
func NewSubscriber(params SubscriberParams) (delivery.Delivery, error) {
	s := newSubscriber(params.Cfg.Worker.SubscriptionURL, params.PushHandler, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newSubscriber(url string, pushHandler *handler.PushHandler, logger *slog.Logger) *subscriber {
	return &subscriber{
		url:        url,
		retryDelay: defaultRetryDelay,
		handler:    pushHandler,
		logger:     logger,
	}
}

// Serve opens the subscription and processes messages until stopped.
func (s *subscriber) Serve(ctx context.Context) error {
	if s.url == "" {
		s.logger.Info("Mail subscription not configured, pull delivery disabled")

		return nil
	}

	runCtx, err := s.open(ctx)
	if err != nil {
		return err
	}

	return s.run(runCtx)
}

func (s *subscriber) open(ctx context.Context) (context.Context, error) {
	sub, err := pubsub.OpenSubscription(ctx, s.url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open subscription %s", s.url)
	}

	runCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.sub = sub
	s.cancel = cancel
	s.done = make(chan struct{})
	s.mu.Unlock()

	s.logger.Info("Mail subscription opened", slog.String("url", s.url))

	return runCtx, nil
}

func (s *subscriber) run(ctx context.Context) error {
	defer close(s.done)

	for {
		msg, err := s.sub.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "receive mail event")
		}

		err = s.handler.HandleMessage(ctx, msg.Body, msg.Metadata)
		if err != nil && handler.IsRetryableError(err) && msg.Nackable() {
			select {
			case <-ctx.Done():
			case <-time.After(s.retryDelay):
			}
			msg.Nack()

			continue
		}

		// Delivered, or malformed and never deliverable.
		msg.Ack()
	}
}

// stop cancels the receive loop and releases the subscription
func (s *subscriber) stop(ctx context.Context) error {
	s.mu.Lock()
	sub, cancel, done := s.sub, s.cancel, s.done
	s.mu.Unlock()

	if sub == nil {
		return nil
	}

	s.logger.Info("Shutting down mail subscription")
	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancelShutdown()

	select {
	case <-done:
	case <-shutdownCtx.Done():
	}

	return errors.WithStack(sub.Shutdown(shutdownCtx))
}
