package service

import "context"

// Notifier delivers out-of-band messages to an account's email address.
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
