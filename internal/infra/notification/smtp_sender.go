package notification

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"authgate/config"
	"authgate/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const smtpDialTimeout = 10 * time.Second

type smtpSender struct {
	from     string
	addr     string
	host     string
	username string
	password string
	logger   *slog.Logger
}

// MailSenderParams holds dependencies for the mail sender
type MailSenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailSender creates the MailSender used by the workers. Without an SMTP
// host mail is written to the log instead.
func NewMailSender(params MailSenderParams) (service.MailSender, error) {
	mailCfg := params.Config.Mail
	if mailCfg == nil || mailCfg.SMTP.Host == "" {
		params.Logger.Info("SMTP not configured, mail is only logged")

		return &logMailSender{logger: params.Logger}, nil
	}

	sender, err := newSMTPSender(mailCfg, params.Logger)
	if err != nil {
		return nil, err
	}

	return sender, nil
}

func newSMTPSender(mailCfg *config.MailConfig, logger *slog.Logger) (*smtpSender, error) {
	if mailCfg.SMTP.Host == "" {
		return nil, errors.New("mail.smtp.host is required")
	}
	if mailCfg.From == "" {
		return nil, errors.New("mail.from is required")
	}

	port := mailCfg.SMTP.Port
	if port == 0 {
		port = 587
	}

	return &smtpSender{
		from:     mailCfg.From,
		addr:     net.JoinHostPort(mailCfg.SMTP.Host, strconv.Itoa(port)),
		host:     mailCfg.SMTP.Host,
		username: mailCfg.SMTP.Username,
		password: mailCfg.SMTP.Password,
		logger:   logger,
	}, nil
}

// SendMail delivers one HTML mail. STARTTLS is used whenever the server offers it.
func (s *smtpSender) SendMail(ctx context.Context, event *service.MailEvent) error {
	msg, err := buildMessage(s.from, event)
	if err != nil {
		return err
	}

	dialer := &net.Dialer{Timeout: smtpDialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return errors.Wrapf(err, "dial %s", s.addr)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()

		return errors.WithStack(err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}); err != nil {
			return errors.Wrap(err, "starttls")
		}
	}

	if s.username != "" {
		if err := client.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
			return errors.Wrap(err, "smtp auth")
		}
	}

	if err := client.Mail(s.from); err != nil {
		return errors.WithStack(err)
	}
	if err := client.Rcpt(event.To); err != nil {
		return errors.WithStack(err)
	}

	w, err := client.Data()
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := w.Write(msg); err != nil {
		return errors.WithStack(err)
	}
	if err := w.Close(); err != nil {
		return errors.WithStack(err)
	}

	s.logger.Info("Mail delivered",
		slog.String("message_id", event.MessageID),
	)

	return errors.WithStack(client.Quit())
}

// buildMessage renders the RFC 5322 message. Header values containing line
// breaks are rejected.
func buildMessage(from string, event *service.MailEvent) ([]byte, error) {
	for name, value := range map[string]string{"from": from, "to": event.To, "subject": event.Subject} {
		if strings.ContainsAny(value, "\r\n") {
			return nil, errors.Errorf("invalid %s header", name)
		}
	}
	if event.To == "" {
		return nil, errors.New("recipient is required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", event.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", event.Subject)
	if event.MessageID != "" {
		fmt.Fprintf(&b, "X-Message-Id: %s\r\n", event.MessageID)
	}
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(event.HTMLBody)

	return []byte(b.String()), nil
}

// logMailSender writes mail to the log. Development only.
type logMailSender struct {
	logger *slog.Logger
}

func (s *logMailSender) SendMail(ctx context.Context, event *service.MailEvent) error {
	s.logger.Debug("[LogMail] SMTP disabled, logging mail",
		slog.String("message_id", event.MessageID),
		slog.String("to", event.To),
		slog.String("subject", event.Subject),
		slog.String("html_body", event.HTMLBody),
	)

	return nil
}
