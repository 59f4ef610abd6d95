package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/folio-labs/portfolio/pkg/logger"
)

// SMTPConfig describes the relay connection.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPTransport sends envelopes through an SMTP relay. A fresh client is dialed
// per message because a go-mail client holds one connection.
type SMTPTransport struct {
	cfg SMTPConfig
}

func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &SMTPTransport{cfg: cfg}
}

func (t *SMTPTransport) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(t.cfg.Port),
		mail.WithTimeout(t.cfg.Timeout),
	}
	if t.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if t.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(t.cfg.Username),
			mail.WithPassword(t.cfg.Password),
		)
	}
	return opts
}

// Message converts an envelope into a go-mail message.
func Message(env Envelope) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(env.From); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(env.To); err != nil {
		return nil, fmt.Errorf("invalid to address: %w", err)
	}
	// The sender's address is never format-checked, so one that does not
	// parse only costs the Reply-To header, not the notification.
	if env.ReplyTo != "" {
		if err := m.ReplyTo(env.ReplyTo); err != nil {
			logger.L().Warn("reply-to dropped", zap.String("reply_to", env.ReplyTo), zap.Error(err))
		}
	}
	m.Subject(env.Subject)
	m.SetBodyString(mail.TypeTextHTML, env.HTML)
	if env.Text != "" {
		m.AddAlternativeString(mail.TypeTextPlain, env.Text)
	}
	return m, nil
}

func (t *SMTPTransport) Send(ctx context.Context, env Envelope) error {
	m, err := Message(env)
	if err != nil {
		return err
	}
	c, err := mail.NewClient(t.cfg.Host, t.clientOptions()...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("deliver via %s:%d: %w", t.cfg.Host, t.cfg.Port, err)
	}
	return nil
}
