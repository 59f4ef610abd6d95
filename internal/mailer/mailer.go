// Package mailer delivers contact form notifications to the site operator
// through an SMTP relay.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	appErr "github.com/folio-labs/portfolio/pkg/errors"
	"github.com/folio-labs/portfolio/pkg/logger"
)

// Envelope is one fully composed outbound message.
type Envelope struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Transport hands an envelope to a relay.
type Transport interface {
	Send(ctx context.Context, env Envelope) error
}

// Dispatcher sends exactly one notification per contact submission.
type Dispatcher struct {
	transport Transport
	from      string
	to        string
}

// NewDispatcher addresses every notification to `to`. An empty `from` reuses
// the operator address as sender.
func NewDispatcher(t Transport, from, to string) *Dispatcher {
	from = strings.TrimSpace(from)
	if from == "" {
		from = to
	}
	return &Dispatcher{transport: t, from: from, to: strings.TrimSpace(to)}
}

// SendContactEmail notifies the operator of a submission, with Reply-To set to
// the sender. Relay failures are returned as mail errors; nothing is retried.
func (d *Dispatcher) SendContactEmail(ctx context.Context, name, email, message string) error {
	env, err := ComposeContactEmail(d.from, d.to, name, email, message)
	if err != nil {
		return appErr.Mail(err, "compose contact email failed")
	}
	if err := d.transport.Send(ctx, env); err != nil {
		logger.L().Warn("contact email not delivered", zap.String("to", env.To), zap.Error(err))
		return appErr.Mail(err, "send contact email failed")
	}
	logger.L().Info("contact email sent", zap.String("to", env.To), zap.String("reply_to", env.ReplyTo))
	return nil
}

// ComposeContactEmail renders the operator notification for one submission.
func ComposeContactEmail(from, to, name, email, message string) (Envelope, error) {
	if to == "" {
		return Envelope{}, fmt.Errorf("no destination address configured")
	}
	html, err := renderHTML(name, email, message)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		From:    from,
		To:      to,
		ReplyTo: email,
		Subject: "Portfolio Contact: " + name,
		HTML:    html,
		Text:    renderText(name, email, message),
	}, nil
}
