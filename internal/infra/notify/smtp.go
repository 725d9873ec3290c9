package notify

import (
	"bytes"
	"context"
	"time"

	"timewise/internal/pkg/config"
	"timewise/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

const smtpTimeout = 15 * time.Second

type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mm := mail.NewMsg()
	if err := mm.FromFormat(m.cfg.FromName, m.cfg.FromEmail); err != nil {
		return errs.Wrap(err, "invalid sender address")
	}
	if err := mm.AddToFormat(msg.ToName, msg.To); err != nil {
		return errs.Wrap(err, "invalid recipient address")
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		mm.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	for _, a := range msg.Attachments {
		mm.AttachReadSeeker(a.Name, bytes.NewReader(a.Data))
	}

	client, err := mail.NewClient(m.cfg.Host, m.clientOptions()...)
	if err != nil {
		return errs.Wrap(err, "failed to create smtp client")
	}
	if err := client.DialAndSendWithContext(ctx, mm); err != nil {
		return errs.Wrapf(err, "failed to send mail to %s", msg.To)
	}
	return nil
}

func (m *SMTPMailer) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(smtpTimeout),
	}
	if m.cfg.ImplicitTLS() {
		return append(opts, mail.WithSSL())
	}
	return append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
}
