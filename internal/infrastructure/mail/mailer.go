// Package mail sends exported reports over SMTP.
package mail

import (
	"context"
	"io"

	"sklad/internal/config"
	"sklad/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

var ErrNotConfigured = errors.New("smtp is not configured (set SKLAD_SMTP_HOST)")

// Mailer builds a message per call and hands it to send, which dials the
// configured server unless replaced.
type Mailer struct {
	from string
	send func(m ...*gomail.Message) error
}

var _ interfaces.IMailer = (*Mailer)(nil)

func NewMailer(cfg config.SMTP) *Mailer {
	m := &Mailer{from: cfg.From}
	if m.from == "" {
		m.from = cfg.User
	}
	if !cfg.Enabled() {
		m.send = func(...*gomail.Message) error { return ErrNotConfigured }
		return m
	}
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	m.send = dialer.DialAndSend
	return m
}

func (m *Mailer) Send(ctx context.Context, to []string, subject, body string, attachments []interfaces.Attachment) error {
	msg := m.Message(to, subject, body, attachments)
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.send(msg); err != nil {
		return errors.Wrapf(err, "send %q", subject)
	}
	return nil
}

// Message renders the mail without sending it.
func (m *Mailer) Message(to []string, subject, body string, attachments []interfaces.Attachment) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	for _, a := range attachments {
		data := a.Data
		msg.Attach(a.Name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}
	return msg
}
