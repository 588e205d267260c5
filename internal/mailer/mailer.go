// Package mailer submits rendered reports over an authenticated, implicit-TLS
// SMTP connection.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	mail "github.com/wneessen/go-mail"

	"github.com/jwulff/recap/internal/report"
)

const (
	DefaultHost = "smtp.gmail.com"
	DefaultPort = 465
)

// EmailError reports an authentication or submission failure.
type EmailError struct {
	Op  string
	Err error
}

func (e *EmailError) Error() string {
	return fmt.Sprintf("email %s: %v", e.Op, e.Err)
}

func (e *EmailError) Unwrap() error { return e.Err }

// Credentials authenticate against the relay.
type Credentials struct {
	Username string
	Password string
}

// Config configures the relay connection.
type Config struct {
	Host        string
	Port        int
	From        string // defaults to Credentials.Username
	Credentials Credentials
	Timeout     time.Duration
}

// Mailer sends one report per call to exactly one recipient.
type Mailer struct {
	cfg Config
}

// New returns a Mailer. Zero Host or Port fall back to the Gmail relay.
func New(cfg Config) *Mailer {
	if strings.TrimSpace(cfg.Host) == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if strings.TrimSpace(cfg.From) == "" {
		cfg.From = cfg.Credentials.Username
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Mailer{cfg: cfg}
}

// BuildMessage assembles a multipart/alternative message whose HTML part is
// html and whose text part is derived from it.
func BuildMessage(from, recipient, subject, html string) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, &EmailError{Op: "build", Err: fmt.Errorf("from address: %w", err)}
	}
	if err := m.To(recipient); err != nil {
		return nil, &EmailError{Op: "build", Err: fmt.Errorf("recipient address: %w", err)}
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextPlain, report.PlainText(html))
	m.AddAlternativeString(mail.TypeTextHTML, html)
	return m, nil
}

// Send submits the report to recipient.
func (m *Mailer) Send(ctx context.Context, recipient, subject, html string) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return &EmailError{Op: "build", Err: errors.New("recipient is required")}
	}
	if m.cfg.Credentials.Username == "" || m.cfg.Credentials.Password == "" {
		return &EmailError{Op: "auth", Err: errors.New("smtp credentials are not configured")}
	}

	msg, err := BuildMessage(m.cfg.From, recipient, subject, html)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Credentials.Username),
		mail.WithPassword(m.cfg.Credentials.Password),
		mail.WithTimeout(m.cfg.Timeout),
	)
	if err != nil {
		return &EmailError{Op: "connect", Err: err}
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return &EmailError{Op: "send", Err: err}
	}
	return nil
}
