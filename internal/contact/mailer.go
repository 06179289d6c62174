package contact

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

var (
	ErrMailerNotConfigured = errors.New("SMTP credentials not configured")
	ErrInvalidMessage      = errors.New("name, email and message are required")
)

// Message is one submission of the contact form.
type Message struct {
	Name    string
	Email   string
	Message string
}

func (m Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Message) == "" || !strings.Contains(m.Email, "@") {
		return ErrInvalidMessage
	}
	return nil
}

// Sender delivers contact form messages.
type Sender interface {
	Send(m Message) error
}

// dialer is the part of *gomail.Dialer the mailer uses.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	dialer     dialer
	from       string
	to         string
	configured bool
	log        *zap.Logger
}

func NewMailer(host string, port int, username, password, to string, log *zap.Logger) *Mailer {
	if to == "" {
		to = username
	}
	return &Mailer{
		dialer:     gomail.NewDialer(host, port, username, password),
		from:       username,
		to:         to,
		configured: username != "" && password != "",
		log:        log,
	}
}

func (s *Mailer) Send(m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if !s.configured {
		return ErrMailerNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", s.to)
	msg.SetHeader("Reply-To", m.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Portfolio Contact: %s", m.Name))
	msg.SetBody("text/plain", fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Message))

	if err := s.dialer.DialAndSend(msg); err != nil {
		s.log.Error("sending contact email", zap.Error(err))
		return fmt.Errorf("sending contact email: %w", err)
	}

	s.log.Info("contact email sent", zap.String("name", m.Name))
	return nil
}
