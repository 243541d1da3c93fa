package mailer

import (
	"fmt"

	"serenispa/config"
	"serenispa/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Message is one outgoing notification email.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Mailer sends a batch of messages. Individual failures are not retried and
// not reported per-message; the batch succeeds or fails as a whole.
type Mailer interface {
	Send(messages []Message) error
}

// SMTPMailer is the production Mailer backed by an SMTP relay.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
}

// NewSMTPMailer builds an SMTPMailer from the loaded configuration.
func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig
	return &SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		FromName: cfg.SMTPFrom,
	}
}

// Send delivers each message over a single SMTP connection. The first
// failure is remembered and returned with an aggregate count once the whole
// batch has been attempted.
func (m *SMTPMailer) Send(messages []Message) error {
	if len(messages) == 0 {
		return nil
	}

	d := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	sender, err := d.Dial()
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer sender.Close()

	logger := utils.GetLogger()
	var firstErr error
	failed := 0

	for _, msg := range messages {
		gm := gomail.NewMessage()
		gm.SetAddressHeader("From", m.Username, m.FromName)
		gm.SetHeader("To", msg.To)
		gm.SetHeader("Subject", msg.Subject)
		gm.SetBody("text/html", msg.HTML)

		if err := gomail.Send(sender, gm); err != nil {
			logger.Warn("Failed to send email", zap.String("to", msg.To), zap.Error(err))
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to send %d of %d emails: %w", failed, len(messages), firstErr)
	}
	return nil
}
