package utils

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/iic-bit/IIC-Backend/config"
)

// EmailSender sends plain-text mail over SMTP. Unconfigured SMTP degrades to
// a logged no-op so local development works without a mail server.
type EmailSender struct {
	cfg *config.Config
}

func NewEmailSender(cfg *config.Config) *EmailSender {
	return &EmailSender{cfg: cfg}
}

func (e *EmailSender) Send(to, subject, body string) error {
	if e.cfg.SMTPHost == "" || e.cfg.SMTPUsername == "" {
		log.Printf("⚠️ SMTP not configured, skipping email to %s (%s)", to, subject)
		return nil
	}

	from := e.cfg.SMTPFromEmail
	if from == "" {
		from = e.cfg.SMTPUsername
	}

	addr := fmt.Sprintf("%s:%s", e.cfg.SMTPHost, e.cfg.SMTPPort)

	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{ServerName: e.cfg.SMTPHost}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("STARTTLS failed: %w", err)
		}
	}

	auth := smtp.PlainAuth("", e.cfg.SMTPUsername, e.cfg.SMTPPassword, e.cfg.SMTPHost)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP auth failed: %w", err)
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}

	fromHeader := from
	if e.cfg.SMTPFromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", e.cfg.SMTPFromName, from)
	}

	msg := strings.Join([]string{
		"From: " + fromHeader,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

// SendRegistrationConfirmation mails every member of a registered batch.
func (e *EmailSender) SendRegistrationConfirmation(emails []string, eventName, groupID string) {
	subject := fmt.Sprintf("Registration confirmed: %s", eventName)
	body := fmt.Sprintf(
		"Your group registration for %s is confirmed.\nGroup ID: %s\n\nKeep this ID for the event day.",
		eventName, groupID,
	)

	for _, to := range emails {
		if err := e.Send(to, subject, body); err != nil {
			log.Printf("⚠️ confirmation email to %s failed: %v", to, err)
		}
	}
}
