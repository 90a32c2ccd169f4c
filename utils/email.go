package utils

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/Priyankavya/FitnessApp/config"
)

// ======================
// SMTP Configuration
// ======================
var (
	smtpHost      string
	smtpPort      string
	smtpUsername  string
	smtpPassword  string
	smtpFromName  string
	smtpFromEmail string
	frontendURL   string
)

// InitMailer stores the SMTP settings used for reset-link mails.
func InitMailer(cfg *config.Config) {
	smtpHost = cfg.SMTPHost
	smtpPort = cfg.SMTPPort
	smtpUsername = cfg.SMTPUsername
	smtpPassword = cfg.SMTPPassword
	smtpFromName = cfg.SMTPFromName
	smtpFromEmail = cfg.SMTPFromEmail
	frontendURL = cfg.FrontendURL
}

// sendEmail delivers a single plain-text mail over SMTP with STARTTLS.
// A missing SMTP configuration is an error: callers surface delivery
// failures instead of pretending the mail went out.
func sendEmail(to, subject, body string) error {
	if smtpHost == "" || smtpUsername == "" || smtpPassword == "" {
		return fmt.Errorf("SMTP not configured")
	}

	if smtpFromEmail == "" {
		smtpFromEmail = smtpUsername
	}

	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName: smtpHost,
	}

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("STARTTLS failed: %w", err)
		}
	}

	auth := smtp.PlainAuth("", smtpUsername, smtpPassword, smtpHost)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP auth failed: %w", err)
	}

	if err := client.Mail(smtpFromEmail); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}

	msg := fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s",
		smtpFromName, smtpFromEmail, to, subject, body,
	)
	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

// SendResetLink mails the password-reset link for the given token.
func SendResetLink(to, token string) error {
	base := frontendURL
	if base == "" {
		base = "http://localhost:3000"
	}
	link := fmt.Sprintf("%s/reset-password?token=%s", base, token)

	subject := "Reset Your Password"
	body := fmt.Sprintf(
		"Hi,\n\nClick this link to reset your NutriFit password:\n%s\n\nThis link expires in 15 minutes.",
		link,
	)
	return sendEmail(to, subject, body)
}
