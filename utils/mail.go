package utils

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Email    string
	Password string
}

// Mailer sends the welcome note over SMTP.
type Mailer struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewMailer(cfg SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg, dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Email, cfg.Password)}
}

func welcomeMessage(from, to, username string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to TravelTales")
	m.SetBody("text/html", welcomeBody(username))
	return m
}

// welcomeBody renders the mail body. username is caller-supplied and is escaped.
func welcomeBody(username string) string {
	return fmt.Sprintf(`
		<h1>Welcome to TravelTales, %s!</h1>
		<p>Your account request has been received.</p>
		<p>Start sharing your travel stories with the world.</p>
	`, html.EscapeString(username))
}

func (m *Mailer) SendWelcome(ctx context.Context, to, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.dialer.DialAndSend(welcomeMessage(m.cfg.Email, to, username))
}
