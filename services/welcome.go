package services

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"webepex/models"
)

// WelcomeMailer sends a best-effort welcome email after signup. Mail is a
// side channel: it never delays or fails the signup response, and it is
// skipped entirely when SendGrid is not configured.
type WelcomeMailer struct {
	apiKey string
	from   string
	log    zerolog.Logger
}

func NewWelcomeMailer(apiKey, from string, log zerolog.Logger) *WelcomeMailer {
	return &WelcomeMailer{apiKey: apiKey, from: from, log: log}
}

// SendAsync fires the welcome mail in the background.
func (m *WelcomeMailer) SendAsync(user models.User) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				m.log.Error().Interface("panic", r).Msg("welcome mail panic recovered")
			}
		}()
		m.send(user)
	}()
}

func (m *WelcomeMailer) send(user models.User) {
	if m.apiKey == "" || m.from == "" {
		m.log.Debug().Msg("SendGrid not configured, skipping welcome mail")
		return
	}

	subject := "Welcome to WebEpex"
	body := fmt.Sprintf(`Hi %s,

Your account is ready. Sign in with %s to browse the game catalog and
manage your subscription.

— The WebEpex team`, user.FullName, user.Email)

	from := mail.NewEmail("WebEpex", m.from)
	to := mail.NewEmail(user.FullName, user.Email)
	message := mail.NewSingleEmail(from, subject, to, body, body)
	client := sendgrid.NewSendClient(m.apiKey)

	response, err := client.Send(message)
	if err != nil {
		m.log.Warn().Err(err).Str("email", user.Email).Msg("welcome mail failed")
		return
	}
	m.log.Info().Int("status", response.StatusCode).Str("email", user.Email).Msg("welcome mail sent")
}
