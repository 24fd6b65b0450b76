package mailer

import (
	"github.com/rjwedding/rsvp-backend/pkg/logger"
)

// DevMailer logs mail instead of sending it.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) Send(toEmail, toName, subject, text, html string) (string, error) {
	logger.Info("📧 [DEV MAIL]",
		"to", toEmail,
		"name", toName,
		"subject", subject,
		"text", text,
	)
	return "dev", nil
}

func (d *DevMailer) SendRSVPConfirmation(email, name, event string, attending bool) error {
	logger.Info("📧 [DEV MAIL] RSVP Confirmation",
		"to", email,
		"name", name,
		"event", event,
		"attending", attending,
	)
	return nil
}

var _ Service = (*DevMailer)(nil)
