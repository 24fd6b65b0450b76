package mailer

type Service interface {
	Send(toEmail, toName, subject, text, html string) (string, error)
	SendRSVPConfirmation(email, name, event string, attending bool) error
}
