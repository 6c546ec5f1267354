package sendgrid

import (
	"context"
	"fmt"

	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer delivers plain-text messages to the farm's order inbox.
type Mailer interface {
	Send(ctx context.Context, subject, content string) error
	GetSendGridClient() *sg.Client
}

type mailer struct {
	client    *sg.Client
	fromEmail string
	fromName  string
	toEmail   string
}

func NewMailer(apiKey, fromEmail, fromName, toEmail string) Mailer {
	return &mailer{
		client:    sg.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
	}
}

// Send implements Mailer.
func (m *mailer) Send(ctx context.Context, subject, content string) error {

	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail("", m.toEmail)

	message := mail.NewV3Mail()
	message.SetFrom(from)

	personalization := mail.NewPersonalization()
	personalization.AddTos(to)
	personalization.Subject = subject
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", content))

	response, err := m.client.SendWithContext(ctx, message)

	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	return nil
}

// GetSendGridClient provides access to the internal sendgrid.Client.
// Used by tests to redirect requests to a mock server.
func (m *mailer) GetSendGridClient() *sg.Client {
	return m.client
}
