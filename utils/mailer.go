package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends best-effort notification emails. A nil Mailer (or one without
// an API key) silently drops everything, so tests and local runs need no key.
type Mailer struct {
	client *sendgrid.Client
	sender string
}

func NewMailer(apiKey, sender string) *Mailer {
	if apiKey == "" {
		return &Mailer{sender: sender}
	}
	return &Mailer{client: sendgrid.NewSendClient(apiKey), sender: sender}
}

// SendAsync fires the mail in a goroutine; delivery failures are logged, never
// surfaced to the request that triggered them.
func (m *Mailer) SendAsync(to, subject, htmlBody string) {
	if m == nil || m.client == nil {
		return
	}
	go func() {
		from := mail.NewEmail("Knowledge Sharing", m.sender)
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), "", htmlBody)
		if _, err := m.client.Send(message); err != nil {
			log.Printf("Error sending email to %s: %v", to, err)
		}
	}()
}

// InviteEmail is the notification body for a course invite.
func InviteEmail(courseTitle, ownerEmail string) (subject, body string) {
	subject = fmt.Sprintf("You have been invited to join %s", courseTitle)
	body = fmt.Sprintf(`<p>%s invited you to join the course <b>%s</b>.</p>
<p>Log in and confirm the invite to get access.</p>`, ownerEmail, courseTitle)
	return subject, body
}

// EnrolledEmail is the notification body sent when a request is confirmed.
func EnrolledEmail(courseTitle string) (subject, body string) {
	subject = fmt.Sprintf("Your request to join %s was accepted", courseTitle)
	body = fmt.Sprintf(`<p>The owner of <b>%s</b> accepted your request. You are enrolled.</p>`, courseTitle)
	return subject, body
}
