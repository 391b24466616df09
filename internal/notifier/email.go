package notifier

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/pfrederiksen/ttp-appointments/internal/appointment"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailNotifier sends appointment availability by email via SendGrid
type EmailNotifier struct {
	apiKey string
	from   string
	to     string
}

// NewEmailNotifier creates a new email notifier using environment variables
// Required environment variables:
// - SENDGRID_API_KEY
// - TTP_NOTIFY_EMAIL_FROM
// - TTP_NOTIFY_EMAIL_TO
func NewEmailNotifier() (*EmailNotifier, error) {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	from := os.Getenv("TTP_NOTIFY_EMAIL_FROM")
	to := os.Getenv("TTP_NOTIFY_EMAIL_TO")

	if apiKey == "" || from == "" || to == "" {
		return nil, fmt.Errorf("missing required SendGrid credentials in environment variables")
	}

	return &EmailNotifier{apiKey: apiKey, from: from, to: to}, nil
}

// Notify sends one email listing all appointments
func (n *EmailNotifier) Notify(appointments []*appointment.Appointment) error {
	if len(appointments) == 0 {
		return nil
	}

	var body strings.Builder
	for _, appt := range appointments {
		body.WriteString(FormatMessage(appt))
		body.WriteString("\n")
	}

	subject := fmt.Sprintf("TTP: %d appointment(s) available", len(appointments))
	from := mail.NewEmail("TTP Appointments", n.from)
	to := mail.NewEmail("", n.to)
	message := mail.NewSingleEmail(from, subject, to, body.String(), "")

	client := sendgrid.NewSendClient(n.apiKey)
	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}
