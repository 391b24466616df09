package notifier

import (
	"fmt"

	"github.com/pfrederiksen/ttp-appointments/internal/appointment"
)

// Notifier defines the interface for delivering appointment notifications
type Notifier interface {
	// Notify delivers notifications for the given appointments
	Notify(appointments []*appointment.Appointment) error
}

// FormatMessage formats the notification text for one appointment
func FormatMessage(appt *appointment.Appointment) string {
	return fmt.Sprintf("There is a TTP appointment available at %s on %s!", appt.Location, appt.Start)
}
