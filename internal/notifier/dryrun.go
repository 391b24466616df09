package notifier

import (
	"fmt"
	"io"
	"os"

	"github.com/pfrederiksen/ttp-appointments/internal/appointment"
)

// DryRunNotifier prints what would be sent without delivering anything
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a new dry-run notifier writing to stdout
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{out: os.Stdout}
}

// Notify prints the messages that would be sent
func (n *DryRunNotifier) Notify(appointments []*appointment.Appointment) error {
	for i, appt := range appointments {
		fmt.Fprintf(n.out, "--- Notification %d/%d ---\n", i+1, len(appointments))
		fmt.Fprintln(n.out, FormatMessage(appt))
	}
	return nil
}
