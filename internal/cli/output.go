package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/ttp-appointments/internal/appointment"
	"github.com/pfrederiksen/ttp-appointments/internal/notifier"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt    time.Time                  `json:"checked_at"`
	States       []string                   `json:"states"`
	Appointments []*appointment.Appointment `json:"appointments"`
	Count        int                        `json:"count"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text, one line per appointment
// in start-time order
func writeText(w io.Writer, result *OutputResult) error {
	if result.Count == 0 {
		fmt.Fprintln(w, "No TTP appointments found.")
		return nil
	}

	for _, appt := range result.Appointments {
		fmt.Fprintln(w, notifier.FormatMessage(appt))
	}

	return nil
}
