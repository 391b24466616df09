// Package cli implements the command-line interface for ttp-appointments.
//
// The cli package provides the Cobra-based CLI with support for one-shot and
// watch-mode checks, output formatting (text/JSON), and optional notifier
// selection. It coordinates the ttp client, checker, and notifier packages.
package cli
