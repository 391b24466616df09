package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pfrederiksen/ttp-appointments/internal/appointment"
	"github.com/pfrederiksen/ttp-appointments/internal/checker"
	"github.com/pfrederiksen/ttp-appointments/internal/config"
	"github.com/pfrederiksen/ttp-appointments/internal/logger"
	"github.com/pfrederiksen/ttp-appointments/internal/notifier"
	"github.com/pfrederiksen/ttp-appointments/internal/ttp"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess      = 0
	ExitError        = 1
	ExitAppointments = 2
)

var (
	flagConfigFile    string
	flagStates        []string
	flagService       string
	flagLimit         int
	flagTimezone      string
	flagTimeout       time.Duration
	flagFormat        string
	flagWatch         bool
	flagInterval      time.Duration
	flagNotify        string
	flagAllowPartial  bool
	flagMaxConcurrent int
	flagVerbose       bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ttp-appointments",
		Short: "Check for open TTP enrollment appointments",
		Long: `A CLI tool to check the DHS Trusted Traveler Programs scheduler for open
appointment slots at enrollment centers in the given states, soonest first.`,
		RunE: runCheck,
	}

	// Define flags
	cmd.Flags().StringVar(&flagConfigFile, "config", "", "Path to YAML config file")
	cmd.Flags().StringSliceVar(&flagStates, "states", nil, "State codes to check, e.g. OH,KY (required unless set in config)")
	cmd.Flags().StringVar(&flagService, "service", config.DefaultServiceName, "TTP service name")
	cmd.Flags().IntVar(&flagLimit, "limit", config.DefaultLimit, "Soonest slots to fetch per location")
	cmd.Flags().StringVar(&flagTimezone, "timezone", config.DefaultTimezone, "Display timezone for appointment times")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", config.DefaultTimeout, "HTTP request timeout")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Keep checking on an interval instead of exiting")
	cmd.Flags().DurationVar(&flagInterval, "interval", config.DefaultInterval, "Delay between checks in watch mode")
	cmd.Flags().StringVar(&flagNotify, "notify", "", "Notifier: dry-run, twitter, or email (default none)")
	cmd.Flags().BoolVar(&flagAllowPartial, "allow-partial", false, "Report locations that succeeded even if others failed")
	cmd.Flags().IntVar(&flagMaxConcurrent, "max-concurrent", config.DefaultMaxConcurrent, "Maximum concurrent slot requests")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// buildConfig merges defaults, the optional config file, and flag overrides
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if flagConfigFile != "" {
		loaded, err := config.Load(flagConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Flags override the config file when set explicitly
	flags := cmd.Flags()
	if flags.Changed("states") {
		cfg.States = flagStates
	}
	if flags.Changed("service") {
		cfg.ServiceName = flagService
	}
	if flags.Changed("limit") {
		cfg.Limit = flagLimit
	}
	if flags.Changed("timezone") {
		cfg.Timezone = flagTimezone
	}
	if flags.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if flags.Changed("interval") {
		cfg.Interval = flagInterval
	}
	if flags.Changed("max-concurrent") {
		cfg.MaxConcurrent = flagMaxConcurrent
	}
	if flags.Changed("allow-partial") {
		cfg.AllowPartial = flagAllowPartial
	}

	cfg.NormalizeStates()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildNotifier resolves the --notify flag to a Notifier, or nil for none
func buildNotifier(name string) (notifier.Notifier, error) {
	switch strings.ToLower(name) {
	case "":
		return nil, nil
	case "dry-run":
		return notifier.NewDryRunNotifier(), nil
	case "twitter":
		return notifier.NewTwitterNotifier()
	case "email":
		return notifier.NewEmailNotifier()
	default:
		return nil, fmt.Errorf("unknown notifier: %s (must be 'dry-run', 'twitter', or 'email')", name)
	}
}

// runCheck is the main command logic
func runCheck(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	notify, err := buildNotifier(flagNotify)
	if err != nil {
		return err
	}

	client := ttp.NewClient(cfg.Timeout)
	chk, err := checker.New(client, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Startup status line
	if format == FormatText {
		fmt.Printf("Checking for %s appointments in %s...\n", cfg.ServiceName, strings.Join(cfg.States, ", "))
	}

	if flagWatch {
		return runWatch(ctx, chk, cfg, notify, format)
	}

	appointments, err := chk.Check(ctx)
	if err != nil {
		return fmt.Errorf("checking appointments: %w", err)
	}

	result := &OutputResult{
		CheckedAt:    time.Now().UTC(),
		States:       cfg.States,
		Appointments: appointments,
		Count:        len(appointments),
	}

	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if notify != nil && len(appointments) > 0 {
		if err := notify.Notify(appointments); err != nil {
			return fmt.Errorf("sending notifications: %w", err)
		}
	}

	if len(appointments) > 0 {
		os.Exit(ExitAppointments)
	}
	os.Exit(ExitSuccess)
	return nil
}

// runWatch re-runs the check on the configured interval until the context is
// cancelled. Each tick only reports appointments not seen before; a failed
// tick is logged and the loop keeps going.
func runWatch(ctx context.Context, chk *checker.Checker, cfg *config.Config, notify notifier.Notifier, format OutputFormat) error {
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		appointments, err := chk.Check(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Error("Check failed", logger.Fields{"interval": cfg.Interval.String()}, err)
		} else {
			reportTick(chk.Unseen(appointments), cfg, notify, format)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// reportTick writes and notifies one watch tick's worth of new appointments
func reportTick(fresh []*appointment.Appointment, cfg *config.Config, notify notifier.Notifier, format OutputFormat) {
	result := &OutputResult{
		CheckedAt:    time.Now().UTC(),
		States:       cfg.States,
		Appointments: fresh,
		Count:        len(fresh),
	}

	if err := WriteOutput(os.Stdout, result, format); err != nil {
		logger.Error("Writing output failed", nil, err)
		return
	}

	if notify != nil && len(fresh) > 0 {
		if err := notify.Notify(fresh); err != nil {
			logger.Error("Sending notifications failed", logger.Fields{"count": len(fresh)}, err)
		}
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
