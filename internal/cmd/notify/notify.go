// Package notify provides a unified API for user-facing alerts in the CLI.
package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/toolshelf/internal/cmd/alerts"
	"github.com/agentstation/toolshelf/internal/cmd/globals"
	"github.com/agentstation/toolshelf/internal/cmd/output"
)

// Notifier sends alerts to the user.
type Notifier struct {
	alertWriter alerts.Writer
	config      Config
}

// Config controls notification behavior.
type Config struct {
	OutputFormat string    // "table", "json", "yaml" or "auto"
	ShowAlerts   bool      // Whether to show info and success alerts
	AlertWriter  io.Writer // Where to write alerts (default: stderr)
	UseColor     bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		OutputFormat: "auto",
		ShowAlerts:   true,
		AlertWriter:  os.Stderr,
		UseColor:     true,
	}
}

// New creates a new Notifier with the given configuration.
func New(config Config) *Notifier {
	if config.AlertWriter == nil {
		config.AlertWriter = os.Stderr
	}
	writer := alerts.NewFormatWriter(config.AlertWriter, detectOutputFormat(config.OutputFormat))
	if !config.UseColor {
		writer = writer.WithConfig(alerts.WriterConfig{ShowDetails: true})
	}

	return &Notifier{
		alertWriter: writer,
		config:      config,
	}
}

// NewFromCommand creates a Notifier configured from the global flags of a
// cobra command. Alerts are written to the command's error stream.
func NewFromCommand(cmd *cobra.Command) (*Notifier, error) {
	config := DefaultConfig()

	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse global flags: %w", err)
	}

	config.OutputFormat = globalFlags.Format
	config.ShowAlerts = !globalFlags.Quiet
	config.UseColor = !globalFlags.NoColor
	config.AlertWriter = cmd.ErrOrStderr()

	return New(config), nil
}

// Alert sends an alert. Errors and warnings are always shown; other levels
// are suppressed when alerts are disabled.
func (n *Notifier) Alert(alert *alerts.Alert) error {
	if !n.config.ShowAlerts && alert.Level != alerts.LevelError && alert.Level != alerts.LevelWarning {
		return nil
	}
	return n.alertWriter.WriteAlert(alert)
}

// Success sends a success alert.
func (n *Notifier) Success(message string, details ...string) error {
	return n.Alert(alerts.NewSuccess(message).WithDetails(details...))
}

// Error sends an error alert.
func (n *Notifier) Error(message string, details ...string) error {
	return n.Alert(alerts.NewError(message).WithDetails(details...))
}

// Warning sends a warning alert.
func (n *Notifier) Warning(message string, details ...string) error {
	return n.Alert(alerts.NewWarning(message).WithDetails(details...))
}

// Failure sends an error alert describing err.
func (n *Notifier) Failure(err error) error {
	return n.Alert(alerts.FromError(err))
}

// Info sends an info alert.
func (n *Notifier) Info(message string, details ...string) error {
	return n.Alert(alerts.NewInfo(message).WithDetails(details...))
}

// detectOutputFormat determines the output format from a string.
func detectOutputFormat(formatStr string) output.Format {
	if formatStr == "" || formatStr == "auto" {
		return output.DetectFormat("")
	}
	return output.Format(strings.ToLower(formatStr))
}
