// Package controller renders tokfuzz workflow output, either as plain text
// or as an interactive terminal UI.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/tokfuzz/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeInspect StartMode = iota
	ModeCampaign
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	total int
}

// WithInspectMode sets the UI to one-shot inspection output.
func WithInspectMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInspect
	}
}

// WithCampaignMode sets the UI to follow a campaign of total iterations.
func WithCampaignMode(total int) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCampaign
		c.total = total
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how workflows report progress and results.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayTokens(ctx context.Context, path m.Path, rows []m.TokenRow, stats m.LexStats) error
	DisplayCorpus(ctx context.Context, entries []m.Entry) error
	DisplayCampaignInfo(ctx context.Context, info m.CampaignInfo)
	DisplayCompletedIteration(ctx context.Context, report m.Report)
	DisplaySummary(ctx context.Context, summary m.Summary)
}

// NewUI returns the interactive TUI when useTTY is set and the plain text UI
// otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
