package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/typelog/internal/backend"
	"github.com/atomicstack/typelog/internal/logging/events"
	"github.com/atomicstack/typelog/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width          int
	Height         int
	ShowFooter     bool
	Notice         string
	NoticeDuration time.Duration
	ReplayPath     string
	ReplayInterval time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	defer model.Teardown()

	program := tea.NewProgram(model, tea.WithAltScreen())
	model.AttachSender(program.Send)
	_, err = program.Run()
	events.App.Exit(err)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// NewModel builds the UI model for cfg, starting the replay feeder when a
// replay file is configured.
func NewModel(cfg Config) (*ui.Model, error) {
	var feeder *backend.Feeder
	if cfg.ReplayPath != "" {
		f, err := backend.OpenFeeder(cfg.ReplayPath, cfg.ReplayInterval)
		if err != nil {
			return nil, fmt.Errorf("start replay: %w", err)
		}
		feeder = f
	}
	return ui.NewModel(cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Notice, cfg.NoticeDuration, feeder), nil
}
