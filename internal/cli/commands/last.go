package commands

import (
	"github.com/spf13/cobra"

	"refactorings/internal/config"
	"refactorings/internal/storage"
	"refactorings/internal/ui"
)

// LastCommand handles the last command
type LastCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewLastCommand creates a new LastCommand
func NewLastCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter, viewer ui.Viewer) *LastCommand {
	return &LastCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (lc *LastCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := lc.storage.Load()
	if err != nil {
		return err
	}

	if lc.config.Flags.Plain {
		lc.formatter.PrintTranscript(report)
		return nil
	}
	return lc.viewer.View(report)
}
