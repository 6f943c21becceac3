package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"refactorings/internal/config"
	"refactorings/internal/execution"
	"refactorings/internal/registry"
	"refactorings/internal/storage"
	"refactorings/internal/ui"
)

// runner is what the run command drives: an Executor that can report
// progress
type runner interface {
	execution.Executor
	SetProgress(progress execution.Progress)
}

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	runner   runner
	storage  storage.Storage
	logger   *zap.Logger
	progress execution.Progress
	stderr   io.Writer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	r runner,
	st storage.Storage,
	logger *zap.Logger,
) *RunCommand {
	return &RunCommand{
		config:   cfg,
		runner:   r,
		storage:  st,
		logger:   logger,
		progress: ui.NewProgressBar(),
		stderr:   os.Stderr,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	var selector string
	if len(args) > 0 {
		selector = args[0]
	}

	if rc.config.Flags.Progress {
		rc.runner.SetProgress(rc.progress)
	}

	report, err := rc.runner.SelectAndRun(selector)

	// The transcript is saved for failed runs too, so `last` can show where
	// the run stopped
	if report != nil && !rc.config.Flags.NoSave {
		if saveErr := rc.storage.Save(report); saveErr != nil {
			rc.logger.Warn("failed to save run transcript", zap.Error(saveErr))
		}
	}

	if err != nil {
		if errors.Is(err, registry.ErrEntryPointNotFound) {
			fmt.Fprintln(rc.stderr, color.YellowString("Every example file needs an entry point registered in internal/catalog"))
		}
		return err
	}

	if len(report.Examples) == 0 {
		fmt.Fprintln(rc.stderr, color.YellowString("No examples to run"))
		return nil
	}

	rc.logger.Info("run finished",
		zap.String("id", report.ID),
		zap.Int("examples", len(report.Examples)),
		zap.Duration("duration", report.Duration))
	return nil
}
