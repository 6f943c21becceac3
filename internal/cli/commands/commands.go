package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"refactorings/internal/cli"
	"refactorings/internal/config"
	"refactorings/internal/discovery"
	"refactorings/internal/execution"
	"refactorings/internal/logging"
	"refactorings/internal/registry"
	"refactorings/internal/storage"
	"refactorings/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	config   *config.Config
	registry *registry.Registry
	logger   *zap.Logger

	Run  *RunCommand
	List *ListCommand
	Last *LastCommand
}

// NewCommands creates all commands with dependencies. The registry must be
// sealed before any command runs.
func NewCommands(cfg *config.Config, reg *registry.Registry) *Commands {
	c := &Commands{config: cfg, registry: reg, logger: zap.NewNop()}
	c.wire()
	return c
}

// wire (re)builds the command dependencies from the current config
func (c *Commands) wire() {
	scanner := discovery.NewScanner(c.config)
	filter := discovery.NewFilter()
	variantParser := discovery.NewParser()
	runner := execution.NewRunner(c.config, scanner, filter, c.registry, c.logger)
	jsonStorage := storage.NewJSONStorage(c.config)
	formatter := ui.NewFormatter(c.config, variantParser)
	viewer := ui.NewTranscriptViewer()

	c.Run = NewRunCommand(c.config, runner, jsonStorage, c.logger)
	c.List = NewListCommand(c.config, scanner, filter, c.registry, formatter)
	c.Last = NewLastCommand(c.config, jsonStorage, formatter, viewer)
}

// setup reloads the config for the chosen project, applies the flags and
// builds the logger. Runs before every command.
func (c *Commands) setup(flags *cli.Flags) error {
	if !c.registry.Sealed() {
		return fmt.Errorf("registry must be sealed before running commands")
	}

	if flags.ProjectPath != "" {
		loaded, err := config.Load(flags.ProjectPath)
		if err != nil {
			return err
		}
		*c.config = *loaded
	}
	c.config.Apply(flags.ToConfigFlags())

	logger, err := logging.New(flags.Verbose)
	if err != nil {
		return err
	}
	c.logger = logger
	c.wire()

	c.logger.Debug("configuration loaded",
		zap.String("project", c.config.ProjectPath),
		zap.Strings("collections", c.config.Collections),
		zap.Int("registered", c.registry.Len()))
	return nil
}

// Register registers all commands with cobra. The root command itself runs
// examples, so `refactor` and `refactor run` behave the same.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return c.Run.Execute(cmd, args)
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return c.setup(flags)
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = c.logger.Sync()
	}
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVarP(&flags.ProjectPath, "project", "C", "", "Project directory the example paths are relative to")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log debug information to stderr")
	rootCmd.PersistentFlags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter example files by name pattern (supports wildcards, e.g., '*phase.go' or '*variable*')")
	addRunFlags(rootCmd, flags)

	// Run command
	runCmd := &cobra.Command{
		Use:   "run [selector]",
		Short: "Run refactoring examples",
		Long: `Run every example of the default collections, every example beneath a
directory, or a single example file. A selector whose last segment contains
a "." is a file; anything else is a directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run.Execute(cmd, args)
		},
	}
	addRunFlags(runCmd, flags)
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [selector]",
		Short: "List discovered examples",
		Long:  "Scan and list example files with the key each one is looked up under, without running them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.List.Execute(cmd, args)
		},
	}
	listCmd.Flags().BoolVarP(&flags.Variants, "variants", "c", false, "List the variants of each example")
	listCmd.Flags().BoolVar(&flags.Registered, "registered", false, "List registered entry points instead of files")
	listCmd.Flags().StringVar(&flags.Format, "format", "tree", "Output format: tree, yaml or json")
	rootCmd.AddCommand(listCmd)

	// Last command
	lastCmd := &cobra.Command{
		Use:   "last",
		Short: "Show the previous run",
		Long:  "Display the transcript of the previous run in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Last.Execute(cmd, args)
		},
	}
	lastCmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print the transcript instead of opening the viewer")
	rootCmd.AddCommand(lastCmd)
}

func addRunFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr")
	cmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Do not save the run transcript")
}
