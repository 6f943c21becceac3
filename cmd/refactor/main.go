package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"refactorings/internal/catalog"
	"refactorings/internal/cli"
	"refactorings/internal/cli/commands"
	"refactorings/internal/config"
	"refactorings/internal/registry"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "refactor [selector]",
		Short: "Run refactoring examples",
		Long: `Discover refactoring examples by file name and run their entry points.
Every example file maps to a namespace key; first_set_of_refactorings/split_phase.go
is looked up as FirstSetOfRefactorings::SplitPhase.`,
		Version: version,
	}

	// Register every example entry point, then freeze the registry
	reg := registry.New()
	if err := catalog.Register(reg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	reg.Seal()

	// Create initial config from defaults, .env and the environment
	cfg, err := config.Load(config.DefaultProjectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, reg)

	// Register all commands
	cmds.Register(rootCmd, &flags)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
