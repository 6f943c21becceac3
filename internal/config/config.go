package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	Collections []string `env:"REFACTOR_COLLECTIONS" envSeparator:","`

	// Example file convention
	ExampleExt   string   `env:"REFACTOR_EXAMPLE_EXT"`
	SkipFiles    []string `env:"REFACTOR_SKIP_FILES" envSeparator:","`
	SkipSuffixes []string `env:"REFACTOR_SKIP_SUFFIXES" envSeparator:","`

	// Output settings
	OutputJSONFile string `env:"REFACTOR_OUTPUT_FILE"`
	OutputJSONDir  string `env:"REFACTOR_OUTPUT_DIR"`
	NoColor        bool   `env:"REFACTOR_NO_COLOR"`

	// Paths to ignore when scanning
	PathsToIgnore []string `env:"REFACTOR_IGNORE_PATHS" envSeparator:","`

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ProjectPath string
	NameFilter  string
	Progress    bool
	Verbose     bool
	NoSave      bool
	Registered  bool
	Variants    bool
	Format      string
	Plain       bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		ExampleExt:     DefaultExampleExt,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	cfg.Collections = append([]string(nil), DefaultCollections...)
	cfg.SkipFiles = append([]string(nil), DefaultSkipFiles...)
	cfg.SkipSuffixes = append([]string(nil), DefaultSkipSuffixes...)
	cfg.PathsToIgnore = append([]string(nil), DefaultPathsToIgnore...)
	return cfg
}

// Load creates a config from defaults, the project's .env file and REFACTOR_*
// environment variables. Variables already set in the environment win over
// the .env file. The project path only comes from projectPath, since the .env
// file is read from there.
func Load(projectPath string) (*Config, error) {
	if projectPath == "" {
		projectPath = DefaultProjectPath
	}

	envPath := filepath.Join(projectPath, EnvFile)
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load %s: %w", envPath, err)
	}

	cfg := New()
	cfg.ProjectPath = projectPath
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Apply copies command flags onto the config.
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.ProjectPath != "" {
		c.ProjectPath = flags.ProjectPath
	}
}

// OutputPath returns the full path to the run transcript. Resolved to an
// absolute path so run and last read the same file regardless of cwd.
func (c *Config) OutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// CollectionPaths returns the default collections joined onto the project
// path.
func (c *Config) CollectionPaths() []string {
	paths := make([]string, 0, len(c.Collections))
	for _, collection := range c.Collections {
		paths = append(paths, c.ProjectFile(collection))
	}
	return paths
}

// ProjectFile returns rel joined onto the project path.
func (c *Config) ProjectFile(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.ProjectPath, filepath.FromSlash(rel))
}
