package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"refactorings/internal/config"
	"refactorings/internal/discovery"
	"refactorings/internal/domain"
	"refactorings/internal/naming"
)

// ListEntry is one discovered example file as shown by the list command
type ListEntry struct {
	Path       string `json:"path" yaml:"path"`
	Key        string `json:"key,omitempty" yaml:"key,omitempty"`
	Registered bool   `json:"registered" yaml:"registered"`
	Problem    string `json:"problem,omitempty" yaml:"problem,omitempty"`
}

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	parser *discovery.Parser
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter(cfg *config.Config, parser *discovery.Parser) *Formatter {
	if cfg.NoColor {
		color.NoColor = true
	}
	return &Formatter{
		config: cfg,
		parser: parser,
		out:    os.Stdout,
	}
}

// SetOutput redirects the formatter
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

func (f *Formatter) line(c *color.Color, format string, args ...any) {
	fmt.Fprintln(f.out, c.Sprintf(format, args...))
}

// PrintExampleList prints discovered example files as a tree, each with the
// key its entry point is looked up under. Files whose key is not registered
// are marked [missing]. With showVariants the variants of each example are
// listed beneath it.
func (f *Formatter) PrintExampleList(entries []ListEntry, showVariants bool) error {
	f.line(color.New(color.FgGreen), "Found %d example file(s):\n", len(entries))

	for i, entry := range entries {
		isLastFile := i == len(entries)-1
		branch := "├── "
		if isLastFile {
			branch = "└── "
		}

		var marker string
		switch {
		case entry.Problem != "":
			marker = " " + color.RedString("[%s]", entry.Problem)
		case !entry.Registered:
			marker = " " + color.RedString("[missing]")
		}
		fmt.Fprintf(f.out, "%s%s %s%s\n", branch, color.CyanString(entry.Path), color.YellowString(entry.Key), marker)

		if !showVariants {
			continue
		}

		variants, err := f.parser.FindVariants(f.config.ProjectFile(entry.Path))
		if err != nil {
			return err
		}

		indent := "│   "
		if isLastFile {
			indent = "    "
		}
		if len(variants) == 0 {
			fmt.Fprintf(f.out, "%s└── %s\n", indent, color.RedString("(no variants found)"))
			continue
		}
		for j, variant := range variants {
			prefix := "├── "
			if j == len(variants)-1 {
				prefix = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s\n", indent, prefix, variant)
		}
	}

	return nil
}

// PrintRegistered prints every registered key with the example file it is
// expected to be defined in.
func (f *Formatter) PrintRegistered(keys []string) {
	f.line(color.New(color.FgGreen), "%d registered entry point(s):\n", len(keys))
	for _, key := range keys {
		fmt.Fprintf(f.out, "%s  %s\n", color.YellowString(key), color.CyanString(ExpectedPath(key, f.config.ExampleExt)))
	}
}

// ExpectedPath returns the project-relative file a key resolves from
func ExpectedPath(key, ext string) string {
	return path.Join(strings.Split(naming.Fragment(key), naming.Separator)...) + ext
}

// EncodeList writes entries as yaml or json
func (f *Formatter) EncodeList(entries []ListEntry, format string) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(f.out)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(f.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want tree, yaml or json)", format)
	}
}

// PrintTranscript prints a saved run the way it appeared on the console,
// headed by the example each block of output came from.
func (f *Formatter) PrintTranscript(report *domain.RunReport) {
	selector := report.Selector
	if selector == "" {
		selector = "all"
	}
	f.line(color.New(color.FgCyan), "Run %s: %s (%s)", report.ID, selector, report.StartedAt.Format("2006-01-02 15:04:05"))

	for _, example := range report.Examples {
		fmt.Fprintln(f.out)
		f.line(color.New(color.FgYellow), "── %s (%s)", example.Key, example.Path)
		fmt.Fprint(f.out, example.Output)
		if example.Error != "" {
			f.line(color.New(color.FgRed), "✗ %s", example.Error)
		}
	}

	if report.Failed {
		fmt.Fprintln(f.out)
		f.line(color.New(color.FgRed), "✗ run aborted: %s", report.Error)
	}
}
