package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"refactorings/internal/config"
	"refactorings/internal/discovery"
	"refactorings/internal/registry"
	"refactorings/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	registry  *registry.Registry
	formatter *ui.Formatter
	stderr    io.Writer
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	reg *registry.Registry,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		registry:  reg,
		formatter: formatter,
		stderr:    os.Stderr,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	if lc.config.Flags.Registered {
		lc.formatter.PrintRegistered(lc.registry.Keys())
		return nil
	}

	var selector string
	if len(args) > 0 {
		selector = args[0]
	}
	files, err := lc.discover(selector)
	if err != nil {
		return err
	}

	files = lc.filter.FilterByName(files, lc.config.Flags.NameFilter)
	if len(files) == 0 {
		fmt.Fprintln(lc.stderr, color.YellowString("No examples found"))
		return nil
	}

	entries := make([]ui.ListEntry, 0, len(files))
	for _, file := range files {
		entry := ui.ListEntry{Path: file}
		key, err := discovery.KeyForPath(file)
		if err != nil {
			entry.Problem = err.Error()
		} else {
			entry.Key = key
			entry.Registered = lc.registry.Has(key)
		}
		entries = append(entries, entry)
	}

	switch lc.config.Flags.Format {
	case "", "tree":
		return lc.formatter.PrintExampleList(entries, lc.config.Flags.Variants)
	default:
		return lc.formatter.EncodeList(entries, lc.config.Flags.Format)
	}
}

// discover returns the project-relative example files a selector names
func (lc *ListCommand) discover(selector string) ([]string, error) {
	selection := discovery.ParseSelector(selector)
	switch selection.Kind {
	case discovery.SelectFile:
		rel, err := discovery.ProjectRelative(lc.config.ProjectPath, selection.Path)
		if err != nil {
			return nil, err
		}
		return []string{rel}, nil
	case discovery.SelectDirectory:
		rel, err := discovery.ProjectRelative(lc.config.ProjectPath, selection.Path)
		if err != nil {
			return nil, err
		}
		return lc.scan(lc.config.ProjectFile(rel))
	default:
		var files []string
		for _, root := range lc.config.CollectionPaths() {
			found, err := lc.scan(root)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		}
		return files, nil
	}
}

func (lc *ListCommand) scan(root string) ([]string, error) {
	found, err := lc.scanner.Scan(root)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(found))
	for _, file := range found {
		rel, err := relativeTo(lc.config.ProjectPath, file)
		if err != nil {
			return nil, err
		}
		files = append(files, rel)
	}
	return files, nil
}
