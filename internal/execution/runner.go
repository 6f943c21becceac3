package execution

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"refactorings/internal/config"
	"refactorings/internal/discovery"
	"refactorings/internal/domain"
	"refactorings/internal/registry"
)

// ErrExampleExecutionFailure wraps any error or panic raised by an example's
// own logic. It aborts the run.
var ErrExampleExecutionFailure = errors.New("example execution failed")

// Runner discovers example files and invokes their entry points one after the
// other, in sorted path order. The first failure stops the run.
type Runner struct {
	config   *config.Config
	scanner  *discovery.Scanner
	filter   *discovery.Filter
	registry *registry.Registry
	logger   *zap.Logger
	out      io.Writer
	progress Progress
}

// NewRunner creates a new Runner
func NewRunner(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	reg *registry.Registry,
	logger *zap.Logger,
) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		config:   cfg,
		scanner:  scanner,
		filter:   filter,
		registry: reg,
		logger:   logger,
		out:      os.Stdout,
	}
}

// SetOutput sets where examples write their output
func (r *Runner) SetOutput(w io.Writer) {
	r.out = w
}

// SetLogger replaces the runner's logger
func (r *Runner) SetLogger(logger *zap.Logger) {
	r.logger = logger
}

// SetProgress sets the progress reporter for the runner
func (r *Runner) SetProgress(progress Progress) {
	r.progress = progress
}

// SelectAndRun interprets selector and runs what it selects: every default
// collection when empty, a single file when its last segment has a ".",
// otherwise every example beneath the named directory.
func (r *Runner) SelectAndRun(selector string) (*domain.RunReport, error) {
	selection := discovery.ParseSelector(selector)
	r.logger.Debug("selector parsed",
		zap.String("selector", selector),
		zap.Stringer("kind", selection.Kind),
		zap.String("path", selection.Path))

	switch selection.Kind {
	case discovery.SelectFile:
		return r.RunFile(selection.Path)
	case discovery.SelectDirectory:
		return r.RunDirectory(selection.Path)
	default:
		report := r.newReport(selector)
		var files []string
		for _, root := range r.config.CollectionPaths() {
			found, err := r.collect(root)
			if err != nil {
				return r.finish(report, err)
			}
			files = append(files, found...)
		}
		return r.finish(report, r.runFiles(report, files))
	}
}

// RunAll runs every example file beneath root
func (r *Runner) RunAll(root string) (*domain.RunReport, error) {
	report := r.newReport(root)
	rel, err := discovery.ProjectRelative(r.config.ProjectPath, root)
	if err != nil {
		return r.finish(report, err)
	}
	files, err := r.collect(r.config.ProjectFile(rel))
	if err != nil {
		return r.finish(report, err)
	}
	return r.finish(report, r.runFiles(report, files))
}

// RunDirectory is RunAll rooted at a normalized dir
func (r *Runner) RunDirectory(dir string) (*domain.RunReport, error) {
	return r.RunAll(discovery.NormalizePath(dir))
}

// RunFile runs exactly one example file
func (r *Runner) RunFile(path string) (*domain.RunReport, error) {
	report := r.newReport(path)

	rel, err := discovery.ProjectRelative(r.config.ProjectPath, path)
	if err != nil {
		return r.finish(report, err)
	}
	if _, err := os.Stat(r.config.ProjectFile(rel)); err != nil {
		return r.finish(report, fmt.Errorf("load example %s: %w", path, err))
	}
	return r.finish(report, r.runFiles(report, []string{rel}))
}

// collect lists the example files under the scan root as project-relative
// paths
func (r *Runner) collect(root string) ([]string, error) {
	found, err := r.scanner.Scan(root)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(found))
	for _, file := range found {
		rel, err := r.relative(file)
		if err != nil {
			return nil, err
		}
		files = append(files, rel)
	}

	files = r.filter.FilterByName(files, r.config.Flags.NameFilter)
	r.logger.Debug("examples discovered", zap.String("root", root), zap.Int("count", len(files)))
	return files, nil
}

// relative turns a scanned path, which carries the project path as prefix,
// into a path relative to the project without the "./" marker.
func (r *Runner) relative(path string) (string, error) {
	rel, err := filepath.Rel(r.config.ProjectPath, path)
	if err != nil {
		return "", fmt.Errorf("example %s is outside the project: %w", path, err)
	}
	return discovery.NormalizePath(rel), nil
}

func (r *Runner) runFiles(report *domain.RunReport, files []string) error {
	if r.progress != nil {
		r.progress.Start(len(files))
		defer r.progress.Finish()
	}

	for i, file := range files {
		if err := r.runOne(report, file); err != nil {
			return err
		}
		if r.progress != nil {
			r.progress.Update(i+1, report.Examples[len(report.Examples)-1].Key)
		}
	}
	return nil
}

func (r *Runner) runOne(report *domain.RunReport, file string) error {
	key, err := discovery.KeyForPath(file)
	if err != nil {
		return err
	}

	factory, err := r.registry.Lookup(key)
	if err != nil {
		report.Examples = append(report.Examples, domain.ExampleRun{
			Key:   key,
			Path:  file,
			Error: err.Error(),
		})
		return fmt.Errorf("%s: %w", file, err)
	}

	r.logger.Debug("running example", zap.String("key", key), zap.String("path", file))

	var buf bytes.Buffer
	start := time.Now()
	err = invoke(factory, io.MultiWriter(r.out, &buf))
	run := domain.ExampleRun{
		Key:      key,
		Path:     file,
		Output:   buf.String(),
		Success:  err == nil,
		Duration: time.Since(start),
	}
	if err != nil {
		run.Error = err.Error()
	}
	report.Examples = append(report.Examples, run)

	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExampleExecutionFailure, key, err)
	}

	r.logger.Debug("example finished", zap.String("key", key), zap.Duration("duration", run.Duration))
	return nil
}

// invoke constructs the suite and calls it, turning a panic into an error
func invoke(factory domain.Factory, w io.Writer) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return factory().Call(w)
}

func (r *Runner) newReport(selector string) *domain.RunReport {
	return &domain.RunReport{
		ID:        uuid.NewString(),
		Selector:  selector,
		StartedAt: time.Now(),
	}
}

func (r *Runner) finish(report *domain.RunReport, err error) (*domain.RunReport, error) {
	report.Duration = time.Since(report.StartedAt)
	if err != nil {
		report.Failed = true
		report.Error = err.Error()
		r.logger.Debug("run aborted", zap.Error(err))
		return report, err
	}
	return report, nil
}
