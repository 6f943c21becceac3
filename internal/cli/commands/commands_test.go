package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"refactorings/internal/cli"
	"refactorings/internal/config"
	"refactorings/internal/discovery"
	"refactorings/internal/domain"
	"refactorings/internal/execution"
	"refactorings/internal/registry"
	"refactorings/internal/storage"
	"refactorings/internal/ui"
)

type fakeRunner struct {
	selector string
	progress execution.Progress
	report   *domain.RunReport
	err      error
}

func (f *fakeRunner) SelectAndRun(selector string) (*domain.RunReport, error) {
	f.selector = selector
	return f.report, f.err
}

func (f *fakeRunner) SetProgress(progress execution.Progress) {
	f.progress = progress
}

type memoryStorage struct {
	saved *domain.RunReport
	err   error
}

func (m *memoryStorage) Save(report *domain.RunReport) error {
	m.saved = report
	return m.err
}

func (m *memoryStorage) Load() (*domain.RunReport, error) {
	if m.saved == nil {
		return nil, storage.ErrNoTranscript
	}
	return m.saved, nil
}

type recordingViewer struct {
	viewed *domain.RunReport
}

func (v *recordingViewer) View(report *domain.RunReport) error {
	v.viewed = report
	return nil
}

func newRunCommand(r *fakeRunner, st storage.Storage, flags config.Flags) *RunCommand {
	cfg := config.New()
	cfg.Flags = flags
	rc := NewRunCommand(cfg, r, st, zap.NewNop())
	rc.stderr = io.Discard
	return rc
}

func TestRunCommand_Execute(t *testing.T) {
	report := &domain.RunReport{ID: "run-1", Examples: []domain.ExampleRun{{Key: "A::One", Success: true}}}

	tests := []struct {
		name         string
		args         []string
		flags        config.Flags
		runErr       error
		wantSelector string
		wantSaved    bool
		wantProgress bool
		wantErr      error
	}{
		{
			name:      "all collections",
			wantSaved: true,
		},
		{
			name:         "selector is passed through",
			args:         []string{"first_set_of_refactorings/split_phase.go"},
			wantSelector: "first_set_of_refactorings/split_phase.go",
			wantSaved:    true,
		},
		{
			name:  "no save",
			flags: config.Flags{NoSave: true},
		},
		{
			name:         "progress",
			flags:        config.Flags{Progress: true},
			wantSaved:    true,
			wantProgress: true,
		},
		{
			name:      "failed run is still saved",
			runErr:    execution.ErrExampleExecutionFailure,
			wantSaved: true,
			wantErr:   execution.ErrExampleExecutionFailure,
		},
		{
			name:      "missing entry point",
			runErr:    registry.ErrEntryPointNotFound,
			wantSaved: true,
			wantErr:   registry.ErrEntryPointNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{report: report, err: tt.runErr}
			st := &memoryStorage{}

			err := newRunCommand(r, st, tt.flags).Execute(&cobra.Command{}, tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantSelector, r.selector)
			assert.Equal(t, tt.wantSaved, st.saved != nil)
			assert.Equal(t, tt.wantProgress, r.progress != nil)
		})
	}
}

func TestRunCommand_SaveFailureDoesNotFailRun(t *testing.T) {
	r := &fakeRunner{report: &domain.RunReport{ID: "run-1"}}
	st := &memoryStorage{err: errors.New("disk full")}

	assert.NoError(t, newRunCommand(r, st, config.Flags{}).Execute(&cobra.Command{}, nil))
}

// project writes example files into a temp project and returns its config
// and a sealed registry holding keys.
func project(t *testing.T, files []string, keys ...string) (*config.Config, *registry.Registry) {
	t.Helper()
	dir := t.TempDir()
	for _, file := range files {
		full := filepath.Join(dir, filepath.FromSlash(file))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("package x\n\ntype xBefore struct{}\n"), 0644))
	}

	cfg := config.New()
	cfg.ProjectPath = dir
	cfg.Collections = []string{"a"}

	reg := registry.New()
	for _, key := range keys {
		reg.MustRegister(key, func() domain.Suite {
			return domain.SuiteFunc(func(w io.Writer) error { return nil })
		})
	}
	reg.Seal()
	return cfg, reg
}

func newListCommand(cfg *config.Config, reg *registry.Registry) (*ListCommand, *bytes.Buffer) {
	color.NoColor = true
	var buf bytes.Buffer
	formatter := ui.NewFormatter(cfg, discovery.NewParser())
	formatter.SetOutput(&buf)

	lc := NewListCommand(cfg, discovery.NewScanner(cfg), discovery.NewFilter(), reg, formatter)
	lc.stderr = io.Discard
	return lc, &buf
}

func TestListCommand_Tree(t *testing.T) {
	cfg, reg := project(t, []string{"a/one.go", "a/b/two.go", "a/doc.go"}, "A::One")
	lc, buf := newListCommand(cfg, reg)

	require.NoError(t, lc.Execute(&cobra.Command{}, nil))

	out := buf.String()
	assert.Contains(t, out, "Found 2 example file(s)")
	assert.Contains(t, out, "a/b/two.go A::B::Two [missing]")
	assert.Contains(t, out, "a/one.go A::One\n")
	assert.NotContains(t, out, "doc.go")
}

func TestListCommand_JSON(t *testing.T) {
	cfg, reg := project(t, []string{"a/one.go", "a/Bad.go"}, "A::One")
	cfg.Flags.Format = "json"
	lc, buf := newListCommand(cfg, reg)

	require.NoError(t, lc.Execute(&cobra.Command{}, []string{"a"}))

	var entries []ui.ListEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "a/Bad.go", entries[0].Path)
	assert.NotEmpty(t, entries[0].Problem)
	assert.Equal(t, ui.ListEntry{Path: "a/one.go", Key: "A::One", Registered: true}, entries[1])
}

func TestListCommand_Registered(t *testing.T) {
	cfg, reg := project(t, nil, "A::One", "A::B::Two")
	cfg.Flags.Registered = true
	lc, buf := newListCommand(cfg, reg)

	require.NoError(t, lc.Execute(&cobra.Command{}, nil))
	assert.Contains(t, buf.String(), "A::B::Two  a/b/two.go")
	assert.Contains(t, buf.String(), "A::One  a/one.go")
}

func TestListCommand_Filter(t *testing.T) {
	cfg, reg := project(t, []string{"a/one.go", "a/two.go"})
	cfg.Flags.NameFilter = "two*"
	lc, buf := newListCommand(cfg, reg)

	require.NoError(t, lc.Execute(&cobra.Command{}, nil))
	assert.Contains(t, buf.String(), "Found 1 example file(s)")
	assert.NotContains(t, buf.String(), "one.go")
}

func TestListCommand_AbsolutePaths(t *testing.T) {
	tests := []struct {
		name     string
		selector func(dir string) string
		expected []ui.ListEntry
	}{
		{
			name:     "directory",
			selector: func(dir string) string { return filepath.Join(dir, "a", "b") },
			expected: []ui.ListEntry{{Path: "a/b/two.go", Key: "A::B::Two", Registered: true}},
		},
		{
			name:     "file",
			selector: func(dir string) string { return filepath.Join(dir, "a", "one.go") },
			expected: []ui.ListEntry{{Path: "a/one.go", Key: "A::One", Registered: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, reg := project(t, []string{"a/one.go", "a/b/two.go"}, "A::One", "A::B::Two")
			cfg.Flags.Format = "json"
			lc, buf := newListCommand(cfg, reg)

			require.NoError(t, lc.Execute(&cobra.Command{}, []string{tt.selector(cfg.ProjectPath)}))

			var entries []ui.ListEntry
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
			assert.Equal(t, tt.expected, entries)
		})
	}

	t.Run("outside the project", func(t *testing.T) {
		cfg, reg := project(t, []string{"a/one.go"}, "A::One")
		lc, _ := newListCommand(cfg, reg)

		err := lc.Execute(&cobra.Command{}, []string{filepath.Join(filepath.Dir(cfg.ProjectPath), "x.go")})
		assert.Error(t, err)
	})
}

func TestListCommand_MissingDirectory(t *testing.T) {
	cfg, reg := project(t, nil)
	lc, _ := newListCommand(cfg, reg)

	assert.Error(t, lc.Execute(&cobra.Command{}, []string{"nope"}))
}

func TestLastCommand_Execute(t *testing.T) {
	color.NoColor = true
	report := &domain.RunReport{
		ID:       "run-1",
		Examples: []domain.ExampleRun{{Key: "A::One", Path: "a/one.go", Output: "true\n", Success: true}},
	}

	t.Run("viewer", func(t *testing.T) {
		viewer := &recordingViewer{}
		cfg := config.New()
		lc := NewLastCommand(cfg, &memoryStorage{saved: report}, ui.NewFormatter(cfg, discovery.NewParser()), viewer)

		require.NoError(t, lc.Execute(&cobra.Command{}, nil))
		assert.Same(t, report, viewer.viewed)
	})

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := config.New()
		cfg.Flags.Plain = true
		formatter := ui.NewFormatter(cfg, discovery.NewParser())
		formatter.SetOutput(&buf)
		viewer := &recordingViewer{}

		require.NoError(t, NewLastCommand(cfg, &memoryStorage{saved: report}, formatter, viewer).Execute(&cobra.Command{}, nil))
		assert.Nil(t, viewer.viewed)
		assert.Contains(t, buf.String(), "A::One (a/one.go)")
		assert.Contains(t, buf.String(), "true\n")
	})

	t.Run("nothing saved", func(t *testing.T) {
		cfg := config.New()
		lc := NewLastCommand(cfg, &memoryStorage{}, ui.NewFormatter(cfg, discovery.NewParser()), &recordingViewer{})
		assert.ErrorIs(t, lc.Execute(&cobra.Command{}, nil), storage.ErrNoTranscript)
	})
}

func newRoot(cfg *config.Config, reg *registry.Registry) *cobra.Command {
	root := &cobra.Command{Use: "refactor"}
	var flags cli.Flags
	NewCommands(cfg, reg).Register(root, &flags)
	return root
}

func TestRegister_RunSavesTranscript(t *testing.T) {
	cfg, reg := project(t, []string{"a/one.go", "a/two.go"}, "A::One", "A::Two")
	root := newRoot(config.New(), reg)
	root.SetArgs([]string{"run", "-C", cfg.ProjectPath, "a"})

	require.NoError(t, root.Execute())

	cfg.Flags = config.Flags{}
	report, err := storage.NewJSONStorage(cfg).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"A::One", "A::Two"}, report.Keys())
	assert.Equal(t, "a", report.Selector)
}

func TestRegister_RootRunsWithNoSave(t *testing.T) {
	cfg, reg := project(t, []string{"a/one.go"}, "A::One")
	root := newRoot(config.New(), reg)
	root.SetArgs([]string{"-C", cfg.ProjectPath, "--no-save", "a/one.go"})

	require.NoError(t, root.Execute())
	_, err := os.Stat(cfg.OutputPath())
	assert.True(t, os.IsNotExist(err))
}

func TestRegister_MissingEntryPoint(t *testing.T) {
	cfg, reg := project(t, []string{"a/one.go"})
	root := newRoot(config.New(), reg)
	root.SetArgs([]string{"-C", cfg.ProjectPath, "--no-save", "a"})

	assert.ErrorIs(t, root.Execute(), registry.ErrEntryPointNotFound)
}

func TestRegister_TooManyArgs(t *testing.T) {
	cfg, reg := project(t, nil)
	root := newRoot(config.New(), reg)
	root.SetArgs([]string{"-C", cfg.ProjectPath, "a", "b"})

	assert.Error(t, root.Execute())
}

func TestRegister_UnsealedRegistry(t *testing.T) {
	cfg, _ := project(t, nil)
	root := newRoot(config.New(), registry.New())
	root.SetArgs([]string{"list", "-C", cfg.ProjectPath})

	assert.Error(t, root.Execute())
}
