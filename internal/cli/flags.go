package cli

import "refactorings/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ProjectPath: f.ProjectPath,
		NameFilter:  f.NameFilter,
		Progress:    f.Progress,
		Verbose:     f.Verbose,
		NoSave:      f.NoSave,
		Registered:  f.Registered,
		Variants:    f.Variants,
		Format:      f.Format,
		Plain:       f.Plain,
	}
}
