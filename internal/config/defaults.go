package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultExampleExt is the extension marking an example file
	DefaultExampleExt = ".go"
	// DefaultOutputJSONFile is the default run transcript file name
	DefaultOutputJSONFile = "refactor-run.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// EnvFile is read from the project path when present
	EnvFile = ".env"
)

// DefaultCollections are the directories run when no selector is given
var DefaultCollections = []string{
	"first_set_of_refactorings",
}

// DefaultSkipFiles are file names never treated as examples
var DefaultSkipFiles = []string{
	"doc.go",
}

// DefaultSkipSuffixes are file name suffixes never treated as examples
var DefaultSkipSuffixes = []string{
	"_test.go",
}

// DefaultPathsToIgnore are directories skipped when scanning for examples
var DefaultPathsToIgnore = []string{
	"testdata",
	"vendor",
	"node_modules",
}
