package domain

import "time"

// ExampleRun is the outcome of invoking a single example's entry point
type ExampleRun struct {
	Key      string        `json:"key" yaml:"key"`
	Path     string        `json:"path" yaml:"path"`
	Output   string        `json:"output" yaml:"output"`
	Success  bool          `json:"success" yaml:"success"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// RunReport is the transcript of one harness invocation. A run that aborted
// holds the examples executed up to and including the failing one.
type RunReport struct {
	ID        string        `json:"id"`
	Selector  string        `json:"selector"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Examples  []ExampleRun  `json:"examples"`
	Failed    bool          `json:"failed"`
	Error     string        `json:"error,omitempty"`
}

// Keys returns the keys of the executed examples in execution order.
func (r *RunReport) Keys() []string {
	keys := make([]string, 0, len(r.Examples))
	for _, e := range r.Examples {
		keys = append(keys, e.Key)
	}
	return keys
}
