package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"refactorings/internal/domain"
)

func TestHeaderText(t *testing.T) {
	started := time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		report   domain.RunReport
		contains []string
	}{
		{
			name:     "all collections",
			report:   domain.RunReport{StartedAt: started},
			contains: []string{"Run all (2024-03-01 10:30:00)", "[green]completed"},
		},
		{
			name:     "aborted file run",
			report:   domain.RunReport{Selector: "./a/one.go", StartedAt: started, Failed: true},
			contains: []string{"Run ./a/one.go", "[red]aborted"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := headerText(&tt.report)
			for _, want := range tt.contains {
				assert.Contains(t, header, want)
			}
		})
	}
}

func TestListItemText(t *testing.T) {
	assert.Equal(t, "[yellow]1.[white] A::One", listItemText(0, domain.ExampleRun{Key: "A::One", Success: true}))
	assert.Equal(t, "[red]3. ✗[white] A::Two", listItemText(2, domain.ExampleRun{Key: "A::Two"}))
}

func TestFormatExampleOutput(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got := formatExampleOutput(domain.ExampleRun{Output: "true\ntrue\n", Success: true})
		assert.Equal(t, "true\ntrue\n", got)
	})

	t.Run("error after partial output", func(t *testing.T) {
		got := formatExampleOutput(domain.ExampleRun{Output: "true", Error: "panic: boom"})
		assert.True(t, strings.HasPrefix(got, "true\n\n[red]✗ panic: boom"), got)
	})

	t.Run("tags in output are escaped", func(t *testing.T) {
		got := formatExampleOutput(domain.ExampleRun{Output: "[red]", Success: true})
		assert.NotEqual(t, "[red]", got)
	})
}

func TestTranscriptViewer_EmptyRun(t *testing.T) {
	err := NewTranscriptViewer().View(&domain.RunReport{ID: "run-1"})
	assert.ErrorContains(t, err, "run-1 executed no examples")
}
