package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"refactorings/internal/domain"
)

// ErrNoTranscript is returned by Load when no run has been saved yet.
var ErrNoTranscript = errors.New("no previous run recorded")

// Save writes the run transcript to the configured JSON output file.
func (s *JSONStorage) Save(report *domain.RunReport) error {
	if report == nil {
		return errors.New("save transcript: nil report")
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal transcript: %w", err)
	}

	path := s.cfg.OutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

// Load reads the last run transcript from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunReport, error) {
	path := s.cfg.OutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoTranscript, path)
		}
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	var report domain.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}
	return &report, nil
}
