package ui

import "refactorings/internal/domain"

// Viewer displays a run transcript
type Viewer interface {
	View(report *domain.RunReport) error
}
