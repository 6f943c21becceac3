package execution

import (
	"refactorings/internal/domain"
)

// Executor runs the examples picked by a run selector
type Executor interface {
	SelectAndRun(selector string) (*domain.RunReport, error)
}

// Progress receives updates while examples run
type Progress interface {
	Start(total int)
	Update(done int, key string)
	Finish()
}
