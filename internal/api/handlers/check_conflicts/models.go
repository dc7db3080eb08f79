package check_conflicts

import "github.com/m04kA/SMC-TeeTimeService/internal/domain"

// ConflictsResponse HTTP response model
type ConflictsResponse struct {
	Conflicts   []domain.Conflict `json:"conflicts"`
	HasConflict bool              `json:"hasConflict"`
	HasBlocking bool              `json:"hasBlocking"`
}

// FromConflicts конвертирует конфликты в HTTP response
func FromConflicts(conflicts []domain.Conflict) *ConflictsResponse {
	if conflicts == nil {
		conflicts = []domain.Conflict{}
	}
	return &ConflictsResponse{
		Conflicts:   conflicts,
		HasConflict: len(conflicts) > 0,
		HasBlocking: domain.HasBlockingConflict(conflicts),
	}
}
