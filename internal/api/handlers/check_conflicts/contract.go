package check_conflicts

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

type CartService interface {
	CheckConflicts(ctx context.Context, sessionID, courseID, date, teeTime string) ([]domain.Conflict, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
