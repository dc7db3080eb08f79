package courses

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// CourseRepository интерфейс репозитория полей
type CourseRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context, filter domain.CourseFilter) ([]*domain.Course, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
