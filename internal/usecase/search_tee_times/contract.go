package search_tee_times

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/teetimes"
)

// CourseService сервис партнёрских полей
type CourseService interface {
	ListForSearch(ctx context.Context, ids []string) ([]*domain.Course, error)
}

// Provider клиент провайдера тии-таймов
type Provider interface {
	Type() domain.ProviderType
	FetchTeeTimes(ctx context.Context, q teetimes.Query) ([]domain.TeeTime, error)
}

// PackageFilter фильтр пакетов по времени старта
type PackageFilter interface {
	Apply(packages []domain.RatePackage, teeTime time.Time) []domain.RatePackage
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
