package offers

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/teetimes"
)

// Provider клиент провайдера тии-таймов
type Provider interface {
	Type() domain.ProviderType
	FetchTeeTimes(ctx context.Context, q teetimes.Query) ([]domain.TeeTime, error)
}

// PackageFilter проверка доступности пакета для времени старта
type PackageFilter interface {
	IsEligible(pkg domain.RatePackage, teeTime time.Time) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
