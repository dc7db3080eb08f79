package filter_packages

import (
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

type PackageFilter interface {
	Apply(packages []domain.RatePackage, teeTime time.Time) []domain.RatePackage
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
