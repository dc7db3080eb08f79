package search_tee_times

import (
	"context"

	searchTeeTimes "github.com/m04kA/SMC-TeeTimeService/internal/usecase/search_tee_times"
)

type SearchTeeTimesUseCase interface {
	Execute(ctx context.Context, req *searchTeeTimes.Request) (*searchTeeTimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
