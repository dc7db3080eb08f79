package search_tee_times

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/teetimes"
)

// maxConcurrentFetches ограничение одновременных запросов к провайдерам
const maxConcurrentFetches = 8

// UseCase use case поиска тии-таймов по всем провайдерам
type UseCase struct {
	courseService CourseService
	providers     map[domain.ProviderType]Provider
	filter        PackageFilter
	location      *time.Location
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// Поля провайдеров, которых нет в providers, попадают в предупреждения
// location часовой пояс полей, nil = UTC
func NewUseCase(
	courseService CourseService,
	providers []Provider,
	filter PackageFilter,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}

	byType := make(map[domain.ProviderType]Provider, len(providers))
	for _, p := range providers {
		byType[p.Type()] = p
	}

	return &UseCase{
		courseService: courseService,
		providers:     byType,
		filter:        filter,
		location:      location,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute опрашивает провайдеров всех подходящих полей параллельно
// Ошибка провайдера не прерывает поиск: поле пропускается и попадает в warnings
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchTeeTimes: date=%s, players=%d, courses=%v",
		req.Date.Format(domain.DateFormat), req.Players, req.CourseIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchTeeTimes: validation failed: %v", err)
		return nil, err
	}

	// Старты провайдеры отдают по часам поля, поэтому "сейчас" тоже берём по часам поля
	now := uc.timeProvider.Now().In(uc.location)
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("SearchTeeTimes: date validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем активные поля
	courses, err := uc.courseService.ListForSearch(ctx, req.CourseIDs)
	if err != nil {
		uc.logger.Error("SearchTeeTimes: failed to list courses: %v", err)
		return nil, fmt.Errorf("%w: failed to list courses: %v", ErrInternal, err)
	}

	// 3. Параллельно опрашиваем провайдеров
	var (
		mu       sync.Mutex
		found    = make([]domain.TeeTime, 0)
		warnings = make([]Warning, 0)
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentFetches)

	for _, course := range courses {
		course := course
		group.Go(func() error {
			teeTimes, err := uc.fetch(groupCtx, course, req)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				uc.logger.Warn("SearchTeeTimes: course=%s provider=%s failed: %v", course.ID, course.ProviderType, err)
				warnings = append(warnings, Warning{
					CourseID:     course.ID,
					CourseName:   course.Name,
					ProviderType: course.ProviderType,
					Message:      err.Error(),
				})
				return nil
			}
			found = append(found, teeTimes...)
			return nil
		})
	}
	_ = group.Wait()

	// 4. Фильтруем по вместимости и пакетам, сортируем
	result := selectBookable(found, req.Players, uc.filter, req.Date, now)
	sortTeeTimes(result)

	uc.logger.Info("SearchTeeTimes: %d tee times from %d courses, %d warnings",
		len(result), len(courses), len(warnings))

	return &Response{
		Date:     req.Date,
		Players:  req.Players,
		TeeTimes: result,
		Warnings: warnings,
	}, nil
}

func (uc *UseCase) fetch(ctx context.Context, course *domain.Course, req *Request) ([]domain.TeeTime, error) {
	provider, ok := uc.providers[course.ProviderType]
	if !ok {
		return nil, fmt.Errorf("provider %s is not enabled", course.ProviderType)
	}

	return provider.FetchTeeTimes(ctx, teetimes.Query{
		Course:  *course,
		Date:    req.Date,
		Players: req.Players,
	})
}
