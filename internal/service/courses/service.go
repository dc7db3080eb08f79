package courses

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	courseRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/course"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/courses/models"
)

// Service сервис партнёрских полей
type Service struct {
	courseRepo CourseRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса полей
func NewService(courseRepo CourseRepository, logger Logger) *Service {
	return &Service{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// List возвращает активные поля, опционально одного провайдера
func (s *Service) List(ctx context.Context, req *models.ListCoursesRequest) (*models.CourseListResponse, error) {
	filter := domain.CourseFilter{}
	if req.ProviderType != nil {
		providerType := domain.ProviderType(*req.ProviderType)
		if !providerType.IsValid() {
			s.logger.Warn("List: invalid provider type=%s", *req.ProviderType)
			return nil, fmt.Errorf("%w: unknown provider type %q", ErrInvalidInput, *req.ProviderType)
		}
		filter.ProviderType = &providerType
	}

	courses, err := s.courseRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d courses", len(courses))
	return models.FromDomainCourseList(courses), nil
}

// GetActive получает активное поле по ID
func (s *Service) GetActive(ctx context.Context, id string) (*domain.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			s.logger.Warn("GetActive: course id=%s not found", id)
			return nil, ErrCourseNotFound
		}
		s.logger.Error("GetActive: repository error for course id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetActive - repository error: %v", ErrInternal, err)
	}

	if !course.Active {
		s.logger.Warn("GetActive: course id=%s is inactive", id)
		return nil, ErrCourseNotFound
	}

	return course, nil
}

// ListForSearch возвращает активные поля для поиска тии-таймов
// Пустой список ids означает все активные поля
func (s *Service) ListForSearch(ctx context.Context, ids []string) ([]*domain.Course, error) {
	courses, err := s.courseRepo.List(ctx, domain.CourseFilter{IDs: ids})
	if err != nil {
		s.logger.Error("ListForSearch: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListForSearch - repository error: %v", ErrInternal, err)
	}
	return courses, nil
}
