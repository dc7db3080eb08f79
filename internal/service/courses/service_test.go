package courses

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	courseRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/course"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/courses/models"
	"github.com/m04kA/SMC-TeeTimeService/pkg/logger"
	"github.com/m04kA/SMC-TeeTimeService/pkg/ptr"
)

type mockCourseRepository struct {
	mock.Mock
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	args := m.Called(ctx, id)
	course, _ := args.Get(0).(*domain.Course)
	return course, args.Error(1)
}

func (m *mockCourseRepository) List(ctx context.Context, filter domain.CourseFilter) ([]*domain.Course, error) {
	args := m.Called(ctx, filter)
	courses, _ := args.Get(0).([]*domain.Course)
	return courses, args.Error(1)
}

func TestService_List(t *testing.T) {
	repo := &mockCourseRepository{}
	zest := domain.ProviderZest
	repo.On("List", mock.Anything, domain.CourseFilter{ProviderType: &zest}).Return([]*domain.Course{
		{ID: "valderrama", Name: "Valderrama", ProviderType: domain.ProviderZest, Active: true},
	}, nil)

	svc := NewService(repo, logger.Nop())
	resp, err := svc.List(context.Background(), &models.ListCoursesRequest{ProviderType: ptr.Ptr("zest")})
	require.NoError(t, err)
	require.Len(t, resp.Courses, 1)
	assert.Equal(t, "zest", resp.Courses[0].ProviderType)
	repo.AssertExpectations(t)
}

func TestService_ListInvalidProvider(t *testing.T) {
	svc := NewService(&mockCourseRepository{}, logger.Nop())
	_, err := svc.List(context.Background(), &models.ListCoursesRequest{ProviderType: ptr.Ptr("unknown")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetActive(t *testing.T) {
	repo := &mockCourseRepository{}
	repo.On("GetByID", mock.Anything, "active").Return(&domain.Course{ID: "active", Active: true}, nil)
	repo.On("GetByID", mock.Anything, "closed").Return(&domain.Course{ID: "closed", Active: false}, nil)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, courseRepo.ErrCourseNotFound)
	repo.On("GetByID", mock.Anything, "broken").Return(nil, errors.New("connection reset"))

	svc := NewService(repo, logger.Nop())

	course, err := svc.GetActive(context.Background(), "active")
	require.NoError(t, err)
	assert.Equal(t, "active", course.ID)

	_, err = svc.GetActive(context.Background(), "closed")
	assert.ErrorIs(t, err, ErrCourseNotFound)

	_, err = svc.GetActive(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCourseNotFound)

	_, err = svc.GetActive(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrInternal)
}
