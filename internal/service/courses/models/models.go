package models

import (
	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// ListCoursesRequest запрос списка полей
type ListCoursesRequest struct {
	ProviderType *string `json:"providerType,omitempty"`
}

// CourseResponse поле в ответе API
type CourseResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	City         string `json:"city,omitempty"`
	ProviderType string `json:"providerType"`
}

// CourseListResponse список полей
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// FromDomainCourse конвертирует domain.Course в CourseResponse
func FromDomainCourse(course *domain.Course) CourseResponse {
	return CourseResponse{
		ID:           course.ID,
		Name:         course.Name,
		City:         course.City,
		ProviderType: string(course.ProviderType),
	}
}

// FromDomainCourseList конвертирует список полей
func FromDomainCourseList(courses []*domain.Course) *CourseListResponse {
	result := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		result = append(result, FromDomainCourse(c))
	}
	return &CourseListResponse{Courses: result}
}
