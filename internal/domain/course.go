package domain

import "time"

// Course a partner golf course and the provider that owns its inventory
type Course struct {
	ID               string
	Name             string
	City             string
	ProviderType     ProviderType
	ProviderCourseID string // course identifier inside the provider's API
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CourseFilter filter for listing courses
type CourseFilter struct {
	IDs             []string // empty = all courses
	ProviderType    *ProviderType
	IncludeInactive bool
}
