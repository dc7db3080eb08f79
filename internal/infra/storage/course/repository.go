package course

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TeeTimeService/pkg/psqlbuilder"
)

var courseColumns = []string{
	"id",
	"name",
	"city",
	"provider_type",
	"provider_course_id",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий партнёрских полей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория полей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает поле по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	course, err := scanCourse(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan course: %v", ErrScanRow, err)
	}

	return course, nil
}

// List получает поля по фильтру, отсортированные по названию
// По умолчанию возвращает только активные поля
func (r *Repository) List(ctx context.Context, filter domain.CourseFilter) ([]*domain.Course, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(courseColumns...).
		From("courses").
		OrderBy("name ASC, id ASC")

	if len(filter.IDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"id": filter.IDs})
	}
	if filter.ProviderType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"provider_type": *filter.ProviderType})
	}
	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courses := make([]*domain.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return courses, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCourse(row scanner) (*domain.Course, error) {
	var course domain.Course
	var city sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&course.ID,
		&course.Name,
		&city,
		&course.ProviderType,
		&course.ProviderCourseID,
		&course.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	course.City = city.String
	course.CreatedAt = createdAt.Time
	course.UpdatedAt = updatedAt.Time
	return &course, nil
}
