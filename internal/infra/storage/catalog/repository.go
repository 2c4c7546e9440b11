package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	"github.com/m04kA/SMC-YogaStore/pkg/dbmetrics"
	"github.com/m04kA/SMC-YogaStore/pkg/psqlbuilder"
	"github.com/m04kA/SMC-YogaStore/pkg/types"
)

var classColumns = []string{
	"id",
	"comments",
	"course_id",
	"date",
	"teacher_name",
	"day_of_week",
}

var courseColumns = []string{
	"id",
	"capacity",
	"day_of_week",
	"description",
	"duration_minutes",
	"price",
	"time",
	"type",
	"total_classes",
}

var instructorColumns = []string{
	"id",
	"name",
	"bio",
	"specialties",
	"experience_years",
	"certifications",
	"rating",
	"total_students",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога: занятия, курсы, преподаватели
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ============================================================
// Занятия
// ============================================================

// GetClassByID получает занятие по ID
func (r *Repository) GetClassByID(ctx context.Context, id string) (*domain.YogaClass, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(classColumns...).
		From(domain.CollectionClasses).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetClassByID - build select query: %w", ErrBuildQuery, err)
	}

	class, err := scanClass(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetClassByID - scan class: %w", ErrScanRow, err)
	}

	return class, nil
}

// SearchClasses ищет занятия по фильтру
// Пустой фильтр возвращает весь каталог.
//
// Семантика дат:
// - StartDate и EndDate: включительный диапазон
// - только StartDate: точное совпадение даты
// - только EndDate: все занятия до EndDate включительно
//
// Сортировка всегда явная: по дате (filter.Order, по умолчанию ASC), затем по id
func (r *Repository) SearchClasses(ctx context.Context, filter domain.ClassFilter) ([]*domain.YogaClass, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(classColumns...).
		From(domain.CollectionClasses)

	if filter.TeacherName != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"teacher_name": *filter.TeacherName})
	}
	if filter.DayOfWeek != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"day_of_week": string(*filter.DayOfWeek)})
	}

	// Даты передаём строкой YYYY-MM-DD, чтобы сравнение шло с типом DATE без часовых поясов
	switch {
	case filter.StartDate != nil && filter.EndDate != nil:
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"date": filter.StartDate.Format(domain.DateFormat)}).
			Where(squirrel.LtOrEq{"date": filter.EndDate.Format(domain.DateFormat)})
	case filter.StartDate != nil:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": filter.StartDate.Format(domain.DateFormat)})
	case filter.EndDate != nil:
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": filter.EndDate.Format(domain.DateFormat)})
	}

	if filter.SortOrderOrDefault() == domain.SortDesc {
		selectBuilder = selectBuilder.OrderBy("date DESC", "id DESC")
	} else {
		selectBuilder = selectBuilder.OrderBy("date ASC", "id ASC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: SearchClasses - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SearchClasses - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	classes := make([]*domain.YogaClass, 0)
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: SearchClasses - scan class: %w", ErrScanRow, err)
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SearchClasses - rows error: %w", ErrScanRow, err)
	}

	return classes, nil
}

// UpsertClass создает или обновляет занятие с заданным ID (используется при импорте)
func (r *Repository) UpsertClass(ctx context.Context, class *domain.YogaClass) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(domain.CollectionClasses).
		Columns(classColumns...).
		Values(
			class.ID,
			class.Comments,
			class.CourseID,
			class.Date.Format(domain.DateFormat),
			class.TeacherName,
			string(class.DayOfWeek),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			comments = EXCLUDED.comments,
			course_id = EXCLUDED.course_id,
			date = EXCLUDED.date,
			teacher_name = EXCLUDED.teacher_name,
			day_of_week = EXCLUDED.day_of_week`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertClass - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertClass - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// ============================================================
// Курсы
// ============================================================

// GetAllCourses получает все курсы
func (r *Repository) GetAllCourses(ctx context.Context) ([]*domain.YogaCourse, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courseColumns...).
		From(domain.CollectionCourses).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllCourses - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllCourses - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	courses := make([]*domain.YogaCourse, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllCourses - scan course: %w", ErrScanRow, err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllCourses - rows error: %w", ErrScanRow, err)
	}

	return courses, nil
}

// GetCourseByID получает курс по ID
func (r *Repository) GetCourseByID(ctx context.Context, id string) (*domain.YogaCourse, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courseColumns...).
		From(domain.CollectionCourses).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCourseByID - build select query: %w", ErrBuildQuery, err)
	}

	course, err := scanCourse(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourseByID - scan course: %w", ErrScanRow, err)
	}

	return course, nil
}

// UpsertCourse создает или обновляет курс с заданным ID (используется при импорте)
func (r *Repository) UpsertCourse(ctx context.Context, course *domain.YogaCourse) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(domain.CollectionCourses).
		Columns(courseColumns...).
		Values(
			course.ID,
			course.Capacity,
			string(course.DayOfWeek),
			course.Description,
			course.DurationMinutes,
			course.Price,
			string(course.Time),
			string(course.Type),
			course.TotalClasses,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			capacity = EXCLUDED.capacity,
			day_of_week = EXCLUDED.day_of_week,
			description = EXCLUDED.description,
			duration_minutes = EXCLUDED.duration_minutes,
			price = EXCLUDED.price,
			time = EXCLUDED.time,
			type = EXCLUDED.type,
			total_classes = EXCLUDED.total_classes`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertCourse - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertCourse - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// ============================================================
// Преподаватели
// ============================================================

// GetActiveInstructors получает активных преподавателей, отсортированных по имени
func (r *Repository) GetActiveInstructors(ctx context.Context) ([]*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(instructorColumns...).
		From(domain.CollectionInstructors).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveInstructors - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveInstructors - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	instructors := make([]*domain.Instructor, 0)
	for rows.Next() {
		instructor, err := scanInstructor(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetActiveInstructors - scan instructor: %w", ErrScanRow, err)
		}
		instructors = append(instructors, instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveInstructors - rows error: %w", ErrScanRow, err)
	}

	return instructors, nil
}

// GetInstructorByID получает преподавателя по ID
func (r *Repository) GetInstructorByID(ctx context.Context, id string) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(instructorColumns...).
		From(domain.CollectionInstructors).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetInstructorByID - build select query: %w", ErrBuildQuery, err)
	}

	instructor, err := scanInstructor(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetInstructorByID - scan instructor: %w", ErrScanRow, err)
	}

	return instructor, nil
}

// UpsertInstructor создает или обновляет преподавателя с заданным ID (используется при импорте)
func (r *Repository) UpsertInstructor(ctx context.Context, instructor *domain.Instructor) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(domain.CollectionInstructors).
		Columns(instructorColumns...).
		Values(
			instructor.ID,
			instructor.Name,
			instructor.Bio,
			pq.Array(instructor.Specialties),
			instructor.ExperienceYears,
			pq.Array(instructor.Certifications),
			instructor.Rating,
			instructor.TotalStudents,
			instructor.IsActive,
			instructor.CreatedAt,
			instructor.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			bio = EXCLUDED.bio,
			specialties = EXCLUDED.specialties,
			experience_years = EXCLUDED.experience_years,
			certifications = EXCLUDED.certifications,
			rating = EXCLUDED.rating,
			total_students = EXCLUDED.total_students,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertInstructor - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertInstructor - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// Вспомогательные методы

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClass(row rowScanner) (*domain.YogaClass, error) {
	var class domain.YogaClass
	var dayOfWeek string

	if err := row.Scan(
		&class.ID,
		&class.Comments,
		&class.CourseID,
		&class.Date,
		&class.TeacherName,
		&dayOfWeek,
	); err != nil {
		return nil, err
	}

	class.DayOfWeek = domain.DayOfWeek(dayOfWeek)
	return &class, nil
}

func scanCourse(row rowScanner) (*domain.YogaCourse, error) {
	var course domain.YogaCourse
	var dayOfWeek, courseTime, courseType string

	if err := row.Scan(
		&course.ID,
		&course.Capacity,
		&dayOfWeek,
		&course.Description,
		&course.DurationMinutes,
		&course.Price,
		&courseTime,
		&courseType,
		&course.TotalClasses,
	); err != nil {
		return nil, err
	}

	course.DayOfWeek = domain.DayOfWeek(dayOfWeek)
	course.Time = domain.CourseTime(courseTime)
	course.Type = domain.CourseType(courseType)
	return &course, nil
}

func scanInstructor(row rowScanner) (*domain.Instructor, error) {
	var instructor domain.Instructor
	var createdAt, updatedAt types.Timestamp

	if err := row.Scan(
		&instructor.ID,
		&instructor.Name,
		&instructor.Bio,
		pq.Array(&instructor.Specialties),
		&instructor.ExperienceYears,
		pq.Array(&instructor.Certifications),
		&instructor.Rating,
		&instructor.TotalStudents,
		&instructor.IsActive,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	instructor.CreatedAt = createdAt.Time
	instructor.UpdatedAt = updatedAt.Time
	return &instructor, nil
}
