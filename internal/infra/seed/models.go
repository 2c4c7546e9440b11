package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	"github.com/m04kA/SMC-YogaStore/pkg/types"
)

// Export содержимое файла экспорта коллекций каталога
// Коллекции "classes" и "courses" принимаются как синонимы yogaClasses и yogaCourses
type Export struct {
	YogaClasses []ClassDocument      `json:"yogaClasses"`
	Classes     []ClassDocument      `json:"classes"`
	YogaCourses []CourseDocument     `json:"yogaCourses"`
	Courses     []CourseDocument     `json:"courses"`
	Instructors []InstructorDocument `json:"instructors"`
}

// ClassDocument документ коллекции yogaClasses
type ClassDocument struct {
	ID          string          `json:"id"`
	Comments    string          `json:"comments"`
	CourseID    string          `json:"courseId"`
	Date        types.Timestamp `json:"date"`
	TeacherName string          `json:"teacherName"`
	DayOfWeek   string          `json:"dayOfWeek"`
}

// CourseDocument документ коллекции yogaCourses
type CourseDocument struct {
	ID           string  `json:"id"`
	Capacity     int     `json:"capacity"`
	DayOfWeek    string  `json:"dayOfWeek"`
	Description  string  `json:"description"`
	Duration     int     `json:"duration"`
	Price        float64 `json:"price"`
	Time         string  `json:"time"`
	Type         string  `json:"type"`
	TotalClasses int     `json:"totalClasses"`
}

// InstructorDocument документ коллекции instructors
type InstructorDocument struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Bio            string           `json:"bio"`
	Specialties    []string         `json:"specialties"`
	Experience     int              `json:"experience"`
	Certifications []string         `json:"certifications"`
	Rating         float64          `json:"rating"`
	TotalStudents  int              `json:"totalStudents"`
	IsActive       *bool            `json:"isActive"`
	CreatedAt      *types.Timestamp `json:"createdAt"`
	UpdatedAt      *types.Timestamp `json:"updatedAt"`
}

// AllClasses объединяет канонический и синонимичный ключи
func (e *Export) AllClasses() []ClassDocument {
	return append(append([]ClassDocument{}, e.YogaClasses...), e.Classes...)
}

// AllCourses объединяет канонический и синонимичный ключи
func (e *Export) AllCourses() []CourseDocument {
	return append(append([]CourseDocument{}, e.YogaCourses...), e.Courses...)
}

// ToDomain конвертирует документ занятия в domain модель
// День недели вычисляется из даты, если не указан
func (d *ClassDocument) ToDomain() (*domain.YogaClass, error) {
	if strings.TrimSpace(d.ID) == "" {
		return nil, fmt.Errorf("%w: class without id", ErrInvalidDocument)
	}
	if d.Date.IsZero() {
		return nil, fmt.Errorf("%w: class %s has no date", ErrInvalidDocument, d.ID)
	}

	date := d.Date.UTC().Truncate(24 * time.Hour)

	day := domain.DayOfWeekFromTime(date)
	if d.DayOfWeek != "" {
		parsed, ok := domain.ParseDayOfWeek(d.DayOfWeek)
		if !ok {
			return nil, fmt.Errorf("%w: class %s has unknown dayOfWeek %q", ErrInvalidDocument, d.ID, d.DayOfWeek)
		}
		day = parsed
	}

	return &domain.YogaClass{
		ID:          d.ID,
		Comments:    d.Comments,
		CourseID:    d.CourseID,
		Date:        date,
		TeacherName: d.TeacherName,
		DayOfWeek:   day,
	}, nil
}

// ToDomain конвертирует документ курса в domain модель
func (d *CourseDocument) ToDomain() (*domain.YogaCourse, error) {
	if strings.TrimSpace(d.ID) == "" {
		return nil, fmt.Errorf("%w: course without id", ErrInvalidDocument)
	}

	day, ok := domain.ParseDayOfWeek(d.DayOfWeek)
	if !ok {
		return nil, fmt.Errorf("%w: course %s has unknown dayOfWeek %q", ErrInvalidDocument, d.ID, d.DayOfWeek)
	}

	courseType := domain.CourseType(strings.ToUpper(d.Type))
	if !courseType.IsValid() {
		return nil, fmt.Errorf("%w: course %s has unknown type %q", ErrInvalidDocument, d.ID, d.Type)
	}

	courseTime := domain.CourseTime(d.Time)
	if !courseTime.IsValid() {
		return nil, fmt.Errorf("%w: course %s has unknown time %q", ErrInvalidDocument, d.ID, d.Time)
	}

	return &domain.YogaCourse{
		ID:              d.ID,
		Capacity:        d.Capacity,
		DayOfWeek:       day,
		Description:     d.Description,
		DurationMinutes: d.Duration,
		Price:           d.Price,
		Time:            courseTime,
		Type:            courseType,
		TotalClasses:    d.TotalClasses,
	}, nil
}

// ToDomain конвертирует документ инструктора в domain модель
// Отсутствующий isActive считается true
func (d *InstructorDocument) ToDomain(now time.Time) (*domain.Instructor, error) {
	if strings.TrimSpace(d.ID) == "" {
		return nil, fmt.Errorf("%w: instructor without id", ErrInvalidDocument)
	}
	if strings.TrimSpace(d.Name) == "" {
		return nil, fmt.Errorf("%w: instructor %s has no name", ErrInvalidDocument, d.ID)
	}

	instructor := &domain.Instructor{
		ID:              d.ID,
		Name:            d.Name,
		Bio:             d.Bio,
		Specialties:     nonNil(d.Specialties),
		ExperienceYears: d.Experience,
		Certifications:  nonNil(d.Certifications),
		Rating:          d.Rating,
		TotalStudents:   d.TotalStudents,
		IsActive:        d.IsActive == nil || *d.IsActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if d.CreatedAt != nil {
		instructor.CreatedAt = d.CreatedAt.Time
	}
	if d.UpdatedAt != nil {
		instructor.UpdatedAt = d.UpdatedAt.Time
	}

	return instructor, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
