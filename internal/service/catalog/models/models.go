package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
)

var (
	// ErrInvalidDayOfWeek возвращается при неизвестном дне недели
	ErrInvalidDayOfWeek = errors.New("invalid day of week")

	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidDateRange возвращается, когда начало периода позже конца
	ErrInvalidDateRange = errors.New("startDate is after endDate")

	// ErrInvalidOrder возвращается при неизвестном направлении сортировки
	ErrInvalidOrder = errors.New("invalid order, expected asc or desc")
)

// Request модели

// SearchClassesRequest параметры поиска занятий в строковом виде (как пришли из query)
type SearchClassesRequest struct {
	TeacherName *string `json:"teacherName,omitempty"`
	DayOfWeek   *string `json:"dayOfWeek,omitempty"`
	StartDate   *string `json:"startDate,omitempty"` // "2024-02-01"
	EndDate     *string `json:"endDate,omitempty"`   // "2024-02-07"
	Order       *string `json:"order,omitempty"`     // asc | desc
}

// ToDomainFilter конвертирует request в domain фильтр с валидацией
func (r *SearchClassesRequest) ToDomainFilter() (domain.ClassFilter, error) {
	var filter domain.ClassFilter

	// Имя преподавателя сравнивается точно, без нормализации пробелов и регистра
	if r.TeacherName != nil && strings.TrimSpace(*r.TeacherName) != "" {
		name := *r.TeacherName
		filter.TeacherName = &name
	}

	if r.DayOfWeek != nil && strings.TrimSpace(*r.DayOfWeek) != "" {
		day, ok := domain.ParseDayOfWeek(*r.DayOfWeek)
		if !ok {
			return filter, fmt.Errorf("%w: %q", ErrInvalidDayOfWeek, *r.DayOfWeek)
		}
		filter.DayOfWeek = &day
	}

	start, err := parseOptionalDate(r.StartDate)
	if err != nil {
		return filter, err
	}
	end, err := parseOptionalDate(r.EndDate)
	if err != nil {
		return filter, err
	}
	if start != nil && end != nil && start.After(*end) {
		return filter, ErrInvalidDateRange
	}
	filter.StartDate = start
	filter.EndDate = end

	if r.Order != nil && *r.Order != "" {
		switch domain.SortOrder(strings.ToLower(*r.Order)) {
		case domain.SortAsc:
			filter.Order = domain.SortAsc
		case domain.SortDesc:
			filter.Order = domain.SortDesc
		default:
			return filter, fmt.Errorf("%w: %q", ErrInvalidOrder, *r.Order)
		}
	}

	return filter, nil
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Response модели

// ClassResponse ответ с данными занятия
type ClassResponse struct {
	ID          string `json:"id"`
	Comments    string `json:"comments"`
	CourseID    string `json:"courseId"`
	Date        string `json:"date"` // "2024-02-05"
	TeacherName string `json:"teacherName"`
	DayOfWeek   string `json:"dayOfWeek"`
}

// ClassListResponse ответ со списком занятий
type ClassListResponse struct {
	Classes []ClassResponse `json:"classes"`
}

// CourseResponse ответ с данными курса
type CourseResponse struct {
	ID              string  `json:"id"`
	Capacity        int     `json:"capacity"`
	DayOfWeek       string  `json:"dayOfWeek"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
	Time            string  `json:"time"`
	Type            string  `json:"type"`
	TotalClasses    int     `json:"totalClasses"`
}

// CourseListResponse ответ со списком курсов
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// InstructorResponse ответ с данными инструктора
type InstructorResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Bio             string    `json:"bio"`
	Specialties     []string  `json:"specialties"`
	ExperienceYears int       `json:"experience"`
	Certifications  []string  `json:"certifications"`
	Rating          float64   `json:"rating"`
	TotalStudents   int       `json:"totalStudents"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// InstructorListResponse ответ со списком инструкторов
type InstructorListResponse struct {
	Instructors []InstructorResponse `json:"instructors"`
}

// Методы конвертации

// FromDomainClass конвертирует domain модель занятия в DTO
func FromDomainClass(c *domain.YogaClass) *ClassResponse {
	if c == nil {
		return nil
	}

	return &ClassResponse{
		ID:          c.ID,
		Comments:    c.Comments,
		CourseID:    c.CourseID,
		Date:        c.DateString(),
		TeacherName: c.TeacherName,
		DayOfWeek:   string(c.DayOfWeek),
	}
}

// FromDomainClassList конвертирует список занятий в DTO
func FromDomainClassList(classes []*domain.YogaClass) *ClassListResponse {
	resp := &ClassListResponse{
		Classes: make([]ClassResponse, 0, len(classes)),
	}

	for _, class := range classes {
		if classResp := FromDomainClass(class); classResp != nil {
			resp.Classes = append(resp.Classes, *classResp)
		}
	}

	return resp
}

// FromDomainCourse конвертирует domain модель курса в DTO
func FromDomainCourse(c *domain.YogaCourse) *CourseResponse {
	if c == nil {
		return nil
	}

	return &CourseResponse{
		ID:              c.ID,
		Capacity:        c.Capacity,
		DayOfWeek:       string(c.DayOfWeek),
		Description:     c.Description,
		DurationMinutes: c.DurationMinutes,
		Price:           c.Price,
		Time:            string(c.Time),
		Type:            string(c.Type),
		TotalClasses:    c.TotalClasses,
	}
}

// FromDomainCourseList конвертирует список курсов в DTO
func FromDomainCourseList(courses []*domain.YogaCourse) *CourseListResponse {
	resp := &CourseListResponse{
		Courses: make([]CourseResponse, 0, len(courses)),
	}

	for _, course := range courses {
		if courseResp := FromDomainCourse(course); courseResp != nil {
			resp.Courses = append(resp.Courses, *courseResp)
		}
	}

	return resp
}

// FromDomainInstructor конвертирует domain модель инструктора в DTO
func FromDomainInstructor(i *domain.Instructor) *InstructorResponse {
	if i == nil {
		return nil
	}

	resp := &InstructorResponse{
		ID:              i.ID,
		Name:            i.Name,
		Bio:             i.Bio,
		Specialties:     i.Specialties,
		ExperienceYears: i.ExperienceYears,
		Certifications:  i.Certifications,
		Rating:          i.Rating,
		TotalStudents:   i.TotalStudents,
		IsActive:        i.IsActive,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}

	if resp.Specialties == nil {
		resp.Specialties = []string{}
	}
	if resp.Certifications == nil {
		resp.Certifications = []string{}
	}

	return resp
}

// FromDomainInstructorList конвертирует список инструкторов в DTO
func FromDomainInstructorList(instructors []*domain.Instructor) *InstructorListResponse {
	resp := &InstructorListResponse{
		Instructors: make([]InstructorResponse, 0, len(instructors)),
	}

	for _, instructor := range instructors {
		if instructorResp := FromDomainInstructor(instructor); instructorResp != nil {
			resp.Instructors = append(resp.Instructors, *instructorResp)
		}
	}

	return resp
}
