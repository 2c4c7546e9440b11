package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	catalogRepo "github.com/m04kA/SMC-YogaStore/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-YogaStore/internal/service/catalog/models"
)

// Service сервис чтения каталога: занятия, курсы, инструкторы
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListClasses возвращает весь каталог занятий, отсортированный по дате
func (s *Service) ListClasses(ctx context.Context) (*models.ClassListResponse, error) {
	return s.SearchClasses(ctx, &models.SearchClassesRequest{})
}

// GetClass получает занятие по ID
func (s *Service) GetClass(ctx context.Context, id string) (*models.ClassResponse, error) {
	s.logger.Info("GetClass: fetching class id=%s", id)

	class, err := s.catalogRepo.GetClassByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrClassNotFound) {
			s.logger.Warn("GetClass: class id=%s not found", id)
			return nil, ErrClassNotFound
		}
		s.logger.Error("GetClass: repository error for class id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetClass - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClass(class), nil
}

// SearchClasses ищет занятия по преподавателю, дню недели и периоду
// Параметры валидируются до обращения к хранилищу
func (s *Service) SearchClasses(ctx context.Context, req *models.SearchClassesRequest) (*models.ClassListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("SearchClasses: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	classes, err := s.search(ctx, filter)
	if err != nil {
		return nil, err
	}

	return models.FromDomainClassList(classes), nil
}

// SearchByTeacher возвращает занятия преподавателя
func (s *Service) SearchByTeacher(ctx context.Context, teacherName string) (*models.ClassListResponse, error) {
	if strings.TrimSpace(teacherName) == "" {
		return nil, fmt.Errorf("%w: empty teacher name", ErrInvalidInput)
	}
	return s.SearchClasses(ctx, &models.SearchClassesRequest{TeacherName: &teacherName})
}

// SearchByDayOfWeek возвращает занятия в указанный день недели
func (s *Service) SearchByDayOfWeek(ctx context.Context, day string) (*models.ClassListResponse, error) {
	if strings.TrimSpace(day) == "" {
		return nil, fmt.Errorf("%w: empty day of week", ErrInvalidInput)
	}
	return s.SearchClasses(ctx, &models.SearchClassesRequest{DayOfWeek: &day})
}

// SearchByDateRange возвращает занятия за период
// Без endDate ищется точное совпадение со startDate
func (s *Service) SearchByDateRange(ctx context.Context, startDate string, endDate *string) (*models.ClassListResponse, error) {
	if strings.TrimSpace(startDate) == "" {
		return nil, fmt.Errorf("%w: empty start date", ErrInvalidInput)
	}
	return s.SearchClasses(ctx, &models.SearchClassesRequest{StartDate: &startDate, EndDate: endDate})
}

// Search свободный поиск по строке запроса
// Последовательно пробует: имя преподавателя, день недели, дата.
// Возвращается первый непустой результат.
func (s *Service) Search(ctx context.Context, query string) (*models.ClassListResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", ErrInvalidInput)
	}
	if len(query) > domain.MaxSearchQuery {
		return nil, fmt.Errorf("%w: search query longer than %d", ErrInvalidInput, domain.MaxSearchQuery)
	}

	s.logger.Info("Search: query=%q", query)

	classes, err := s.search(ctx, domain.ClassFilter{TeacherName: &query})
	if err != nil {
		return nil, err
	}

	if len(classes) == 0 {
		if day, ok := domain.ParseDayOfWeek(query); ok {
			classes, err = s.search(ctx, domain.ClassFilter{DayOfWeek: &day})
			if err != nil {
				return nil, err
			}
		}
	}

	if len(classes) == 0 {
		if date, err := models.ParseDate(query); err == nil {
			classes, err = s.search(ctx, domain.ClassFilter{StartDate: &date})
			if err != nil {
				return nil, err
			}
		}
	}

	s.logger.Info("Search: query=%q matched %d classes", query, len(classes))
	return models.FromDomainClassList(classes), nil
}

func (s *Service) search(ctx context.Context, filter domain.ClassFilter) ([]*domain.YogaClass, error) {
	classes, err := s.catalogRepo.SearchClasses(ctx, filter)
	if err != nil {
		s.logger.Error("SearchClasses: repository error: %v", err)
		return nil, fmt.Errorf("%w: SearchClasses - repository error: %v", ErrInternal, err)
	}
	return classes, nil
}

// ListCourses возвращает все курсы
func (s *Service) ListCourses(ctx context.Context) (*models.CourseListResponse, error) {
	courses, err := s.catalogRepo.GetAllCourses(ctx)
	if err != nil {
		s.logger.Error("ListCourses: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCourses - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourseList(courses), nil
}

// GetCourse получает курс по ID
func (s *Service) GetCourse(ctx context.Context, id string) (*models.CourseResponse, error) {
	course, err := s.catalogRepo.GetCourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCourseNotFound) {
			s.logger.Warn("GetCourse: course id=%s not found", id)
			return nil, ErrCourseNotFound
		}
		s.logger.Error("GetCourse: repository error for course id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetCourse - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourse(course), nil
}

// ListInstructors возвращает активных инструкторов
func (s *Service) ListInstructors(ctx context.Context) (*models.InstructorListResponse, error) {
	instructors, err := s.catalogRepo.GetActiveInstructors(ctx)
	if err != nil {
		s.logger.Error("ListInstructors: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListInstructors - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInstructorList(instructors), nil
}

// GetInstructor получает инструктора по ID
func (s *Service) GetInstructor(ctx context.Context, id string) (*models.InstructorResponse, error) {
	instructor, err := s.catalogRepo.GetInstructorByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrInstructorNotFound) {
			s.logger.Warn("GetInstructor: instructor id=%s not found", id)
			return nil, ErrInstructorNotFound
		}
		s.logger.Error("GetInstructor: repository error for instructor id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetInstructor - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInstructor(instructor), nil
}
