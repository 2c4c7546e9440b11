package catalog

import (
	"context"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetClassByID(ctx context.Context, id string) (*domain.YogaClass, error)
	SearchClasses(ctx context.Context, filter domain.ClassFilter) ([]*domain.YogaClass, error)
	GetAllCourses(ctx context.Context) ([]*domain.YogaCourse, error)
	GetCourseByID(ctx context.Context, id string) (*domain.YogaCourse, error)
	GetActiveInstructors(ctx context.Context) ([]*domain.Instructor, error)
	GetInstructorByID(ctx context.Context, id string) (*domain.Instructor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
