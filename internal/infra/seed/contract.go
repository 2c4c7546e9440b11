package seed

import (
	"context"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
)

// CatalogWriter запись элементов каталога (идемпотентная)
type CatalogWriter interface {
	UpsertClass(ctx context.Context, class *domain.YogaClass) error
	UpsertCourse(ctx context.Context, course *domain.YogaCourse) error
	UpsertInstructor(ctx context.Context, instructor *domain.Instructor) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
