package list_courses

import (
	"context"

	"github.com/m04kA/SMC-YogaStore/internal/service/catalog/models"
)

type CatalogService interface {
	ListCourses(ctx context.Context) (*models.CourseListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
