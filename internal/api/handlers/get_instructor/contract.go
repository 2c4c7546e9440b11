package get_instructor

import (
	"context"

	"github.com/m04kA/SMC-YogaStore/internal/service/catalog/models"
)

type CatalogService interface {
	GetInstructor(ctx context.Context, id string) (*models.InstructorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
