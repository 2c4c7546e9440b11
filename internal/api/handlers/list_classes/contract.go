package list_classes

import (
	"context"

	"github.com/m04kA/SMC-YogaStore/internal/service/catalog/models"
)

type CatalogService interface {
	SearchClasses(ctx context.Context, req *models.SearchClassesRequest) (*models.ClassListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
