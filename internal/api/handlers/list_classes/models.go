package list_classes

import (
	"net/url"

	"github.com/m04kA/SMC-YogaStore/internal/service/catalog/models"
	"github.com/m04kA/SMC-YogaStore/pkg/ptr"
)

// Query параметры фильтрации каталога
const (
	paramTeacherName = "teacherName"
	paramDayOfWeek   = "dayOfWeek"
	paramStartDate   = "startDate"
	paramEndDate     = "endDate"
	paramOrder       = "order"
)

// requestFromQuery собирает запрос к сервису из query параметров
// Отсутствующий параметр остаётся nil
func requestFromQuery(q url.Values) *models.SearchClassesRequest {
	return &models.SearchClassesRequest{
		TeacherName: optional(q, paramTeacherName),
		DayOfWeek:   optional(q, paramDayOfWeek),
		StartDate:   optional(q, paramStartDate),
		EndDate:     optional(q, paramEndDate),
		Order:       optional(q, paramOrder),
	}
}

func optional(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	return ptr.Ptr(q.Get(key))
}
