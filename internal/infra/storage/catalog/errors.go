package catalog

import "errors"

var (
	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = errors.New("catalog.repository: class not found")

	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("catalog.repository: course not found")

	// ErrInstructorNotFound возвращается, когда преподаватель не найден
	ErrInstructorNotFound = errors.New("catalog.repository: instructor not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
