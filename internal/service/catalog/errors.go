package catalog

import "errors"

var (
	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = errors.New("class not found")

	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("course not found")

	// ErrInstructorNotFound возвращается, когда инструктор не найден
	ErrInstructorNotFound = errors.New("instructor not found")

	// ErrInvalidInput возвращается при некорректных параметрах поиска
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
