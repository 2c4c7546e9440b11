package cart

import "errors"

var (
	// ErrClassNotFound возвращается, когда добавляемое занятие отсутствует в каталоге
	ErrClassNotFound = errors.New("class not found")

	// ErrCartItemNotFound возвращается, когда позиция корзины не найдена
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cart: internal error")
)
