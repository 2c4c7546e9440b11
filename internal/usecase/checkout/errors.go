package checkout

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("checkout: invalid input data")

	// ErrEmptyCart возвращается, когда корзина владельца пуста
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrCheckoutConflict возвращается, когда та же попытка оформления
	// выполняется конкурентно. Повтор с тем же checkoutId вернёт готовое бронирование.
	ErrCheckoutConflict = errors.New("checkout: concurrent checkout conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("checkout: internal error")
)
