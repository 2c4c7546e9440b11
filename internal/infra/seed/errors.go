package seed

import "errors"

var (
	// ErrDecode возвращается, когда файл экспорта не является корректным JSON
	ErrDecode = errors.New("seed: failed to decode export")

	// ErrInvalidDocument возвращается, когда документ экспорта не проходит проверку
	ErrInvalidDocument = errors.New("seed: invalid document")

	// ErrImport возвращается при ошибке записи в хранилище
	ErrImport = errors.New("seed: import failed")
)
