package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator возвращает общий экземпляр валидатора
// Экземпляр кеширует метаданные структур, поэтому создаётся один раз
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Struct валидирует структуру по тегам validate
func Struct(v interface{}) error {
	return Validator().Struct(v)
}

// Email проверяет, что строка является email не длиннее maxLen
func Email(email string, maxLen int) error {
	return Validator().Var(email, fmt.Sprintf("required,max=%d,email", maxLen))
}

// Message превращает ошибку валидатора в короткое сообщение для клиента
func Message(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := fe.Field()
		if field == "" {
			field = "value"
		}
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s", field, fe.Tag()))
		}
	}

	return strings.Join(parts, "; ")
}
