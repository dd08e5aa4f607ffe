package domain

import (
	"errors"
	"fmt"
)

// ValidationError — ошибка валидации входных данных клиента.
// На уровне HTTP всегда превращается в 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError создает ValidationError с форматированным сообщением.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError проверяет, лежит ли в цепочке ошибок ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Внутренняя классификация сбоев хранилища. Наружу уходит только общее
// сообщение, подробности остаются в логах.
var (
	// ErrConnectivity — не удалось получить соединение с БД.
	ErrConnectivity = errors.New("store connection failed")

	// ErrQuery — БД отклонила или не смогла выполнить запрос.
	ErrQuery = errors.New("store query failed")

	// ErrSerialization — значение из БД не удалось привести к JSON-безопасному типу.
	ErrSerialization = errors.New("result serialization failed")
)
