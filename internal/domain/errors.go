package domain

import (
	"errors"
	"fmt"
)

// ValidationError ошибка пользовательского ввода: поле и причина.
// Восстановимая - пользователю показывается поле и текст, можно переввести.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// ProviderError ошибка расчёта у внешнего эфемеридного провайдера.
// Расчёт детерминирован, ретраи бессмысленны - ошибка отдаётся сразу.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return "ephemeris provider: " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func WrapProviderError(err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Err: err}
}

func IsProviderError(err error) bool {
	var pErr *ProviderError
	return errors.As(err, &pErr)
}

// ShapingError в ответе провайдера нет ожидаемого тела или дома.
// Означает дрейф схемы между версиями провайдера; пользователю
// показывается общий текст, детали уходят только в лог.
type ShapingError struct {
	Missing string
}

func (e *ShapingError) Error() string {
	return "provider output is missing " + e.Missing
}

func NewShapingError(missing string) error {
	return &ShapingError{Missing: missing}
}

func IsShapingError(err error) bool {
	var sErr *ShapingError
	return errors.As(err, &sErr)
}
