// Package errors provides custom error types for the finadvisor webapp.
// Backend responses and client-side failures are normalized into AppError
// values so that screens can render consistent, user-readable messages.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Backend access errors.
var (
	ErrAuthRequired         = &AppError{Code: "AUTH_REQUIRED", Message: "Требуется авторизация. Откройте приложение через Telegram.", StatusCode: http.StatusUnauthorized}
	ErrSubscriptionRequired = &AppError{Code: "SUBSCRIPTION_REQUIRED", Message: "Требуется подписка. Оформите подписку в боте.", StatusCode: http.StatusForbidden}
	ErrTimeout              = &AppError{Code: "TIMEOUT", Message: "Превышено время ожидания ответа. Попробуйте позже.", StatusCode: http.StatusGatewayTimeout}
	ErrBackend              = &AppError{Code: "BACKEND_ERROR", Message: "Ошибка сервера", StatusCode: http.StatusBadGateway}
)

// Client-side errors raised before any network call.
var (
	ErrInvalidInput = &AppError{Code: "INVALID_INPUT", Message: "Заполните обязательные поля", StatusCode: http.StatusBadRequest}
	ErrInvalidFile  = &AppError{Code: "INVALID_FILE", Message: "Разрешены только файлы Excel (.xlsx, .xls)", StatusCode: http.StatusBadRequest}
)

// Consultation errors.
var (
	ErrConsultationFailed = &AppError{Code: "CONSULTATION_FAILED", Message: "Не удалось получить консультацию", StatusCode: http.StatusBadGateway}
	ErrLimitReached       = &AppError{Code: "LIMIT_REACHED", Message: "Лимит консультаций исчерпан", StatusCode: http.StatusTooManyRequests}
)
