package lifecycle

import (
	"errors"
	"fmt"
)

var (
	// ошибки валидации, запрос в сервис заказов не отправляется
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidFinalPrice     = errors.New("final price must be a positive number")
	ErrInvalidPrice          = errors.New("price must be a positive number")
	ErrInvalidPaymentKind    = errors.New("payment kind must be partial or full")
	ErrInvalidScore          = errors.New("score must be an integer between 1 and 5")
	ErrInvalidPhoto          = errors.New("photo must be a png, jpg, jpeg or gif image")
	ErrPhotoTooLarge         = errors.New("photo is too large")
	ErrConfirmationRequired  = errors.New("action requires explicit confirmation")

	// правила жизненного цикла
	ErrActionNotAllowed  = errors.New("action is not allowed")
	ErrInconsistentOrder = errors.New("order projection is inconsistent")
	ErrInvalidSession    = errors.New("invalid session")

	// ответы сервиса заказов
	ErrOrderNotFound   = errors.New("order not found")
	ErrConflict        = errors.New("order is no longer available")
	ErrRejected        = errors.New("request rejected by order service")
	ErrForbidden       = errors.New("forbidden by order service")
	ErrUnauthenticated = errors.New("session is not authenticated")
	ErrTransport       = errors.New("order service is unreachable")
)

// RejectionError - ответ сервиса заказов с кодом ошибки. Message показывается зрителю без изменений.
type RejectionError struct {
	StatusCode int
	Message    string
	Kind       error
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (status %d)", e.Kind, e.StatusCode)
	}
	return e.Message
}

func (e *RejectionError) Unwrap() error {
	return e.Kind
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrMissingRequiredFields),
		errors.Is(err, ErrInvalidOrderID),
		errors.Is(err, ErrInvalidFinalPrice),
		errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrInvalidPaymentKind),
		errors.Is(err, ErrInvalidScore),
		errors.Is(err, ErrInvalidPhoto),
		errors.Is(err, ErrPhotoTooLarge),
		errors.Is(err, ErrConfirmationRequired),
		errors.Is(err, ErrActionNotAllowed),
		errors.Is(err, ErrInconsistentOrder),
		errors.Is(err, ErrInvalidSession):
		return true
	default:
		return false
	}
}

// publicErrors перечислены от частного к общему, первое совпадение дает текст для зрителя.
var publicErrors = []error{
	ErrMissingRequiredFields,
	ErrInvalidOrderID,
	ErrInvalidFinalPrice,
	ErrInvalidPrice,
	ErrInvalidPaymentKind,
	ErrInvalidScore,
	ErrInvalidPhoto,
	ErrPhotoTooLarge,
	ErrConfirmationRequired,
	ErrActionNotAllowed,
	ErrInconsistentOrder,
	ErrInvalidSession,
	ErrConflict,
	ErrOrderNotFound,
	ErrForbidden,
	ErrUnauthenticated,
	ErrRejected,
	ErrTransport,
}

const genericFailureMessage = "something went wrong, please try again"

// UserMessage возвращает текст ошибки, который можно показать зрителю.
// Сообщение сервиса заказов передается без изменений, внутренние детали не раскрываются.
func UserMessage(err error) string {
	var rejection *RejectionError
	if errors.As(err, &rejection) && rejection.Message != "" {
		return rejection.Message
	}

	for _, known := range publicErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return genericFailureMessage
}
