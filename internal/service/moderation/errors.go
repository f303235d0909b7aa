package moderation

import (
	"errors"

	"gigboard/internal/service/lifecycle"
)

var (
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrUserNotFound    = errors.New("user not found")
	ErrAlreadyApproved = errors.New("worker is already approved")
)

// userMessage: ответ сервиса заказов показывается как есть, свои ошибки - своим текстом.
func userMessage(err error) string {
	var rejection *lifecycle.RejectionError
	if errors.As(err, &rejection) && rejection.Message != "" {
		return rejection.Message
	}

	for _, known := range []error{ErrInvalidUserID, ErrUserNotFound, ErrAlreadyApproved} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return lifecycle.UserMessage(err)
}

// 404 сервиса заказов на запросах модерации относится к пользователю, а не к заказу
func asUserNotFound(err error) error {
	var rejection *lifecycle.RejectionError
	if errors.As(err, &rejection) && errors.Is(rejection.Kind, lifecycle.ErrOrderNotFound) {
		return &lifecycle.RejectionError{
			StatusCode: rejection.StatusCode,
			Message:    rejection.Message,
			Kind:       ErrUserNotFound,
		}
	}
	return err
}
