package presenter

import (
	"context"
	"errors"
	"net/http"

	"gigboard/internal/service/lifecycle"
	"gigboard/internal/service/moderation"
	"gigboard/internal/service/notice"
	"gigboard/internal/service/report"
)

var (
	ErrInvalidBody   = errors.New("request body is invalid")
	ErrInvalidPathID = errors.New("invalid id in path")
	ErrInvalidQuery  = errors.New("query parameter is invalid")
)

type statusRule struct {
	target error
	status int
}

// порядок важен: первое совпадение определяет код ответа
var statusRules = []statusRule{
	{lifecycle.ErrConfirmationRequired, http.StatusPreconditionRequired},
	{lifecycle.ErrActionNotAllowed, http.StatusUnprocessableEntity},
	{lifecycle.ErrInconsistentOrder, http.StatusBadGateway},
	{lifecycle.ErrInvalidSession, http.StatusUnauthorized},
	{lifecycle.ErrMissingRequiredFields, http.StatusBadRequest},
	{lifecycle.ErrInvalidOrderID, http.StatusBadRequest},
	{lifecycle.ErrInvalidFinalPrice, http.StatusBadRequest},
	{lifecycle.ErrInvalidPrice, http.StatusBadRequest},
	{lifecycle.ErrInvalidPaymentKind, http.StatusBadRequest},
	{lifecycle.ErrInvalidScore, http.StatusBadRequest},
	{lifecycle.ErrInvalidPhoto, http.StatusBadRequest},
	{lifecycle.ErrPhotoTooLarge, http.StatusRequestEntityTooLarge},
	{report.ErrInvalidUserID, http.StatusBadRequest},
	{notice.ErrInvalidUserID, http.StatusBadRequest},
	{moderation.ErrInvalidUserID, http.StatusBadRequest},
	{moderation.ErrUserNotFound, http.StatusNotFound},
	{moderation.ErrAlreadyApproved, http.StatusConflict},
	{ErrInvalidBody, http.StatusBadRequest},
	{ErrInvalidPathID, http.StatusBadRequest},
	{ErrInvalidQuery, http.StatusBadRequest},
	{lifecycle.ErrConflict, http.StatusConflict},
	{lifecycle.ErrOrderNotFound, http.StatusNotFound},
	{lifecycle.ErrForbidden, http.StatusForbidden},
	{lifecycle.ErrUnauthenticated, http.StatusUnauthorized},
	{lifecycle.ErrRejected, http.StatusBadRequest},
	{lifecycle.ErrTransport, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

var localErrors = []error{
	ErrInvalidBody,
	ErrInvalidPathID,
	ErrInvalidQuery,
	report.ErrInvalidUserID,
	notice.ErrInvalidUserID,
	moderation.ErrInvalidUserID,
	moderation.ErrUserNotFound,
	moderation.ErrAlreadyApproved,
}

// Status переводит ошибку операции в HTTP код ответа.
func Status(err error) int {
	for _, rule := range statusRules {
		if errors.Is(err, rule.target) {
			return rule.status
		}
	}
	return http.StatusInternalServerError
}

// Message - текст ошибки для зрителя. Ответ сервиса заказов передается как есть.
func Message(err error) string {
	var rejection *lifecycle.RejectionError
	if errors.As(err, &rejection) && rejection.Message != "" {
		return rejection.Message
	}

	for _, local := range localErrors {
		if errors.Is(err, local) {
			return local.Error()
		}
	}
	return lifecycle.UserMessage(err)
}
