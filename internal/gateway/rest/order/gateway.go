package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gigboard/internal/entities"
	"gigboard/internal/pkg/middlewares/request_id"
	"gigboard/internal/service/lifecycle"
)

const (
	serviceName = "order-service"
	apiPrefix   = "/api"

	maxResponseSize = 4 << 20
)

type OrderGateway struct {
	client  httpDoer
	baseURL string
}

func New(client httpDoer, baseURL string) *OrderGateway {
	return &OrderGateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type request struct {
	method      string
	path        string
	credentials string
	body        io.Reader
	contentType string
}

// CurrentUser разрешает сессию зрителя по Cookie заголовку.
func (o *OrderGateway) CurrentUser(ctx context.Context, credentials string) (*entities.Session, error) {
	var resp currentUserResponse

	err := o.executeWithMetrics(ctx, "CurrentUser", request{
		method:      http.MethodGet,
		path:        "/current-user",
		credentials: credentials,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway order, current user: %w", err)
	}

	if resp.User == nil {
		return nil, fmt.Errorf("gateway order, current user: %w", lifecycle.ErrUnauthenticated)
	}

	return toDomainSession(resp.User, credentials), nil
}

// Ping проверяет доступность сервиса заказов. Любой HTTP ответ означает, что сервис жив.
func (o *OrderGateway) Ping(ctx context.Context) error {
	err := o.executeWithMetrics(ctx, "Ping", request{
		method: http.MethodGet,
		path:   "/current-user",
	}, nil)

	var rejection *lifecycle.RejectionError
	if err == nil || errors.As(err, &rejection) {
		return nil
	}
	return fmt.Errorf("gateway order, ping: %w", err)
}

func (o *OrderGateway) ListOrders(ctx context.Context, session entities.Session) ([]entities.Order, error) {
	var resp []orderModel

	err := o.executeWithMetrics(ctx, "ListOrders", request{
		method:      http.MethodGet,
		path:        "/orders",
		credentials: session.Credentials,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway order, list orders: %w", err)
	}

	return toDomainList(resp), nil
}

func (o *OrderGateway) CreateOrder(
	ctx context.Context,
	session entities.Session,
	draft entities.OrderDraft,
) (*entities.ActionResult, error) {
	body, contentType, err := encodeDraft(draft)
	if err != nil {
		return nil, fmt.Errorf("gateway order, create order: %w", err)
	}

	return o.action(ctx, "CreateOrder", request{
		method:      http.MethodPost,
		path:        "/orders",
		credentials: session.Credentials,
		body:        body,
		contentType: contentType,
	})
}

func (o *OrderGateway) ClaimOrder(
	ctx context.Context,
	session entities.Session,
	orderID int64,
) (*entities.ActionResult, error) {
	return o.action(ctx, "ClaimOrder", request{
		method:      http.MethodPost,
		path:        fmt.Sprintf("/orders/%d/take", orderID),
		credentials: session.Credentials,
	})
}

func (o *OrderGateway) CompleteOrder(
	ctx context.Context,
	session entities.Session,
	orderID int64,
	finalPrice float64,
) (*entities.ActionResult, error) {
	return o.jsonAction(ctx, "CompleteOrder", http.MethodPost,
		fmt.Sprintf("/orders/%d/complete", orderID), session, completeRequest{FinalPrice: finalPrice})
}

func (o *OrderGateway) AdjustPrice(
	ctx context.Context,
	session entities.Session,
	orderID int64,
	price float64,
) (*entities.ActionResult, error) {
	return o.jsonAction(ctx, "AdjustPrice", http.MethodPut,
		fmt.Sprintf("/orders/%d/update-price", orderID), session, priceRequest{Price: price})
}

func (o *OrderGateway) CancelOrder(
	ctx context.Context,
	session entities.Session,
	orderID int64,
) (*entities.ActionResult, error) {
	return o.action(ctx, "CancelOrder", request{
		method:      http.MethodPost,
		path:        fmt.Sprintf("/orders/%d/cancel", orderID),
		credentials: session.Credentials,
	})
}

func (o *OrderGateway) PayOrder(
	ctx context.Context,
	session entities.Session,
	orderID int64,
	kind entities.PaymentKind,
) (*entities.ActionResult, error) {
	return o.jsonAction(ctx, "PayOrder", http.MethodPost,
		fmt.Sprintf("/orders/%d/pay", orderID), session, payRequest{PaymentType: kind.String()})
}

func (o *OrderGateway) RateOrder(
	ctx context.Context,
	session entities.Session,
	orderID int64,
	rating entities.RatingSubmission,
) (*entities.ActionResult, error) {
	return o.jsonAction(ctx, "RateOrder", http.MethodPost,
		fmt.Sprintf("/orders/%d/rate", orderID), session, rateRequest{Rating: rating.Score, Comment: rating.Comment})
}

func (o *OrderGateway) DeleteOrder(
	ctx context.Context,
	session entities.Session,
	orderID int64,
) (*entities.ActionResult, error) {
	return o.action(ctx, "DeleteOrder", request{
		method:      http.MethodDelete,
		path:        fmt.Sprintf("/orders/%d", orderID),
		credentials: session.Credentials,
	})
}

func (o *OrderGateway) Statistics(ctx context.Context, session entities.Session) (*entities.Statistics, error) {
	var resp statisticsModel

	err := o.executeWithMetrics(ctx, "Statistics", request{
		method:      http.MethodGet,
		path:        "/statistics",
		credentials: session.Credentials,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway order, statistics: %w", err)
	}

	return toDomainStatistics(&resp), nil
}

func (o *OrderGateway) UserRatings(
	ctx context.Context,
	session entities.Session,
	userID int64,
) (*entities.UserRatings, error) {
	var resp userRatingsModel

	err := o.executeWithMetrics(ctx, "UserRatings", request{
		method:      http.MethodGet,
		path:        fmt.Sprintf("/ratings/%d", userID),
		credentials: session.Credentials,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway order, user ratings %d: %w", userID, err)
	}

	return toDomainUserRatings(&resp), nil
}

// ListWorkers возвращает всех исполнителей, в том числе ожидающих допуска.
func (o *OrderGateway) ListWorkers(ctx context.Context, session entities.Session) ([]entities.UserProfile, error) {
	var resp []userModel

	err := o.executeWithMetrics(ctx, "ListWorkers", request{
		method:      http.MethodGet,
		path:        "/brigadnici",
		credentials: session.Credentials,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway order, list workers: %w", err)
	}

	return toDomainUsers(resp), nil
}

func (o *OrderGateway) ListUsers(ctx context.Context, session entities.Session) ([]entities.UserProfile, error) {
	var resp []userModel

	err := o.executeWithMetrics(ctx, "ListUsers", request{
		method:      http.MethodGet,
		path:        "/users",
		credentials: session.Credentials,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway order, list users: %w", err)
	}

	return toDomainUsers(resp), nil
}

func (o *OrderGateway) ApproveWorker(
	ctx context.Context,
	session entities.Session,
	userID int64,
) (*entities.ModerationResult, error) {
	return o.moderate(ctx, "ApproveWorker", request{
		method:      http.MethodPost,
		path:        fmt.Sprintf("/approve-brigadnik/%d", userID),
		credentials: session.Credentials,
	}, userID)
}

func (o *OrderGateway) DeleteUser(
	ctx context.Context,
	session entities.Session,
	userID int64,
) (*entities.ModerationResult, error) {
	return o.moderate(ctx, "DeleteUser", request{
		method:      http.MethodDelete,
		path:        fmt.Sprintf("/users/%d", userID),
		credentials: session.Credentials,
	}, userID)
}

func (o *OrderGateway) moderate(
	ctx context.Context,
	method string,
	req request,
	userID int64,
) (*entities.ModerationResult, error) {
	var resp messageResponse

	if err := o.executeWithMetrics(ctx, method, req, &resp); err != nil {
		return nil, fmt.Errorf("gateway order, %s %d: %w", method, userID, err)
	}

	return &entities.ModerationResult{Message: resp.Message, UserID: userID}, nil
}

func (o *OrderGateway) jsonAction(
	ctx context.Context,
	method string,
	httpMethod string,
	path string,
	session entities.Session,
	payload any,
) (*entities.ActionResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("gateway order, %s: encode request: %w", method, err)
	}

	return o.action(ctx, method, request{
		method:      httpMethod,
		path:        path,
		credentials: session.Credentials,
		body:        bytes.NewReader(body),
		contentType: "application/json",
	})
}

func (o *OrderGateway) action(ctx context.Context, method string, req request) (*entities.ActionResult, error) {
	var resp actionResponse

	if err := o.executeWithMetrics(ctx, method, req, &resp); err != nil {
		return nil, fmt.Errorf("gateway order, %s: %w", method, err)
	}

	return toDomainResult(&resp), nil
}

// executeWithMetrics выполняет ровно один запрос: мутирующие действия не повторяются.
func (o *OrderGateway) executeWithMetrics(ctx context.Context, method string, req request, out any) error {
	start := time.Now()

	statusCode, err := o.execute(ctx, req, out)

	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, method, statusCode).Observe(time.Since(start).Seconds())
	if err != nil {
		GatewayErrorsTotal.WithLabelValues(serviceName, method, errorReason(err)).Inc()
	}

	return err
}

func (o *OrderGateway) execute(ctx context.Context, req request, out any) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.method, o.baseURL+apiPrefix+req.path, req.body)
	if err != nil {
		return "INVALID", fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if req.credentials != "" {
		httpReq.Header.Set("Cookie", req.credentials)
	}
	if id := request_id.FromContext(ctx); id != "" {
		httpReq.Header.Set(request_id.HeaderName, id)
	}

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "TRANSPORT", fmt.Errorf("%w: %w", lifecycle.ErrTransport, err)
	}
	defer resp.Body.Close()

	statusCode := strconv.Itoa(resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return statusCode, fmt.Errorf("read response: %w: %w", lifecycle.ErrTransport, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusCode, toRejection(resp.StatusCode, body)
	}

	if out == nil {
		return statusCode, nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return statusCode, fmt.Errorf("decode response: %w: %w", lifecycle.ErrTransport, err)
	}

	return statusCode, nil
}

func toRejection(statusCode int, body []byte) error {
	var payload errorResponse
	// тело ответа может быть не JSON, например страница 404 от веб-сервера
	_ = json.Unmarshal(body, &payload)

	kind := lifecycle.ErrRejected
	switch statusCode {
	case http.StatusUnauthorized:
		kind = lifecycle.ErrUnauthenticated
	case http.StatusForbidden:
		kind = lifecycle.ErrForbidden
	case http.StatusNotFound:
		kind = lifecycle.ErrOrderNotFound
	case http.StatusConflict:
		kind = lifecycle.ErrConflict
	}

	return &lifecycle.RejectionError{
		StatusCode: statusCode,
		Message:    payload.Error,
		Kind:       kind,
	}
}

func errorReason(err error) string {
	var rejection *lifecycle.RejectionError
	switch {
	case errors.As(err, &rejection):
		return "rejected"
	case errors.Is(err, lifecycle.ErrTransport):
		return "transport"
	default:
		return "internal"
	}
}

type formField struct {
	name  string
	value string
}

func encodeDraft(draft entities.OrderDraft) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := []formField{
		{name: "title", value: draft.Title},
		{name: "description", value: draft.Description},
		{name: "adresa", value: draft.Address},
		{name: "ma_vse_potrebne", value: strconv.FormatBool(draft.HasEquipment)},
	}
	if draft.Latitude != nil {
		fields = append(fields, formField{name: "latitude", value: strconv.FormatFloat(*draft.Latitude, 'f', -1, 64)})
	}
	if draft.Longitude != nil {
		fields = append(fields, formField{name: "longitude", value: strconv.FormatFloat(*draft.Longitude, 'f', -1, 64)})
	}

	for _, field := range fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field.name, err)
		}
	}

	if draft.Photo != nil {
		part, err := writer.CreateFormFile("photo", draft.Photo.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("create photo part: %w", err)
		}
		if _, err := part.Write(draft.Photo.Content); err != nil {
			return nil, "", fmt.Errorf("write photo: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
