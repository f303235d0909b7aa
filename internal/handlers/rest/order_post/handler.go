package order_post

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"gigboard/internal/entities"
	"gigboard/internal/handlers/rest/presenter"
	"gigboard/internal/pkg/middlewares/session"
	"gigboard/internal/service/lifecycle"
	"gigboard/pkg/logger"
)

const (
	// запас на текстовые поля формы и границы multipart
	formOverhead = 1 << 20
	memoryLimit  = 8 << 20
)

type Handler struct {
	log          handlerLogger
	service      Service
	maxPhotoSize int64
}

func New(log handlerLogger, service Service, maxPhotoSize int64) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:          handlerLog,
		service:      service,
		maxPhotoSize: maxPhotoSize,
	}
}

// ServeHTTP принимает форму нового заказа. Фото необязательно, цену оценивает сервис заказов.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	viewer, ok := session.FromContext(r.Context())
	if !ok {
		presenter.WriteError(w, h.log, lifecycle.ErrInvalidSession)
		return
	}

	draft, err := h.parseDraft(w, r)
	if err != nil {
		presenter.WriteError(w, h.log, err)
		return
	}

	result, err := h.service.Create(r.Context(), viewer, *draft)
	if err != nil {
		presenter.WriteError(w, h.log, err)
		return
	}

	if result.Order != nil {
		h.log.Info("order created",
			logger.NewField("order_id", result.Order.ID),
			logger.NewField("customer_id", viewer.UserID),
		)
	}

	board := presenter.FreshBoard(r.Context(), h.log, viewer, h.service.Board)
	presenter.WriteJSON(w, h.log, http.StatusCreated, presenter.ToActionResponse(viewer, result, board))
}

func (h *Handler) parseDraft(w http.ResponseWriter, r *http.Request) (*entities.OrderDraft, error) {
	if h.maxPhotoSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxPhotoSize+formOverhead)
	}

	if err := r.ParseMultipartForm(memoryLimit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, lifecycle.ErrPhotoTooLarge
		}
		return nil, fmt.Errorf("parse form: %w: %w", presenter.ErrInvalidBody, err)
	}

	latitude, err := parseCoordinate(r.FormValue("latitude"))
	if err != nil {
		return nil, fmt.Errorf("latitude: %w", err)
	}
	longitude, err := parseCoordinate(r.FormValue("longitude"))
	if err != nil {
		return nil, fmt.Errorf("longitude: %w", err)
	}

	hasEquipment := false
	if raw := strings.TrimSpace(r.FormValue("has_equipment")); raw != "" {
		hasEquipment, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("has_equipment %q: %w", raw, presenter.ErrInvalidBody)
		}
	}

	photo, err := readPhoto(r)
	if err != nil {
		return nil, err
	}

	return &entities.OrderDraft{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Address:      r.FormValue("address"),
		Latitude:     latitude,
		Longitude:    longitude,
		HasEquipment: hasEquipment,
		Photo:        photo,
	}, nil
}

func parseCoordinate(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", raw, presenter.ErrInvalidBody)
	}
	return &value, nil
}

func readPhoto(r *http.Request) (*entities.OrderPhoto, error) {
	file, header, err := r.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("photo: %w: %w", presenter.ErrInvalidBody, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}

	return &entities.OrderPhoto{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}
