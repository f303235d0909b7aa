package lifecycle

import (
	"math"
	"path/filepath"
	"strings"

	"gigboard/internal/entities"
)

var allowedPhotoExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

func isValidOrderID(id int64) bool {
	return id > 0
}

func isPositivePrice(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price > 0
}

func isValidScore(score int) bool {
	return score >= 1 && score <= 5
}

func paymentAction(kind entities.PaymentKind) (entities.ActionType, bool) {
	switch kind {
	case entities.PaymentPartial:
		return entities.ActionPayPartial, true
	case entities.PaymentFull:
		return entities.ActionPayFull, true
	default:
		return "", false
	}
}

func validateDraft(draft entities.OrderDraft, maxPhotoSize int64) error {
	if strings.TrimSpace(draft.Title) == "" ||
		strings.TrimSpace(draft.Description) == "" ||
		strings.TrimSpace(draft.Address) == "" {
		return ErrMissingRequiredFields
	}

	if draft.Photo == nil {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(draft.Photo.Filename))
	if _, ok := allowedPhotoExtensions[ext]; !ok {
		return ErrInvalidPhoto
	}
	if len(draft.Photo.Content) == 0 {
		return ErrInvalidPhoto
	}
	if maxPhotoSize > 0 && int64(len(draft.Photo.Content)) > maxPhotoSize {
		return ErrPhotoTooLarge
	}
	return nil
}
