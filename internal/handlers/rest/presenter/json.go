package presenter

import (
	"encoding/json"
	"net/http"

	"gigboard/internal/generated/dto"
	"gigboard/pkg/logger"
)

func WriteJSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// WriteError отвечает {"error": "..."}; непредвиденные ошибки логируются целиком.
func WriteError(w http.ResponseWriter, log errorLogger, err error) {
	WriteErrorWithBoard(w, log, err, nil)
}

func WriteErrorWithBoard(w http.ResponseWriter, log errorLogger, err error, board *dto.Board) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", logger.NewField("error", err), logger.NewField("status", status))
	} else {
		log.Warn("request rejected", logger.NewField("error", err), logger.NewField("status", status))
	}

	WriteJSON(w, log, status, dto.Error{
		Error: Message(err),
		Board: board,
	})
}
