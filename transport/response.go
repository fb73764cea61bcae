package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/lead-crm/constant"
	"github.com/muhammadheryan/lead-crm/utils/errors"
	"github.com/muhammadheryan/lead-crm/utils/logger"
	"go.uber.org/zap"
)

// Response is the envelope of every API reply.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func writeJSON(w http.ResponseWriter, httpCode int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] err encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeMessage(w, constant.ErrorTypeMessage[constant.Successful], data)
}

func writeMessage(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// writeError renders err in the envelope. Errors that are not a CustomError
// are reported as internal without exposing their text.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	res := Response{
		Status:  false,
		Message: ce.Error(),
	}
	if fields := ce.Fields(); len(fields) > 0 {
		res.Data = fields
	}
	writeJSON(w, ce.ErrorHTTPCode(), res)
}
