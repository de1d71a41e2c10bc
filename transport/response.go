package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/model"
	"github.com/muhammadheryan/tuba-user/utils/errors"
	"github.com/muhammadheryan/tuba-user/utils/logger"
	"go.uber.org/zap"
)

type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Code        string           `json:"code"`
	Message     string           `json:"message"`
	Description string           `json:"description,omitempty"`
	TraceID     string           `json:"trace_id,omitempty"`
	Conflicts   []model.Conflict `json:"conflicts,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

// writeError maps err onto its HTTP status. Errors that are not a CustomError are internal.
func writeError(w http.ResponseWriter, err error) {
	ce := errors.AsCustomError(err)
	if ce.Type() == constant.ErrInternal {
		logger.Error("[writeError] internal error", zap.String("request_id", w.Header().Get(constant.HeaderRequestID)), zap.Error(err))
	}

	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
		Code:        ce.ErrorCode(),
		Message:     ce.Message(),
		Description: ce.Detail(),
		TraceID:     w.Header().Get(constant.HeaderRequestID),
		Conflicts:   ce.Conflicts(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] err encode response", zap.String("error", err.Error()))
	}
}
