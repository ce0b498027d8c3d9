package handler

import (
	"encoding/json"
	"net/http"

	"taskboard/internal/apperror"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps an error onto its HTTP status and the uniform error
// payload; non-AppError values surface as a generic internal error.
func writeError(w http.ResponseWriter, err error) {
	appErr := apperror.FromError(err)
	writeJSON(w, appErr.StatusCode(), errorResponse{
		Error: appErr.Message,
		Code:  appErr.Code(),
	})
}
