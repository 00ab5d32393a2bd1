package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// errorResponse is the JSON body for every non-2xx response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status.
// Encode failures after the header is written can only be logged.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError writes a structured error body with the given status.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// unwrapMessage extracts the human-readable part from a wrapped store error.
// e.g. "store.Parse: record 2: malformed activity record: missing field \"id\""
// → "record 2: malformed activity record: missing field \"id\""
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{"store.FileStore.Load: ", "store.Parse: "} {
		msg = strings.TrimPrefix(msg, prefix)
	}
	return msg
}
