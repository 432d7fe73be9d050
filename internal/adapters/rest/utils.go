package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

const maxRequestBodyBytes = 1 << 20

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, map[string]string{"error": message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

// readBody читает тело запроса не длиннее maxRequestBodyBytes
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return body, nil
}

// parseBoolParam: отсутствующий параметр: nil
func parseBoolParam(r *http.Request, key string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %q must be a boolean", key)
	}
	return &v, nil
}

// GetLimitOrDefault: пустой limit дает 0, то есть лимит по умолчанию use case
func GetLimitOrDefault(r *http.Request) (int, error) {
	limitStr := strings.TrimSpace(r.URL.Query().Get("limit"))
	if limitStr == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("parameter \"limit\" must be a non-negative integer")
	}
	return limit, nil
}

// GetOffset: пустой offset дает 0
func GetOffset(r *http.Request) (int, error) {
	offsetStr := strings.TrimSpace(r.URL.Query().Get("offset"))
	if offsetStr == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("parameter \"offset\" must be a non-negative integer")
	}
	return offset, nil
}
