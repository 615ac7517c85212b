package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/paramguard/pkg/validator"
)

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes the failure. Errors lists every validation error
// when the request failed validation.
type ErrorDetail struct {
	Code    string                     `json:"code"`
	Message string                     `json:"message"`
	Errors  validator.ValidationErrors `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
