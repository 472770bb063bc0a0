// Package httpx holds the JSON response helpers shared by the HTTP handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmehra2102/ecommerce-store/pkg/enumeration"
)

type ErrorBody struct {
	Error   string   `json:"error"`
	Type    string   `json:"type,omitempty"`
	Value   *string  `json:"value,omitempty"`
	Allowed []string `json:"allowed,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorBody{Error: msg})
}

// WriteInvalidValue answers 400 with the rejected value and the legal set.
func WriteInvalidValue(w http.ResponseWriter, err error) {
	body := ErrorBody{Error: enumeration.ErrInvalidValue.Error()}
	var ie *enumeration.InvalidValueError
	if errors.As(err, &ie) {
		body.Type = ie.Type
		body.Value = &ie.Value
		body.Allowed = ie.Allowed
	}
	WriteJSON(w, http.StatusBadRequest, body)
}
